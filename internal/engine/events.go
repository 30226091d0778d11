package engine

// EventType names a state transition the front-end may want to react to.
type EventType string

const (
	EventNewGame          EventType = "NEW_GAME"
	EventAttack           EventType = "ATTACK"
	EventHit              EventType = "HIT"
	EventKill             EventType = "KILL"
	EventTheft            EventType = "THEFT"
	EventMined            EventType = "MINED"
	EventBuilt            EventType = "BUILD"
	EventBuildingUpgraded EventType = "BUILDING_UPGRADE"
	EventBaseUpgraded     EventType = "BASE_UPGRADE"
	EventEnterCave        EventType = "ENTER_CAVE"
	EventExitCave         EventType = "EXIT_CAVE"
)

// maxPendingEvents bounds the queue when nobody drains it.
const maxPendingEvents = 256

// Event is a one-shot notification produced during a command or an Update.
type Event struct {
	Type    EventType
	Message string
	Amount  int
}

func (e *Engine) emit(t EventType, amount int, msg string) {
	if len(e.events) >= maxPendingEvents {
		e.events = e.events[1:]
	}
	e.events = append(e.events, Event{Type: t, Message: msg, Amount: amount})
	e.log.Event(string(t), e.sessionID, msg)
}

// DrainEvents returns the events queued since the last call and clears the queue.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}
