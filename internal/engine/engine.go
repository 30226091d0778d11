// Package engine is the authoritative game-state machine. A front-end calls
// Update once per frame, issues commands, and reads state back through the
// query methods. Every command reports success as a bool and has no side
// effects when it fails.
package engine

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/tatianab/cave-miner/internal/logger"
	"github.com/tatianab/cave-miner/internal/models"
)

// Location selects which entity pool is active.
type Location int

const (
	Surface Location = iota
	Cave
)

func (l Location) String() string {
	if l == Cave {
		return "Cave"
	}
	return "Surface"
}

const (
	AttackCooldown = 0.5
	AttackDuration = 0.25
	// HitboxScale multiplies the player's larger dimension to size the attack square.
	HitboxScale = 4.0

	StealRange    = 30.0
	StealFraction = 0.15

	ProductionInterval = 1.0
	// maxProductionRounds caps catch-up after a long stall to one hour of output.
	maxProductionRounds = 3600

	baseInset = 20.0
)

// Options configures a new engine.
type Options struct {
	Width  int
	Height int
	Seed   int64
}

// Engine owns every entity and the economy for one session.
type Engine struct {
	opts   Options
	bounds models.Bounds
	rng    models.Rand
	log    *logger.Logger

	generated     bool
	pools         [2]pool
	location      Location
	nextMonsterID int

	player    models.Player
	spawn     models.Vec2
	caveEntry models.Vec2
	wallet    models.Wallet
	base      models.Base
	buildings []*models.AutoBuilding

	mining *models.ResourceNode

	sinceAttack float64
	attacking   bool
	attackAnim  float64

	productionTimer float64

	events    []Event
	sessionID string
}

// New creates an engine and generates its world. A nil rng is replaced by one
// seeded from opts.Seed; a nil logger discards output.
func New(opts Options, rng models.Rand, log *logger.Logger) *Engine {
	if opts.Width < 1 {
		opts.Width = RefWidth
	}
	if opts.Height < 1 {
		opts.Height = RefHeight
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	if log == nil {
		log = logger.Nop()
	}

	w, h := float64(opts.Width), float64(opts.Height)
	e := &Engine{
		opts:   opts,
		bounds: models.Bounds{Width: w, Height: h},
		rng:    rng,
		log:    log,
		spawn: models.Vec2{
			X: w/2 - models.PlayerWidth/2,
			Y: h/2 - models.PlayerHeight/2,
		},
		caveEntry: models.Vec2{
			X: baseInset,
			Y: h/2 - models.PlayerHeight/2,
		},
	}
	e.NewGame()
	return e
}

// NewGame resets the session. Entity pools are generated only the first time.
func (e *Engine) NewGame() {
	e.sessionID = uuid.NewString()
	if !e.generated {
		e.generateWorld()
		e.generated = true
	}
	for _, p := range e.pools {
		for _, n := range p.nodes {
			n.Reset()
		}
	}
	e.pools[Surface].monsters = nil

	e.location = Surface
	e.player = models.NewPlayer(e.spawn)
	e.wallet = models.Wallet{}
	e.base = models.NewBase(models.Vec2{X: baseInset, Y: baseInset})
	e.buildings = nil
	e.mining = nil
	e.sinceAttack = AttackCooldown
	e.attacking = false
	e.attackAnim = 0
	e.productionTimer = 0
	e.events = nil

	e.emit(EventNewGame, 0, "a new day begins")
}

// Regenerate discards both entity pools and starts a new game on a fresh map.
func (e *Engine) Regenerate() {
	e.generated = false
	e.NewGame()
}

// Update advances the simulation by dt seconds. A negative or non-finite dt
// counts as zero.
func (e *Engine) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	e.updateAttack(dt)
	if e.location == Cave {
		e.updateMonsters(dt)
	}
	e.updateMining(dt)
	e.updateProduction(dt)
	e.player.Animate(dt)
}

// MovePlayer moves the player by a signed step on each axis. Walking into a
// cave entrance on the surface enters the cave.
func (e *Engine) MovePlayer(dx, dy float64) {
	e.player.Move(dx, dy, e.bounds)
	if e.location == Surface {
		e.TryEnterCave()
	}
}

func (e *Engine) active() *pool { return &e.pools[e.location] }

// Player returns a copy of the player.
func (e *Engine) Player() models.Player { return e.player }

// Monsters returns copies of the monsters in the active location.
func (e *Engine) Monsters() []models.Monster {
	ms := e.active().monsters
	out := make([]models.Monster, len(ms))
	for i, m := range ms {
		out[i] = *m
	}
	return out
}

// ResourceNodes returns copies of the nodes in the active location.
func (e *Engine) ResourceNodes() []models.ResourceNode {
	ns := e.active().nodes
	out := make([]models.ResourceNode, len(ns))
	for i, n := range ns {
		out[i] = *n
	}
	return out
}

// CaveEntrances returns the entrances visible in the active location.
func (e *Engine) CaveEntrances() []models.CaveEntrance {
	return append([]models.CaveEntrance(nil), e.active().entrances...)
}

// Base returns a copy of the base.
func (e *Engine) Base() models.Base { return e.base }

// Buildings returns copies of the constructed buildings.
func (e *Engine) Buildings() []models.AutoBuilding {
	out := make([]models.AutoBuilding, len(e.buildings))
	for i, b := range e.buildings {
		out[i] = *b
	}
	return out
}

// Building returns the building of kind k, if built.
func (e *Engine) Building(k models.BuildingKind) (models.AutoBuilding, bool) {
	if b := e.findBuilding(k); b != nil {
		return *b, true
	}
	return models.AutoBuilding{}, false
}

// Wallet returns the economy counters.
func (e *Engine) Wallet() models.Wallet { return e.wallet }

// Location returns the active location.
func (e *Engine) Location() Location { return e.location }

// MiningTarget returns the node being mined, if any.
func (e *Engine) MiningTarget() (models.ResourceNode, bool) {
	if e.mining == nil {
		return models.ResourceNode{}, false
	}
	return *e.mining, true
}

// IsAttacking reports whether the attack animation is playing.
func (e *Engine) IsAttacking() bool { return e.attacking }

// AttackProgress is the fraction of the attack animation played, 0 when idle.
func (e *Engine) AttackProgress() float64 {
	if !e.attacking {
		return 0
	}
	return e.attackAnim / AttackDuration
}

// AttackReady reports whether Attack would be accepted now.
func (e *Engine) AttackReady() bool { return e.sinceAttack >= AttackCooldown-models.TimeEpsilon }

// Width returns the map width.
func (e *Engine) Width() int { return e.opts.Width }

// Height returns the map height.
func (e *Engine) Height() int { return e.opts.Height }

// SessionID identifies the current game in logs.
func (e *Engine) SessionID() string { return e.sessionID }
