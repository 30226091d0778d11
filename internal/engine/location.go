package engine

// TryEnterCave moves the player underground when standing on a cave entrance.
// It fails when already in the cave or not touching any entrance.
func (e *Engine) TryEnterCave() bool {
	if e.location != Surface {
		return false
	}
	pb := e.player.Bounds()
	for _, c := range e.pools[Surface].entrances {
		if !pb.Intersects(c.Bounds()) {
			continue
		}
		e.cancelMining()
		e.location = Cave
		e.player.Pos = e.caveEntry
		e.emit(EventEnterCave, len(e.pools[Cave].monsters), "descended into the cave")
		return true
	}
	return false
}

// ExitCave returns the player to the surface spawn point.
// Monsters stay behind in the cave pool.
func (e *Engine) ExitCave() bool {
	if e.location != Cave {
		return false
	}
	e.cancelMining()
	e.location = Surface
	e.pools[Surface].monsters = nil
	e.player.Pos = e.spawn
	e.emit(EventExitCave, 0, "climbed back to the surface")
	return true
}
