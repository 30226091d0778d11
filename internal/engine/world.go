package engine

import (
	"math"

	"github.com/tatianab/cave-miner/internal/models"
)

// Reference map size the base counts are tuned for.
const (
	RefWidth  = 800
	RefHeight = 600

	// spawnMargin keeps generated entities away from the map edges.
	spawnMargin = 100.0
)

// Base counts at the reference map size.
const (
	baseTrees     = 15
	baseStones    = 10
	baseEntrances = 2
	baseGold      = 8
	baseMonsters  = 5
)

// pool is the set of entities living in one location.
type pool struct {
	nodes     []*models.ResourceNode
	monsters  []*models.Monster
	entrances []models.CaveEntrance
}

// ScaledCount scales a reference count by map area, never returning less than one.
func ScaledCount(base, width, height int) int {
	ratio := float64(width) * float64(height) / (RefWidth * RefHeight)
	return max(1, int(math.Round(float64(base)*ratio)))
}

func (e *Engine) generateWorld() {
	w, h := e.opts.Width, e.opts.Height

	var surface pool
	for range ScaledCount(baseTrees, w, h) {
		surface.nodes = append(surface.nodes, models.NewResourceNode(models.Wood, e.randomPos(models.NodeSize)))
	}
	for range ScaledCount(baseStones, w, h) {
		surface.nodes = append(surface.nodes, models.NewResourceNode(models.Stone, e.randomPos(models.NodeSize)))
	}
	for range ScaledCount(baseEntrances, w, h) {
		surface.entrances = append(surface.entrances, models.CaveEntrance{
			Pos:  e.randomPos(models.CaveEntranceSize),
			Size: models.CaveEntranceSize,
		})
	}

	var cave pool
	for range ScaledCount(baseGold, w, h) {
		cave.nodes = append(cave.nodes, models.NewResourceNode(models.Gold, e.randomPos(models.NodeSize)))
	}
	for range ScaledCount(baseMonsters, w, h) {
		cave.monsters = append(cave.monsters, e.spawnMonster())
	}

	e.pools = [2]pool{Surface: surface, Cave: cave}
	e.log.Infof("generated world %dx%d: %d surface nodes, %d entrances, %d cave nodes, %d monsters",
		w, h, len(surface.nodes), len(surface.entrances), len(cave.nodes), len(cave.monsters))
}

// randomPos picks a uniform position for a square of the given size inside the spawn margin.
func (e *Engine) randomPos(size float64) models.Vec2 {
	spanX := math.Max(0, e.bounds.Width-2*spawnMargin-size)
	spanY := math.Max(0, e.bounds.Height-2*spawnMargin-size)
	p := models.Vec2{
		X: spawnMargin + e.rng.Float64()*spanX,
		Y: spawnMargin + e.rng.Float64()*spanY,
	}
	return e.bounds.Clamp(p, size, size)
}

func (e *Engine) spawnMonster() *models.Monster {
	e.nextMonsterID++
	return models.NewMonster(e.nextMonsterID, e.randomPos(models.MonsterSize))
}
