package engine

import (
	"fmt"
	"math"

	"github.com/tatianab/cave-miner/internal/models"
)

// Build constructs a level 1 building of kind k next to the base.
// It fails if one already exists or the wallet cannot cover the cost.
func (e *Engine) Build(k models.BuildingKind) bool {
	if !k.Valid() || e.findBuilding(k) != nil {
		return false
	}
	t := k.Trait()
	if !e.wallet.Spend(t.Cost) {
		return false
	}
	e.buildings = append(e.buildings, models.NewAutoBuilding(k, e.base.Pos.Add(t.Offset)))
	e.emit(EventBuilt, 1, fmt.Sprintf("built a %s", k))
	return true
}

// UpgradeBuilding raises the level of an existing building.
func (e *Engine) UpgradeBuilding(k models.BuildingKind) bool {
	b := e.findBuilding(k)
	if b == nil || b.MaxLevel() {
		return false
	}
	if !e.wallet.Spend(b.UpgradeCost()) {
		return false
	}
	b.Level++
	e.emit(EventBuildingUpgraded, b.Level, fmt.Sprintf("%s upgraded to level %d", k, b.Level))
	return true
}

// UpgradeBase moves the base to the next tier.
func (e *Engine) UpgradeBase() bool {
	if e.base.MaxLevel() {
		return false
	}
	if !e.wallet.Spend(e.base.UpgradeCost()) {
		return false
	}
	e.base.LevelUp()
	e.emit(EventBaseUpgraded, e.base.Level, fmt.Sprintf("base is now a %s", e.base.Tier()))
	return true
}

// BuildCost returns what Build(k) or UpgradeBuilding(k) would charge next,
// and false when neither is possible.
func (e *Engine) BuildCost(k models.BuildingKind) (models.Cost, bool) {
	if !k.Valid() {
		return models.Cost{}, false
	}
	b := e.findBuilding(k)
	if b == nil {
		return k.Trait().Cost, true
	}
	if b.MaxLevel() {
		return models.Cost{}, false
	}
	return b.UpgradeCost(), true
}

func (e *Engine) findBuilding(k models.BuildingKind) *models.AutoBuilding {
	for _, b := range e.buildings {
		if b.Kind == k {
			return b
		}
	}
	return nil
}

// updateProduction runs one production round per whole second accumulated.
// At most maxProductionRounds run per call; the rest of a longer stall is dropped.
func (e *Engine) updateProduction(dt float64) {
	e.productionTimer += dt
	if e.productionTimer < ProductionInterval-models.TimeEpsilon {
		return
	}
	rounds := math.Floor((e.productionTimer + models.TimeEpsilon) / ProductionInterval)
	if rounds > maxProductionRounds {
		rounds = maxProductionRounds
		e.productionTimer = 0
	} else {
		e.productionTimer = max(0, e.productionTimer-rounds*ProductionInterval)
	}
	for range int(rounds) {
		for _, b := range e.buildings {
			e.wallet.Add(b.Kind.Trait().Produces, b.Yield())
		}
	}
}
