package models

import (
	"math"
	"testing"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// seqRand returns vals in order and counts the draws.
type seqRand struct {
	vals  []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

func TestWalletAddAndCount(t *testing.T) {
	var w Wallet
	w.Add(Stone, 3)
	w.Add(Gold, -2)
	w.Add(ResourceKind(7), 5)

	want := map[ResourceKind]int{Wood: 0, Stone: 3, Gold: 0}
	for _, k := range ResourceKinds {
		if got := w.Count(k); got != want[k] {
			t.Errorf("Expected %d %s, got %d", want[k], k, got)
		}
	}
}

func TestWalletSpendIsAllOrNothing(t *testing.T) {
	w := Wallet{Wood: 10, Stone: 5, Gold: 0, Blueprints: 1}

	if w.Spend(Cost{Wood: 5, Stone: 5, Gold: 1}) {
		t.Fatalf("Expected spend to fail when gold is short")
	}
	if w.Wood != 10 || w.Stone != 5 || w.Blueprints != 1 {
		t.Errorf("Expected wallet unchanged after failed spend, got %+v", w)
	}

	if !w.Spend(Cost{Wood: 10, Stone: 5, Blueprints: 1}) {
		t.Fatalf("Expected exact spend to succeed")
	}
	if w != (Wallet{}) {
		t.Errorf("Expected empty wallet, got %+v", w)
	}
}

func TestWalletStealTruncatesAndExemptsBlueprints(t *testing.T) {
	w := Wallet{Wood: 2, Stone: 100, Gold: 19, Blueprints: 50}

	r := w.Steal(0.15)

	if r.Wood != 0 || w.Wood != 2 {
		t.Errorf("Expected no wood stolen from 2, got stolen=%d left=%d", r.Wood, w.Wood)
	}
	if r.Stone != 15 || w.Stone != 85 {
		t.Errorf("Expected 15 stone stolen, got stolen=%d left=%d", r.Stone, w.Stone)
	}
	if r.Gold != 2 || w.Gold != 17 {
		t.Errorf("Expected 2 gold stolen, got stolen=%d left=%d", r.Gold, w.Gold)
	}
	if w.Blueprints != 50 {
		t.Errorf("Expected blueprints untouched, got %d", w.Blueprints)
	}
	if !r.Any() {
		t.Errorf("Expected theft to be reported")
	}

	empty := Wallet{Wood: 1, Stone: 3, Gold: 6}
	if r := empty.Steal(0.15); r.Any() {
		t.Errorf("Expected no theft from small counters, got %+v", r)
	}
}

func TestBaseUpgradeCost(t *testing.T) {
	b := NewBase(Vec2{})
	want := []Cost{
		{Wood: 50, Stone: 30, Gold: 10, Blueprints: 10},
		{Wood: 100, Stone: 60, Gold: 20, Blueprints: 15},
		{Wood: 150, Stone: 90, Gold: 30, Blueprints: 20},
	}
	for level, w := range want {
		if got := b.UpgradeCost(); got != w {
			t.Errorf("Level %d: expected cost %+v, got %+v", level, w, got)
		}
		b.LevelUp()
	}
	if !b.MaxLevel() {
		t.Errorf("Expected base at max level after 3 upgrades")
	}
	if b.Tier() != "Castle" {
		t.Errorf("Expected tier Castle, got %s", b.Tier())
	}
	if b.Size != BaseStartSize+3*BaseSizeGrowth {
		t.Errorf("Expected size %v, got %v", BaseStartSize+3*BaseSizeGrowth, b.Size)
	}
}

func TestBuildingUpgradeCostAndYield(t *testing.T) {
	a := NewAutoBuilding(Sawmill, Vec2{})
	base := Sawmill.Trait().Cost

	if got := a.UpgradeCost(); got.Wood != 2*base.Wood || got.Stone != 2*base.Stone || got.Blueprints != 5 {
		t.Errorf("Expected level 1 upgrade cost 2x base with 5 blueprints, got %+v", got)
	}
	if a.Yield() != 1 {
		t.Errorf("Expected yield 1 at level 1, got %d", a.Yield())
	}

	a.Level = 2
	if got := a.UpgradeCost().Blueprints; got != 10 {
		t.Errorf("Expected 10 blueprints at level 2, got %d", got)
	}
	if a.Yield() != 2 {
		t.Errorf("Expected yield 2 at level 2, got %d", a.Yield())
	}
}

func TestBuildingTraitsMapToResources(t *testing.T) {
	want := map[BuildingKind]ResourceKind{Sawmill: Wood, Quarry: Stone, GoldMine: Gold}
	for _, k := range BuildingKinds {
		if got := k.Trait().Produces; got != want[k] {
			t.Errorf("%s: expected to produce %s, got %s", k, want[k], got)
		}
	}
}

func TestPlayerMoveClampsAndFaces(t *testing.T) {
	p := NewPlayer(Vec2{X: 2, Y: 2})
	b := Bounds{Width: 100, Height: 100}

	p.Move(-1, -1, b)
	if p.Pos != (Vec2{}) {
		t.Errorf("Expected player clamped to origin, got %+v", p.Pos)
	}
	if p.Facing != -1 {
		t.Errorf("Expected facing -1, got %d", p.Facing)
	}
	if !p.Moving {
		t.Errorf("Expected moving flag set")
	}

	p.Animate(0.016)
	if p.Moving {
		t.Errorf("Expected moving flag cleared by Animate")
	}
}

func TestMonsterChasesTarget(t *testing.T) {
	m := NewMonster(1, Vec2{X: 100, Y: 100})
	b := Bounds{Width: 800, Height: 600}
	target := m.Center().Add(Vec2{X: -50})

	m.Update(0.5, target, b, fixedRand(0))

	if m.Mode != Chasing {
		t.Fatalf("Expected chasing, got %s", m.Mode)
	}
	wantX := 100 - MonsterChaseSpeed*0.5
	if math.Abs(m.Pos.X-wantX) > 1e-9 || m.Pos.Y != 100 {
		t.Errorf("Expected monster at (%v, 100), got %+v", wantX, m.Pos)
	}
	if m.Facing != -1 {
		t.Errorf("Expected facing -1, got %d", m.Facing)
	}
	if m.Moved {
		t.Errorf("Expected moved flag reset at end of update")
	}
}

func TestMonsterWanderRerollsAtBoundary(t *testing.T) {
	m := NewMonster(1, Vec2{X: 0, Y: 300})
	b := Bounds{Width: 800, Height: 600}
	far := Vec2{X: 790, Y: 10}

	// angle pi: heading straight into the left wall.
	m.Update(0.1, far, b, fixedRand(0.5))

	if m.Mode != Wandering {
		t.Fatalf("Expected wandering, got %s", m.Mode)
	}
	if m.Pos.X != 0 {
		t.Errorf("Expected monster clamped to left edge, got %+v", m.Pos)
	}
	if m.wanderTimer != 0 {
		t.Errorf("Expected wander timer zeroed after boundary hit, got %v", m.wanderTimer)
	}

	// angle 0: next roll heads right.
	m.Update(0.1, far, b, fixedRand(0))
	if m.WanderDir().X != 1 {
		t.Errorf("Expected rerolled heading (1, 0), got %+v", m.WanderDir())
	}
	if m.Facing != 1 {
		t.Errorf("Expected facing 1, got %d", m.Facing)
	}
}

func TestMonsterWanderRerollsOnInterval(t *testing.T) {
	m := NewMonster(1, Vec2{X: 300, Y: 300})
	b := Bounds{Width: 800, Height: 600}
	far := Vec2{X: 790, Y: 590}
	rng := &seqRand{vals: []float64{0, 0.25}}

	for range 8 {
		m.Update(0.25, far, b, rng)
	}
	if rng.calls != 1 {
		t.Fatalf("Expected one heading roll before 2s, got %d", rng.calls)
	}
	if m.WanderDir() != (Vec2{X: 1, Y: 0}) {
		t.Errorf("Expected heading (1, 0), got %+v", m.WanderDir())
	}

	m.Update(0.25, far, b, rng)
	if rng.calls != 2 {
		t.Fatalf("Expected a second roll after 2s in open space, got %d", rng.calls)
	}
	if d := m.WanderDir(); math.Abs(d.X) > 1e-9 || math.Abs(d.Y-1) > 1e-9 {
		t.Errorf("Expected heading (0, 1), got %+v", d)
	}
}

func TestMonsterWalkFrameAdvancesOnlyWhenMoving(t *testing.T) {
	m := NewMonster(1, Vec2{X: 300, Y: 300})
	b := Bounds{Width: 800, Height: 600}
	far := Vec2{X: 790, Y: 590}

	for range 8 {
		m.Update(1.0/60, far, b, fixedRand(0))
	}
	if m.Frame != 0 {
		t.Fatalf("Expected frame 0 before %vs of movement, got %d", animFrameTime, m.Frame)
	}
	m.Update(1.0/60, far, b, fixedRand(0))
	if m.Frame != 1 {
		t.Fatalf("Expected frame 1 after 9 frames of movement, got %d", m.Frame)
	}
	if m.Moved {
		t.Errorf("Expected moved flag reset at end of update")
	}

	// Standing on the target: chasing with zero distance does not move.
	m.Update(1.0, m.Center(), b, fixedRand(0))
	if m.Mode != Chasing {
		t.Fatalf("Expected chasing, got %s", m.Mode)
	}
	if m.Frame != 1 {
		t.Errorf("Expected frame to hold while standing still, got %d", m.Frame)
	}
}

func TestMonsterStealCooldown(t *testing.T) {
	m := NewMonster(1, Vec2{X: 100, Y: 100})
	b := Bounds{Width: 800, Height: 600}

	m.Update(0.5, Vec2{X: 700, Y: 500}, b, fixedRand(0.25))
	if m.TryConsumeSteal() {
		t.Fatalf("Expected steal to be on cooldown after 0.5s")
	}
	m.Update(0.5, Vec2{X: 700, Y: 500}, b, fixedRand(0.25))
	if !m.TryConsumeSteal() {
		t.Fatalf("Expected steal allowed after 1s")
	}
	if m.TryConsumeSteal() {
		t.Errorf("Expected cooldown reset after a steal")
	}
}

func TestMonsterHitFlash(t *testing.T) {
	m := NewMonster(1, Vec2{X: 100, Y: 100})
	b := Bounds{Width: 800, Height: 600}

	if m.Hit() {
		t.Fatalf("Expected monster to survive first hit")
	}
	if !m.IsHit {
		t.Fatalf("Expected hit flag set")
	}
	m.Update(HitFlashTime, Vec2{X: 700, Y: 500}, b, fixedRand(0.25))
	if m.IsHit {
		t.Errorf("Expected hit flag cleared after flash time")
	}
	m.Hit()
	if !m.Hit() {
		t.Errorf("Expected monster dead after third hit")
	}
}
