package models

import "math"

const (
	PlayerWidth  = 32.0
	PlayerHeight = 48.0
	PlayerSpeed  = 5.0 // pixels per move step

	NodeSize         = 40.0
	CaveEntranceSize = 60.0
	BuildingSize     = 50.0

	BaseStartSize  = 60.0
	BaseSizeGrowth = 20.0
	BaseMaxLevel   = 3

	BuildingMaxLevel = 3

	// animFrameTime is how long one walk frame is shown.
	animFrameTime = 0.15
	animFrames    = 4

	// TimeEpsilon absorbs float drift when summed frame deltas are compared
	// against a timer threshold.
	TimeEpsilon = 1e-9
)

// Player is the single user-controlled character.
type Player struct {
	Pos    Vec2
	W, H   float64
	Speed  float64
	Facing int // -1 left, 1 right
	Moving bool

	Frame     int
	animTimer float64
}

// NewPlayer places a player at pos.
func NewPlayer(pos Vec2) Player {
	return Player{
		Pos:    pos,
		W:      PlayerWidth,
		H:      PlayerHeight,
		Speed:  PlayerSpeed,
		Facing: 1,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() Rect { return RectAt(p.Pos, p.W, p.H) }

// Move translates the player by (dx, dy) steps and clamps to the map.
func (p *Player) Move(dx, dy float64, b Bounds) {
	if dx == 0 && dy == 0 {
		return
	}
	next := p.Pos.Add(Vec2{dx * p.Speed, dy * p.Speed})
	p.Pos = b.Clamp(next, p.W, p.H)
	if s := sign(dx); s != 0 {
		p.Facing = s
	}
	p.Moving = true
}

// Animate advances the walk cycle while moving and clears the moving flag.
func (p *Player) Animate(dt float64) {
	if p.Moving {
		p.animTimer += dt
		for p.animTimer >= animFrameTime-TimeEpsilon {
			p.animTimer -= animFrameTime
			p.Frame = (p.Frame + 1) % animFrames
		}
	} else {
		p.Frame = 0
		p.animTimer = 0
	}
	p.Moving = false
}

// ResourceNode is a deposit that yields one unit per completed mining cycle.
// Nodes are never depleted.
type ResourceNode struct {
	Kind       ResourceKind
	Pos        Vec2
	Size       float64
	BeingMined bool
	Progress   float64
	MiningTime float64
	Amount     int // informational only
}

// NewResourceNode creates a node of kind k at pos.
func NewResourceNode(k ResourceKind, pos Vec2) *ResourceNode {
	return &ResourceNode{
		Kind:       k,
		Pos:        pos,
		Size:       NodeSize,
		MiningTime: k.Trait().MiningTime,
		Amount:     math.MaxInt32,
	}
}

// Bounds returns the node's bounding box.
func (n *ResourceNode) Bounds() Rect { return RectAt(n.Pos, n.Size, n.Size) }

// Fraction returns mining progress in [0, 1].
func (n *ResourceNode) Fraction() float64 {
	if n.MiningTime <= 0 {
		return 0
	}
	return math.Min(1, n.Progress/n.MiningTime)
}

// Reset clears the mining flag and progress.
func (n *ResourceNode) Reset() {
	n.BeingMined = false
	n.Progress = 0
}

// CaveEntrance is a static trigger that moves the player underground.
type CaveEntrance struct {
	Pos  Vec2
	Size float64
}

// Bounds returns the entrance's bounding box.
func (c CaveEntrance) Bounds() Rect { return RectAt(c.Pos, c.Size, c.Size) }

var baseTiers = [...]string{"Camp", "Outpost", "Fort", "Castle"}

var baseBlueprintCost = [...]int{10, 15, 20, 30}

// Base is the player's home structure.
type Base struct {
	Pos   Vec2
	Level int
	Size  float64
}

// NewBase creates a level 0 base at pos.
func NewBase(pos Vec2) Base {
	return Base{Pos: pos, Size: BaseStartSize}
}

// Tier returns the tier name for the current level.
func (b *Base) Tier() string { return baseTiers[b.Level] }

// Bounds returns the base footprint.
func (b *Base) Bounds() Rect { return RectAt(b.Pos, b.Size, b.Size) }

// MaxLevel reports whether the base cannot be upgraded further.
func (b *Base) MaxLevel() bool { return b.Level >= BaseMaxLevel }

// UpgradeCost is the price of moving from the current level to the next.
func (b *Base) UpgradeCost() Cost {
	n := b.Level + 1
	c := Cost{Wood: 50, Stone: 30, Gold: 10}.Scale(n)
	c.Blueprints = baseBlueprintCost[b.Level]
	return c
}

// LevelUp bumps the level and grows the footprint.
func (b *Base) LevelUp() {
	b.Level++
	b.Size += BaseSizeGrowth
}

// AutoBuilding produces resources passively once per second.
type AutoBuilding struct {
	Kind  BuildingKind
	Level int
	Pos   Vec2
	Size  float64
}

// NewAutoBuilding creates a level 1 building of kind k at pos.
func NewAutoBuilding(k BuildingKind, pos Vec2) *AutoBuilding {
	return &AutoBuilding{Kind: k, Level: 1, Pos: pos, Size: BuildingSize}
}

// Bounds returns the building footprint.
func (a *AutoBuilding) Bounds() Rect { return RectAt(a.Pos, a.Size, a.Size) }

// MaxLevel reports whether the building cannot be upgraded further.
func (a *AutoBuilding) MaxLevel() bool { return a.Level >= BuildingMaxLevel }

// UpgradeCost doubles the construction resources; blueprints double per level (5, 10, 20...).
func (a *AutoBuilding) UpgradeCost() Cost {
	c := a.Kind.Trait().Cost.Scale(2)
	c.Blueprints = 5 << (a.Level - 1)
	return c
}

// Yield is the per-second production for the current level.
func (a *AutoBuilding) Yield() int {
	return int(math.Round(float64(a.Level) * 1.0))
}
