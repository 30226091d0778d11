package models

// ResourceKind identifies a minable resource.
type ResourceKind int

const (
	Wood ResourceKind = iota
	Stone
	Gold
)

// ResourceKinds lists every resource kind in display order.
var ResourceKinds = []ResourceKind{Wood, Stone, Gold}

// ResourceTrait holds the per-kind constants for a resource.
type ResourceTrait struct {
	Name       string
	MiningTime float64 // seconds to extract one unit
	Glyph      rune    // draw hint for front-ends
}

var resourceTraits = [...]ResourceTrait{
	Wood:  {Name: "Wood", MiningTime: 2.0, Glyph: 'T'},
	Stone: {Name: "Stone", MiningTime: 3.0, Glyph: 'o'},
	Gold:  {Name: "Gold", MiningTime: 4.0, Glyph: '$'},
}

// Trait returns the constants for k.
func (k ResourceKind) Trait() ResourceTrait { return resourceTraits[k] }

func (k ResourceKind) String() string { return resourceTraits[k].Name }

// Valid reports whether k is one of the declared kinds.
func (k ResourceKind) Valid() bool { return k >= Wood && k <= Gold }

// BuildingKind identifies an auto-production building.
type BuildingKind int

const (
	Sawmill BuildingKind = iota
	Quarry
	GoldMine
)

// BuildingKinds lists every building kind in display order.
var BuildingKinds = []BuildingKind{Sawmill, Quarry, GoldMine}

// BuildingTrait holds the per-kind constants for a building.
type BuildingTrait struct {
	Name     string
	Produces ResourceKind
	Cost     Cost // level 1 construction cost
	Offset   Vec2 // placement relative to the base position
	Glyph    rune
}

var buildingTraits = [...]BuildingTrait{
	Sawmill: {
		Name:     "Sawmill",
		Produces: Wood,
		Cost:     Cost{Wood: 20, Stone: 10},
		Offset:   Vec2{X: 120, Y: 0},
		Glyph:    'S',
	},
	Quarry: {
		Name:     "Quarry",
		Produces: Stone,
		Cost:     Cost{Wood: 30, Stone: 10},
		Offset:   Vec2{X: 0, Y: 120},
		Glyph:    'Q',
	},
	GoldMine: {
		Name:     "Gold Mine",
		Produces: Gold,
		Cost:     Cost{Wood: 40, Stone: 40, Gold: 10, Blueprints: 2},
		Offset:   Vec2{X: 120, Y: 120},
		Glyph:    'G',
	},
}

// Trait returns the constants for k.
func (k BuildingKind) Trait() BuildingTrait { return buildingTraits[k] }

func (k BuildingKind) String() string { return buildingTraits[k].Name }

// Valid reports whether k is one of the declared kinds.
func (k BuildingKind) Valid() bool { return k >= Sawmill && k <= GoldMine }

// Cost is a price in the four economy currencies.
type Cost struct {
	Wood       int
	Stone      int
	Gold       int
	Blueprints int
}

// Scale multiplies the resource part of c by n. Blueprints are left alone.
func (c Cost) Scale(n int) Cost {
	return Cost{Wood: c.Wood * n, Stone: c.Stone * n, Gold: c.Gold * n, Blueprints: c.Blueprints}
}
