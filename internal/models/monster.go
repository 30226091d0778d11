package models

import "math"

const (
	MonsterSize            = 40.0
	MonsterHealth          = 3
	MonsterWanderSpeed     = 40.0 // pixels per second
	MonsterChaseSpeed      = 90.0 // pixels per second
	MonsterDetectionRadius = 200.0

	// WanderInterval is how long a wander heading is kept before re-rolling.
	WanderInterval = 2.0
	// StealCooldown is the minimum time between two steals by one monster.
	StealCooldown = 1.0
	// HitFlashTime is how long a monster shows as hit after taking damage.
	HitFlashTime = 0.2
)

// MonsterMode is the behaviour a monster used on its last update.
type MonsterMode int

const (
	Wandering MonsterMode = iota
	Chasing
)

func (m MonsterMode) String() string {
	if m == Chasing {
		return "chasing"
	}
	return "wandering"
}

// Monster is a cave dweller that chases the player and steals resources.
type Monster struct {
	ID              int
	Pos             Vec2
	Size            float64
	WanderSpeed     float64
	ChaseSpeed      float64
	DetectionRadius float64
	Health          int
	Facing          int
	Mode            MonsterMode

	IsHit    bool
	hitTimer float64

	stealTimer float64

	wanderDir   Vec2
	wanderTimer float64

	Moved      bool
	Frame      int
	frameTimer float64
}

// NewMonster creates a full-health monster at pos.
func NewMonster(id int, pos Vec2) *Monster {
	return &Monster{
		ID:              id,
		Pos:             pos,
		Size:            MonsterSize,
		WanderSpeed:     MonsterWanderSpeed,
		ChaseSpeed:      MonsterChaseSpeed,
		DetectionRadius: MonsterDetectionRadius,
		Health:          MonsterHealth,
		Facing:          1,
	}
}

// Bounds returns the monster's bounding box.
func (m *Monster) Bounds() Rect { return RectAt(m.Pos, m.Size, m.Size) }

// Center returns the midpoint of the monster.
func (m *Monster) Center() Vec2 { return m.Bounds().Center() }

// WanderDir returns the current patrol heading.
func (m *Monster) WanderDir() Vec2 { return m.wanderDir }

// Update advances the monster by dt seconds toward or around target.
func (m *Monster) Update(dt float64, target Vec2, b Bounds, rng Rand) {
	center := m.Center()
	if d := center.Dist(target); d < m.DetectionRadius {
		m.chase(dt, target.Sub(center), d, b)
	} else {
		m.wander(dt, b, rng)
	}

	m.stealTimer += dt

	if m.IsHit {
		m.hitTimer -= dt
		if m.hitTimer <= TimeEpsilon {
			m.hitTimer = 0
			m.IsHit = false
		}
	}

	if m.Moved {
		m.frameTimer += dt
		for m.frameTimer >= animFrameTime-TimeEpsilon {
			m.frameTimer -= animFrameTime
			m.Frame = (m.Frame + 1) % animFrames
		}
	}
	m.Moved = false
}

func (m *Monster) chase(dt float64, delta Vec2, dist float64, b Bounds) {
	m.Mode = Chasing
	if dist == 0 {
		return
	}
	dir := delta.Scale(1 / dist)
	m.Pos = b.Clamp(m.Pos.Add(dir.Scale(m.ChaseSpeed*dt)), m.Size, m.Size)
	if s := sign(dir.X); s != 0 {
		m.Facing = s
	}
	m.Moved = true
}

func (m *Monster) wander(dt float64, b Bounds, rng Rand) {
	m.Mode = Wandering
	m.wanderTimer -= dt
	if m.wanderTimer <= TimeEpsilon {
		angle := rng.Float64() * 2 * math.Pi
		m.wanderDir = Vec2{math.Cos(angle), math.Sin(angle)}
		m.wanderTimer = WanderInterval
	}

	next := m.Pos.Add(m.wanderDir.Scale(m.WanderSpeed * dt))
	if !b.Fits(next, m.Size, m.Size) {
		m.wanderTimer = 0
	}
	m.Pos = b.Clamp(next, m.Size, m.Size)
	if s := sign(m.wanderDir.X); s != 0 {
		m.Facing = s
	}
	m.Moved = true
}

// TryConsumeSteal reports whether the steal cooldown has elapsed, resetting it if so.
func (m *Monster) TryConsumeSteal() bool {
	if m.stealTimer < StealCooldown-TimeEpsilon {
		return false
	}
	m.stealTimer = 0
	return true
}

// Hit applies one point of damage and starts the hit flash.
// It reports whether the monster died.
func (m *Monster) Hit() bool {
	if m.Health > 0 {
		m.Health--
	}
	m.IsHit = true
	m.hitTimer = HitFlashTime
	return m.Health <= 0
}
