package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/tatianab/cave-miner/internal/models"
)

// Attack swings at the first monster inside the hitbox. It fails only while
// the cooldown is running; a swing that hits nothing still counts.
func (e *Engine) Attack() bool {
	if !e.AttackReady() {
		return false
	}
	e.sinceAttack = 0
	e.attacking = true
	e.attackAnim = 0
	e.emit(EventAttack, 0, "swung")

	hb := e.hitbox()
	p := e.active()
	for i, m := range p.monsters {
		if !hb.Intersects(m.Bounds()) {
			continue
		}
		dead := m.Hit()
		e.emit(EventHit, m.Health, fmt.Sprintf("hit monster %d", m.ID))
		if dead {
			p.monsters = slices.Delete(p.monsters, i, i+1)
			p.monsters = append(p.monsters, e.spawnMonster())
			e.wallet.Blueprints++
			e.emit(EventKill, 1, fmt.Sprintf("monster %d slain, found a blueprint", m.ID))
		}
		break
	}
	return true
}

// Hitbox returns the square the next attack would cover.
func (e *Engine) Hitbox() models.Rect { return e.hitbox() }

func (e *Engine) hitbox() models.Rect {
	size := HitboxScale * math.Max(e.player.W, e.player.H)
	c := e.player.Bounds().Center()
	return models.Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

func (e *Engine) updateAttack(dt float64) {
	e.sinceAttack += dt
	if !e.attacking {
		return
	}
	e.attackAnim += dt
	if e.attackAnim >= AttackDuration-models.TimeEpsilon {
		e.attacking = false
		e.attackAnim = 0
	}
}

func (e *Engine) updateMonsters(dt float64) {
	target := e.player.Bounds().Center()
	monsters := e.active().monsters
	for _, m := range monsters {
		m.Update(dt, target, e.bounds, e.rng)
	}
	for _, m := range monsters {
		if m.Center().Dist(target) < StealRange && m.TryConsumeSteal() {
			e.steal(m)
		}
	}
}

// steal takes a share of every resource for one monster. It reports whether
// anything was actually taken.
func (e *Engine) steal(m *models.Monster) bool {
	r := e.wallet.Steal(StealFraction)
	if !r.Any() {
		return false
	}
	e.emit(EventTheft, r.Total(), fmt.Sprintf("monster %d stole %d wood, %d stone, %d gold", m.ID, r.Wood, r.Stone, r.Gold))
	return true
}
