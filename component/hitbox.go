package component

import (
	"log/slog"
	"math"

	"github.com/milk9111/actioncore/common"
)

// DamageFormula computes the damage of one swing. Implementations may fail,
// in which case the hitbox falls back to its multiplier table.
type DamageFormula interface {
	Damage(base float64, comboStep int, heavy bool) (float64, error)
}

// Hitbox is an offensive volume that is switched on for one swing at a time.
// Each activation keeps its own record of struck targets so a target can be
// damaged at most once per swing.
type Hitbox struct {
	Owner              Actor
	BaseDamage         float64
	KnockbackForce     float64
	KnockbackDirection common.Vec2
	ComboMultipliers   []float64
	Formula            DamageFormula
	Logger             *slog.Logger

	OnHit func(hb *Hitbox, target Damageable, desc AttackDescriptor, out Outcome)

	active bool
	step   int
	heavy  bool
	facing float64
	hits   map[string]struct{}
}

// Activate opens a new swing. Any previous hit record is discarded.
func (hb *Hitbox) Activate(comboStep int, heavy bool, facing float64) {
	if hb == nil {
		return
	}
	hb.active = true
	hb.step = comboStep
	hb.heavy = heavy
	hb.facing = facing
	if hb.hits == nil {
		hb.hits = make(map[string]struct{})
	}
	clear(hb.hits)
}

// Deactivate closes the current swing.
func (hb *Hitbox) Deactivate() {
	if hb == nil {
		return
	}
	hb.active = false
}

func (hb *Hitbox) Active() bool {
	return hb != nil && hb.active
}


// Facing returns the facing sign captured at activation.
func (hb *Hitbox) Facing() float64 {
	if hb == nil || hb.facing == 0 {
		return 1
	}
	return hb.facing
}

// HasHit reports whether id was already struck during this activation.
func (hb *Hitbox) HasHit(id string) bool {
	if hb == nil || hb.hits == nil {
		return false
	}
	_, ok := hb.hits[id]
	return ok
}

// Strike hands the current swing to target. Inactive hitboxes, the owner
// itself, friendly targets and targets already struck this activation are
// skipped.
func (hb *Hitbox) Strike(target Damageable) Outcome {
	if hb == nil || !hb.active || target == nil {
		return OutcomeIgnored
	}
	id := target.ID()
	if hb.Owner != nil {
		if id == hb.Owner.ID() || !factionCanHit(hb.Owner.Faction(), target.Faction()) {
			return OutcomeIgnored
		}
	}
	if hb.HasHit(id) {
		return OutcomeIgnored
	}
	hb.hits[id] = struct{}{}

	desc := AttackDescriptor{
		Damage:             hb.Damage(hb.step, hb.heavy),
		Attacker:           hb.Owner,
		KnockbackForce:     hb.KnockbackForce,
		KnockbackDirection: HitboxKnockback(hb.KnockbackDirection, hb.Facing()),
		ComboStep:          hb.step,
		Heavy:              hb.heavy,
	}
	out := target.TakeDamage(desc)
	if hb.OnHit != nil {
		hb.OnHit(hb, target, desc, out)
	}
	return out
}

// Damage returns the damage dealt by the given combo step. Heavy swings use
// the last multiplier.
func (hb *Hitbox) Damage(comboStep int, heavy bool) float64 {
	if hb == nil {
		return 0
	}
	if hb.Formula != nil {
		dmg, err := hb.Formula.Damage(hb.BaseDamage, comboStep, heavy)
		if err == nil {
			return dmg
		}
		hb.logger().Warn("hitbox: damage formula failed", "err", err, "step", comboStep)
	}
	return math.Round(hb.BaseDamage * hb.multiplier(comboStep, heavy))
}

func (hb *Hitbox) multiplier(comboStep int, heavy bool) float64 {
	n := len(hb.ComboMultipliers)
	if n == 0 {
		return 1
	}
	if heavy {
		return hb.ComboMultipliers[n-1]
	}
	idx := comboStep - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return hb.ComboMultipliers[idx]
}

func (hb *Hitbox) logger() *slog.Logger {
	if hb.Logger != nil {
		return hb.Logger
	}
	return slog.Default()
}
