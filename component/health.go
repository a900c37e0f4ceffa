package component

import "github.com/milk9111/actioncore/common"

// KnockbackBody is the slice of a physics body the health model needs to
// push its owner around.
type KnockbackBody interface {
	SetVelocity(v common.Vec2)
	ApplyImpulse(impulse common.Vec2)
}

// Health is the combat health model: a pool, an invincibility countdown and
// the damage intake rules.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	// InvincibleDuration is how long, in seconds, the owner ignores damage
	// after a non-lethal hit.
	InvincibleDuration float64
	Body               KnockbackBody

	invincible float64

	OnDamage             func(h *Health, desc AttackDescriptor)
	OnDeath              func(h *Health, desc AttackDescriptor)
	OnInvincibilityStart func(h *Health)
	OnInvincibilityEnd   func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max, invincibleDuration float64) *Health {
	if max <= 0 {
		max = 1
	}
	if invincibleDuration < 0 {
		invincibleDuration = 0
	}
	return &Health{Max: max, Current: max, InvincibleDuration: invincibleDuration}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// IsInvincible reports whether incoming damage is currently ignored.
func (h *Health) IsInvincible() bool {
	return h != nil && h.invincible > 0
}

// InvincibleRemaining returns the seconds left on the invincibility timer.
func (h *Health) InvincibleRemaining() float64 {
	if h == nil {
		return 0
	}
	return h.invincible
}

// TakeDamage applies desc unless the owner is dead, invincible, or the hit
// carries no damage. A lethal hit clamps to zero and reports death without
// knockback or a damage callback.
func (h *Health) TakeDamage(desc AttackDescriptor) Outcome {
	if h == nil || h.Dead || h.invincible > 0 || desc.Damage <= 0 {
		return OutcomeIgnored
	}

	remaining := h.Current - desc.Damage
	if remaining <= 0 {
		h.Current = 0
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, desc)
		}
		return OutcomeKilled
	}

	h.Current = remaining
	h.StartInvincibility(h.InvincibleDuration)
	h.applyKnockback(desc)
	if h.OnDamage != nil {
		h.OnDamage(h, desc)
	}
	return OutcomeHurt
}

func (h *Health) applyKnockback(desc AttackDescriptor) {
	if h.Body == nil || desc.KnockbackForce == 0 {
		return
	}
	h.Body.SetVelocity(common.Vec2{})
	h.Body.ApplyImpulse(Impulse(desc.KnockbackDirection, desc.KnockbackForce))
}

// StartInvincibility sets the invincibility timer to d seconds.
func (h *Health) StartInvincibility(d float64) {
	if h == nil || d <= 0 {
		return
	}
	if h.invincible <= 0 && h.OnInvincibilityStart != nil {
		h.OnInvincibilityStart(h)
	}
	h.invincible = d
}

// Tick advances the invincibility timer by dt seconds.
func (h *Health) Tick(dt float64) {
	if h == nil || h.invincible <= 0 {
		return
	}
	h.invincible -= dt
	if h.invincible <= 1e-9 {
		h.invincible = 0
		if h.OnInvincibilityEnd != nil {
			h.OnInvincibilityEnd(h)
		}
	}
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.SetCurrentHP(h.Current + amount)
}

// Revive refills the pool and clears death and invincibility.
func (h *Health) Revive() {
	if h == nil {
		return
	}
	h.Dead = false
	h.Current = h.Max
	h.invincible = 0
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v float64) {
	if h == nil {
		return
	}
	h.Current = common.Clamp(v, 0, h.Max)
}

// SetMaxHP sets the maximum health value and clamps Current if needed.
func (h *Health) SetMaxHP(v float64) {
	if h == nil {
		return
	}
	h.Max = v
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
