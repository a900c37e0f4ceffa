package component

import (
	"testing"

	"github.com/milk9111/actioncore/common"
	"pgregory.net/rapid"
)

type fakeActor struct {
	id      string
	pos     common.Vec2
	faction Faction
}

func (a fakeActor) ID() string            { return a.id }
func (a fakeActor) Position() common.Vec2 { return a.pos }
func (a fakeActor) Faction() Faction      { return a.faction }

type fakeBody struct {
	vel      common.Vec2
	impulses []common.Vec2
}

func (b *fakeBody) SetVelocity(v common.Vec2) { b.vel = v }
func (b *fakeBody) ApplyImpulse(i common.Vec2) {
	b.impulses = append(b.impulses, i)
	b.vel = common.V(b.vel.X+i.X, b.vel.Y+i.Y)
}

func TestHealthTakeDamage(t *testing.T) {
	attacker := fakeActor{id: "enemy", pos: common.V(5, 0)}
	cases := []struct {
		name       string
		start      float64
		damage     float64
		want       Outcome
		wantHP     float64
		wantDamage int
		wantDeath  int
		wantInvuln bool
	}{
		{"survives", 100, 30, OutcomeHurt, 70, 1, 0, true},
		{"lethal", 20, 30, OutcomeKilled, 0, 0, 1, false},
		{"exactly_lethal", 30, 30, OutcomeKilled, 0, 0, 1, false},
		{"zero_damage", 50, 0, OutcomeIgnored, 50, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(100, 1)
			h.SetCurrentHP(c.start)
			var damaged, died int
			var gotAttacker Actor
			h.OnDamage = func(_ *Health, desc AttackDescriptor) {
				damaged++
				gotAttacker = desc.Attacker
			}
			h.OnDeath = func(_ *Health, desc AttackDescriptor) {
				died++
				gotAttacker = desc.Attacker
			}

			out := h.TakeDamage(AttackDescriptor{Damage: c.damage, Attacker: attacker})
			if out != c.want {
				t.Fatalf("outcome = %v, want %v", out, c.want)
			}
			if h.Current != c.wantHP {
				t.Fatalf("current = %v, want %v", h.Current, c.wantHP)
			}
			if damaged != c.wantDamage || died != c.wantDeath {
				t.Fatalf("damage events %d death events %d, want %d/%d", damaged, died, c.wantDamage, c.wantDeath)
			}
			if h.IsInvincible() != c.wantInvuln {
				t.Fatalf("invincible = %v, want %v", h.IsInvincible(), c.wantInvuln)
			}
			if out.Landed() && gotAttacker.ID() != "enemy" {
				t.Fatalf("attacker not carried through: %v", gotAttacker)
			}
		})
	}
}

func TestHealthInvincibilityBlocksDamage(t *testing.T) {
	h := NewHealth(100, 1)
	if out := h.TakeDamage(AttackDescriptor{Damage: 10}); out != OutcomeHurt {
		t.Fatalf("first hit = %v", out)
	}
	if out := h.TakeDamage(AttackDescriptor{Damage: 10}); out != OutcomeIgnored {
		t.Fatalf("hit during invincibility = %v", out)
	}
	if h.Current != 90 {
		t.Fatalf("current = %v, want 90", h.Current)
	}
}

func TestHealthInvincibilityExpires(t *testing.T) {
	h := NewHealth(100, 1)
	ended := 0
	h.OnInvincibilityEnd = func(*Health) { ended++ }
	h.TakeDamage(AttackDescriptor{Damage: 1})

	dt := 1.0 / 60.0
	for i := 0; i < 59; i++ {
		h.Tick(dt)
	}
	if !h.IsInvincible() {
		t.Fatalf("invincibility ended early at %v remaining", h.InvincibleRemaining())
	}
	h.Tick(dt)
	if h.IsInvincible() {
		t.Fatalf("still invincible after 1s: %v", h.InvincibleRemaining())
	}
	if ended != 1 {
		t.Fatalf("end callback fired %d times", ended)
	}
}

func TestHealthKnockback(t *testing.T) {
	body := &fakeBody{vel: common.V(3, -2)}
	h := NewHealth(100, 1)
	h.Body = body
	h.TakeDamage(AttackDescriptor{Damage: 5, KnockbackForce: 5, KnockbackDirection: common.V(-1, 0)})
	if len(body.impulses) != 1 {
		t.Fatalf("expected one impulse, got %d", len(body.impulses))
	}
	if body.vel != common.V(-5, 0) {
		t.Fatalf("velocity = %v, want (-5, 0)", body.vel)
	}

	lethal := &fakeBody{}
	h2 := NewHealth(10, 1)
	h2.Body = lethal
	h2.TakeDamage(AttackDescriptor{Damage: 50, KnockbackForce: 5, KnockbackDirection: common.V(1, 0)})
	if len(lethal.impulses) != 0 {
		t.Fatalf("lethal hit must not knock back")
	}
}

func TestHealthDeadIgnoresEverything(t *testing.T) {
	h := NewHealth(10, 0)
	h.TakeDamage(AttackDescriptor{Damage: 10})
	if !h.Dead {
		t.Fatalf("expected dead")
	}
	if out := h.TakeDamage(AttackDescriptor{Damage: 1}); out != OutcomeIgnored {
		t.Fatalf("dead took damage: %v", out)
	}
	h.Heal(5)
	if h.Current != 0 {
		t.Fatalf("dead healed to %v", h.Current)
	}
	h.Revive()
	if h.Dead || h.Current != 10 {
		t.Fatalf("revive: dead=%v current=%v", h.Dead, h.Current)
	}
}

func TestHealthStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.Float64Range(1, 500).Draw(t, "max")
		h := NewHealth(max, rapid.Float64Range(0, 2).Draw(t, "iframes"))
		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				h.TakeDamage(AttackDescriptor{Damage: rapid.Float64Range(-10, 200).Draw(t, "dmg")})
			case 1:
				h.Heal(rapid.Float64Range(-10, 200).Draw(t, "heal"))
			case 2:
				h.Tick(rapid.Float64Range(0, 0.5).Draw(t, "dt"))
			case 3:
				before := h.Current
				if h.IsInvincible() {
					h.TakeDamage(AttackDescriptor{Damage: 1})
					if h.Current != before {
						t.Fatalf("damage applied while invincible")
					}
				}
			}
			if h.Current < 0 || h.Current > h.Max {
				t.Fatalf("current %v outside [0, %v]", h.Current, h.Max)
			}
		}
	})
}
