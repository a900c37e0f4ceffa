package arena

import (
	"github.com/google/uuid"
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
)

// DummyRespawn is how long a broken training dummy stays down.
const DummyRespawn = 3.0

// Target is a static training dummy. It takes hits through the same health
// model as the fighter but never moves or attacks.
type Target struct {
	id     string
	Name   string
	Pos    common.Vec2
	Width  float64
	Height float64
	Health *component.Health

	Hits      int
	LastHit   component.AttackDescriptor
	downTimer float64
}

func NewTarget(name string, pos common.Vec2, hp, w, h float64) *Target {
	if w <= 0 {
		w = 0.8
	}
	if h <= 0 {
		h = 1.6
	}
	return &Target{
		id:     uuid.NewString(),
		Name:   name,
		Pos:    pos,
		Width:  w,
		Height: h,
		Health: component.NewHealth(hp, 0),
	}
}

func (t *Target) ID() string                 { return t.id }
func (t *Target) Position() common.Vec2      { return t.Pos }
func (t *Target) Faction() component.Faction { return component.FactionEnemy }

func (t *Target) TakeDamage(desc component.AttackDescriptor) component.Outcome {
	out := t.Health.TakeDamage(desc)
	if out.Landed() {
		t.Hits++
		t.LastHit = desc
		if out == component.OutcomeKilled {
			t.downTimer = DummyRespawn
		}
	}
	return out
}

// Tick counts down the respawn of a broken dummy.
func (t *Target) Tick(dt float64) {
	t.Health.Tick(dt)
	if !t.Health.Dead {
		return
	}
	t.downTimer -= dt
	if t.downTimer <= 0 {
		t.Health.Revive()
	}
}
