package fsm_test

import (
	"testing"

	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
	"github.com/milk9111/actioncore/fsm"
	"pgregory.net/rapid"
)

func TestMachineInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		body := newFakeBody()
		ground := &fakeGround{grounded: true}
		input := &stubInput{}
		events := event.NewChannel()
		m, err := fsm.New(fsm.Options{
			Body:     body,
			Ground:   ground,
			Input:    input,
			Events:   events,
			Tunables: fsm.DefaultTunables(),
			Logger:   quietLogger(),
		})
		if err != nil {
			rt.Fatalf("fsm.New: %v", err)
		}
		kinds := component.ActionKinds()

		steps := rapid.IntRange(1, 200).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			wasDead := m.IsInState(component.ActionDeath)
			wasHurt := m.IsInState(component.ActionHurt)
			velBefore := body.vel

			switch op := rapid.IntRange(0, 6).Draw(rt, "op"); op {
			case 0, 1:
				input.frame = fsm.InputFrame{
					Move:        common.V(rapid.Float64Range(-1, 1).Draw(rt, "mx"), rapid.Float64Range(-1, 1).Draw(rt, "my")),
					Jump:        rapid.Bool().Draw(rt, "jump"),
					Attack:      rapid.Bool().Draw(rt, "attack"),
					HeavyAttack: rapid.Bool().Draw(rt, "heavy"),
					Spell:       rapid.Bool().Draw(rt, "spell"),
					Slide:       rapid.Bool().Draw(rt, "slide"),
				}
				m.Tick(dt)
				if wasHurt && m.IsInState(component.ActionHurt) && body.vel != velBefore {
					rt.Fatalf("hurt state changed velocity %v -> %v", velBefore, body.vel)
				}
			case 2:
				ground.grounded = !ground.grounded
			case 3:
				events.PlayerHurt.Publish(event.Damage{Amount: 1, Knockback: 1})
			case 4:
				events.PlayerDeath.Publish(event.Death{})
			case 5:
				k := rapid.SampledFrom(kinds).Draw(rt, "kind")
				ok := m.RequestTransition(k)
				if wasDead && ok {
					rt.Fatalf("dead machine accepted %v", k)
				}
			case 6:
				m.Respawn()
			}

			if c := m.ComboCount(); c < 0 || c > fsm.DefaultTunables().MaxCombo {
				rt.Fatalf("combo count %d out of range", c)
			}
			if m.Context().Dead != m.IsInState(component.ActionDeath) {
				rt.Fatalf("dead flag %v disagrees with state %v", m.Context().Dead, m.Current())
			}
			if m.Context().Hurting != m.IsInState(component.ActionHurt) {
				rt.Fatalf("hurting flag disagrees with state %v", m.Current())
			}
		}
	})
}
