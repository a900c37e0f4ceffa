package input

import (
	"testing"

	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/fsm"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want common.Vec2
	}{
		{"idle", Raw{}, common.V(0, 0)},
		{"left", Raw{Left: true}, common.V(-1, 0)},
		{"both_cancel", Raw{Left: true, Right: true}, common.V(0, 0)},
		{"climb_up", Raw{Up: true}, common.V(0, -1)},
		{"stick_in_deadzone", Raw{Right: true, StickX: 0.1}, common.V(1, 0)},
		{"stick_overrides", Raw{Right: true, StickX: -0.6}, common.V(-0.6, 0)},
		{"stick_vertical", Raw{StickY: 0.9}, common.V(0, 0.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw).Move
			if got.X != tt.want.X || got.Y != tt.want.Y {
				t.Fatalf("move = %v, want %v", got, tt.want)
			}
		})
	}

	f := Resolve(Raw{Jump: true, Attack: true, Block: true})
	if !f.Jump || !f.Attack || !f.Block || f.Spell {
		t.Fatalf("buttons not carried: %+v", f)
	}
}

func TestScriptedPressesFireOnce(t *testing.T) {
	move := common.V(1, 0)
	s := NewScripted(false,
		Step{Frame: fsm.InputFrame{Attack: true, Move: move}, Ticks: 3},
		Step{Frame: fsm.InputFrame{Jump: true}, Ticks: 1},
	)

	f := s.Sample()
	if !f.Attack || f.Move.X != 1 {
		t.Fatalf("first tick = %+v", f)
	}
	for i := 0; i < 2; i++ {
		f = s.Sample()
		if f.Attack || f.Move.X != 1 {
			t.Fatalf("held tick %d = %+v", i, f)
		}
	}
	if s.Done() {
		t.Fatalf("done too early")
	}
	if f = s.Sample(); !f.Jump {
		t.Fatalf("second step = %+v", f)
	}
	if !s.Done() {
		t.Fatalf("script not done")
	}
	if f = s.Sample(); f != (fsm.InputFrame{}) {
		t.Fatalf("exhausted script returned %+v", f)
	}
}

func TestScriptedLoops(t *testing.T) {
	s := NewScripted(true, Step{Frame: fsm.InputFrame{Spell: true}, Ticks: 2})
	presses := 0
	for i := 0; i < 6; i++ {
		if s.Sample().Spell {
			presses++
		}
	}
	if presses != 3 {
		t.Fatalf("presses = %d, want 3", presses)
	}
	if s.Done() {
		t.Fatalf("looping script reported done")
	}
}

func TestDemoScriptHasEveryAction(t *testing.T) {
	var seen fsm.InputFrame
	d := Demo()
	for i := 0; i < 400; i++ {
		f := d.Sample()
		seen.Jump = seen.Jump || f.Jump
		seen.Attack = seen.Attack || f.Attack
		seen.HeavyAttack = seen.HeavyAttack || f.HeavyAttack
		seen.Spell = seen.Spell || f.Spell
		seen.Slide = seen.Slide || f.Slide
		seen.Block = seen.Block || f.Block
	}
	if !seen.Jump || !seen.Attack || !seen.HeavyAttack || !seen.Spell || !seen.Slide || !seen.Block {
		t.Fatalf("demo missing actions: %+v", seen)
	}
}
