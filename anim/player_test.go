package anim

import (
	"errors"
	"testing"

	"github.com/milk9111/actioncore/fsm"
)

func testClips() []Clip {
	return []Clip{
		{Name: "idle", Frames: 4, FPS: 8, Loop: true},
		{Name: "run", Frames: 6, FPS: 12, Loop: true},
		{Name: "fall", Frames: 2, FPS: 8, Loop: true},
		{Name: "death", Frames: 5, FPS: 10},
		{Name: "attack", Tag: fsm.AttackTag, Frames: 4, FPS: 10},
		{Name: "attack_2", Tag: fsm.AttackTag, Frames: 5, FPS: 10},
		{Name: "hurt", Frames: 3, FPS: 10},
	}
}

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(testClips(), map[fsm.AnimParam]string{
		fsm.ParamAttack: "attack",
		fsm.ParamHurt:   "hurt",
	}, Locomotion{Idle: "idle", Run: "run", Air: "fall", Death: "death"})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestNewPlayerRejectsUnknownClips(t *testing.T) {
	_, err := NewPlayer(testClips(), map[fsm.AnimParam]string{fsm.ParamSpell: "cast"}, Locomotion{Idle: "idle"})
	if !errors.Is(err, ErrUnknownClip) {
		t.Fatalf("err = %v, want ErrUnknownClip", err)
	}
	_, err = NewPlayer(testClips(), nil, Locomotion{Idle: "nope"})
	if !errors.Is(err, ErrUnknownClip) {
		t.Fatalf("err = %v, want ErrUnknownClip", err)
	}
}

func TestAttackProgressAndCompletion(t *testing.T) {
	p := newTestPlayer(t)
	var done []string
	p.OnComplete = func(c string) { done = append(done, c) }
	p.SetBool(fsm.ParamIsGround, true)

	p.SetTrigger(fsm.ParamAttack)
	if p.Tag() != fsm.AttackTag || p.NormalizedTime() != 0 {
		t.Fatalf("attack not started: tag=%q t=%v", p.Tag(), p.NormalizedTime())
	}
	p.Update(0.2)
	if got := p.NormalizedTime(); got != 0.5 {
		t.Fatalf("progress = %v, want 0.5", got)
	}
	if p.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", p.Frame())
	}
	p.Update(0.25)
	if p.Clip() != "idle" || len(done) != 1 || done[0] != "attack" {
		t.Fatalf("after attack: clip=%q done=%v", p.Clip(), done)
	}
}

func TestComboVariantClip(t *testing.T) {
	p := newTestPlayer(t)
	p.SetFloat(fsm.ParamCombo, 2)
	p.SetTrigger(fsm.ParamAttack)
	if p.Clip() != "attack_2" {
		t.Fatalf("clip = %q, want attack_2", p.Clip())
	}
	p.SetFloat(fsm.ParamCombo, 3)
	p.SetTrigger(fsm.ParamAttack)
	if p.Clip() != "attack" {
		t.Fatalf("clip = %q, want attack", p.Clip())
	}
}

func TestLocomotionFollowsParams(t *testing.T) {
	p := newTestPlayer(t)
	cases := []struct {
		name   string
		ground bool
		speed  float64
		dead   bool
		want   string
	}{
		{"idle", true, 0, false, "idle"},
		{"run", true, 5, false, "run"},
		{"air", false, 5, false, "fall"},
		{"dead", true, 0, true, "death"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.SetBool(fsm.ParamIsGround, c.ground)
			p.SetFloat(fsm.ParamXVelocity, c.speed)
			p.SetBool(fsm.ParamIsDead, c.dead)
			p.Update(0.01)
			if p.Clip() != c.want {
				t.Fatalf("clip = %q, want %q", p.Clip(), c.want)
			}
		})
	}
}

func TestLoopingClipWraps(t *testing.T) {
	p := newTestPlayer(t)
	p.SetBool(fsm.ParamIsGround, true)
	p.Update(0.625)
	if got := p.NormalizedTime(); got != 0.25 {
		t.Fatalf("looping progress = %v, want 0.25", got)
	}
}
