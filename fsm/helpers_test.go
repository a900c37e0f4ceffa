package fsm_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
	"github.com/milk9111/actioncore/fsm"
)

const dt = 0.05

type fakeBody struct {
	pos      common.Vec2
	vel      common.Vec2
	gravity  bool
	impulses []common.Vec2
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravity: true}
}

func (b *fakeBody) Position() common.Vec2     { return b.pos }
func (b *fakeBody) Velocity() common.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec2) { b.vel = v }
func (b *fakeBody) SetGravityEnabled(on bool) { b.gravity = on }
func (b *fakeBody) ApplyImpulse(i common.Vec2) {
	b.impulses = append(b.impulses, i)
	b.vel = common.V(b.vel.X+i.X, b.vel.Y+i.Y)
}

type fakeGround struct {
	grounded bool
}

func (g *fakeGround) Grounded() bool { return g.grounded }

// stubInput returns Move and Block every tick; the action flags fire once.
type stubInput struct {
	frame fsm.InputFrame
}

func (s *stubInput) Sample() fsm.InputFrame {
	f := s.frame
	s.frame = fsm.InputFrame{Move: f.Move, Block: f.Block}
	return f
}

type actor struct {
	id  string
	pos common.Vec2
}

func (a actor) ID() string                 { return a.id }
func (a actor) Position() common.Vec2      { return a.pos }
func (a actor) Faction() component.Faction { return component.FactionEnemy }

type rig struct {
	m      *fsm.Machine
	body   *fakeBody
	ground *fakeGround
	input  *stubInput
	events *event.Channel
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRig(t *testing.T, anim fsm.AnimationSink) *rig {
	t.Helper()
	r := &rig{
		body:   newFakeBody(),
		ground: &fakeGround{grounded: true},
		input:  &stubInput{},
		events: event.NewChannel(),
	}
	m, err := fsm.New(fsm.Options{
		Body:      r.body,
		Ground:    r.ground,
		Animation: anim,
		Input:     r.input,
		Events:    r.events,
		Tunables:  fsm.DefaultTunables(),
		Logger:    quietLogger(),
	})
	if err != nil {
		t.Fatalf("fsm.New: %v", err)
	}
	r.m = m
	return r
}

func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.m.Tick(dt)
	}
}

func (r *rig) press(f fsm.InputFrame) {
	f.Move = r.input.frame.Move
	f.Block = r.input.frame.Block
	r.input.frame = f
	r.m.Tick(dt)
}

func (r *rig) expectState(t *testing.T, want component.ActionKind) {
	t.Helper()
	if got := r.m.Current(); got != want {
		t.Fatalf("state = %v, want %v", got, want)
	}
}
