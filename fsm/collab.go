package fsm

//go:generate go tool mockgen -source=collab.go -destination=mocks/collab_mock.go -package=mocks

import "github.com/milk9111/actioncore/common"

// GroundSensor reports whether the character is standing on something.
type GroundSensor interface {
	Grounded() bool
}

// Body is the physics body driven by the states. Screen coordinates: a
// negative Y velocity moves the body up.
type Body interface {
	Position() common.Vec2
	Velocity() common.Vec2
	SetVelocity(v common.Vec2)
	ApplyImpulse(impulse common.Vec2)
	SetGravityEnabled(enabled bool)
}

// AnimationSink receives animation intents and reports playback progress of
// the clip that is currently showing.
type AnimationSink interface {
	SetBool(p AnimParam, v bool)
	SetFloat(p AnimParam, v float64)
	SetTrigger(p AnimParam)
	// NormalizedTime is the playback fraction of the current clip in [0, 1].
	NormalizedTime() float64
	// Tag names the phase of the current clip, e.g. AttackTag.
	Tag() string
}

// InputSampler is polled once per tick.
type InputSampler interface {
	Sample() InputFrame
}

// InputFrame is one tick of player intent. The action flags are true only on
// the tick the button went down; Block is true while held.
type InputFrame struct {
	Move        common.Vec2
	Jump        bool
	Attack      bool
	HeavyAttack bool
	Spell       bool
	Slide       bool
	Block       bool
}

// AttackTag is the clip tag that marks an attack swing.
const AttackTag = "attack"

type noopSink struct{}

func (noopSink) SetBool(AnimParam, bool)     {}
func (noopSink) SetFloat(AnimParam, float64) {}
func (noopSink) SetTrigger(AnimParam)        {}
func (noopSink) NormalizedTime() float64     { return 0 }
func (noopSink) Tag() string                 { return "" }
