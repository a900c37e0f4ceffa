package event

import (
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
)

// Signal is the payload of topics that carry no data.
type Signal struct{}

// StateChange is published after every completed state swap.
type StateChange struct {
	From component.ActionKind
	To   component.ActionKind
}

// MoveInput carries the sampled movement direction for the tick.
type MoveInput struct {
	Direction common.Vec2
}

// Swing announces that an attack swing started and the hitbox should open.
type Swing struct {
	ComboStep int
	Heavy     bool
	Facing    float64
}

// Hit is published when one of the owner's swings lands on a target.
type Hit struct {
	TargetID  string
	Damage    float64
	ComboStep int
	Killed    bool
}

// Damage is published when the owner takes a non-lethal hit.
type Damage struct {
	Attacker  component.Actor
	Amount    float64
	Remaining float64
	Knockback float64
}

// Death is published when the owner's health reaches zero.
type Death struct {
	Attacker component.Actor
}

// AnimationDone is published when a non-looping clip reaches its end.
type AnimationDone struct {
	Clip string
}

// Channel is the synchronous event hub for one character. It is created by
// the host and handed to every component that publishes or listens; there is
// no global instance.
type Channel struct {
	closed bool

	StateChanged         *Stream[StateChange]
	MoveInput            *Stream[MoveInput]
	AttackRequested      *Stream[Signal]
	HeavyAttackRequested *Stream[Signal]
	JumpRequested        *Stream[Signal]
	SlideRequested       *Stream[Signal]
	SpellRequested       *Stream[Signal]
	SwingStarted         *Stream[Swing]
	AttackHit            *Stream[Hit]
	PlayerHurt           *Stream[Damage]
	PlayerDeath          *Stream[Death]
	InvincibilityEnded   *Stream[Signal]
	ClimbStarted         *Stream[Signal]
	ClimbEnded           *Stream[Signal]
	Landed               *Stream[Signal]
	AnimationComplete    *Stream[AnimationDone]
}

// NewChannel creates an open channel with every topic ready for use.
func NewChannel() *Channel {
	c := &Channel{}
	c.StateChanged = newStream[StateChange](c)
	c.MoveInput = newStream[MoveInput](c)
	c.AttackRequested = newStream[Signal](c)
	c.HeavyAttackRequested = newStream[Signal](c)
	c.JumpRequested = newStream[Signal](c)
	c.SlideRequested = newStream[Signal](c)
	c.SpellRequested = newStream[Signal](c)
	c.SwingStarted = newStream[Swing](c)
	c.AttackHit = newStream[Hit](c)
	c.PlayerHurt = newStream[Damage](c)
	c.PlayerDeath = newStream[Death](c)
	c.InvincibilityEnded = newStream[Signal](c)
	c.ClimbStarted = newStream[Signal](c)
	c.ClimbEnded = newStream[Signal](c)
	c.Landed = newStream[Signal](c)
	c.AnimationComplete = newStream[AnimationDone](c)
	return c
}

// Closed reports whether Close has been called.
func (c *Channel) Closed() bool {
	return c == nil || c.closed
}

// Close shuts the channel down. Later publishes and subscribes are no-ops and
// existing subscriptions are dropped.
func (c *Channel) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	c.StateChanged.reset()
	c.MoveInput.reset()
	c.AttackRequested.reset()
	c.HeavyAttackRequested.reset()
	c.JumpRequested.reset()
	c.SlideRequested.reset()
	c.SpellRequested.reset()
	c.SwingStarted.reset()
	c.AttackHit.reset()
	c.PlayerHurt.reset()
	c.PlayerDeath.reset()
	c.InvincibilityEnded.reset()
	c.ClimbStarted.reset()
	c.ClimbEnded.reset()
	c.Landed.reset()
	c.AnimationComplete.reset()
}
