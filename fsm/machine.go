package fsm

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
)

var (
	ErrNoBody         = errors.New("fsm: body is required")
	ErrNoGroundSensor = errors.New("fsm: ground sensor is required")
	ErrNoEvents       = errors.New("fsm: event channel is required")
)

// maxQueuedTransitions bounds how many reentrant requests one swap may
// trigger before the rest are dropped.
const maxQueuedTransitions = 16

// Options wires a Machine to its collaborators. Animation and Input may be
// nil; everything else is required.
type Options struct {
	Body      Body
	Ground    GroundSensor
	Animation AnimationSink
	Input     InputSampler
	Events    *event.Channel
	Tunables  Tunables
	Logger    *slog.Logger
}

// Machine is the action state machine of one character. Exactly one action
// is active at a time; Tick drives it.
type Machine struct {
	ctx     StateContext
	current component.ActionKind

	body   Body
	ground GroundSensor
	anim   AnimationSink
	input  InputSampler
	events *event.Channel
	log    *slog.Logger

	jump   jumpData
	attack attackData
	slide  slideData

	heavyCooldown component.Cooldown
	spellCooldown component.Cooldown
	slideCooldown component.Cooldown

	respawnAuthorized bool
	swapping          bool
	queue             []component.ActionKind
	unsubscribe       []func()
}

// New builds a machine and enters Idle.
func New(opts Options) (*Machine, error) {
	if opts.Body == nil {
		return nil, ErrNoBody
	}
	if opts.Ground == nil {
		return nil, ErrNoGroundSensor
	}
	if opts.Events == nil {
		return nil, ErrNoEvents
	}
	if err := opts.Tunables.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		ctx:    newStateContext(opts.Tunables),
		body:   opts.Body,
		ground: opts.Ground,
		anim:   opts.Animation,
		input:  opts.Input,
		events: opts.Events,
		log:    opts.Logger,
	}
	if m.anim == nil {
		m.anim = noopSink{}
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	m.applyCooldownDurations()
	m.subscribe()

	m.ctx.Grounded = m.ground.Grounded()
	if !m.apply(component.ActionIdle) {
		return nil, fmt.Errorf("fsm: enter initial state: %w", component.ErrUnknownAction)
	}
	m.drain()
	return m, nil
}

func (m *Machine) subscribe() {
	ch := m.events
	m.unsubscribe = append(m.unsubscribe,
		ch.JumpRequested.Subscribe(func(event.Signal) { m.handleJumpRequest() }),
		ch.AttackRequested.Subscribe(func(event.Signal) { m.handleAttackRequest(false) }),
		ch.HeavyAttackRequested.Subscribe(func(event.Signal) { m.handleAttackRequest(true) }),
		ch.SpellRequested.Subscribe(func(event.Signal) { m.handleSpellRequest() }),
		ch.SlideRequested.Subscribe(func(event.Signal) { m.handleSlideRequest() }),
		ch.PlayerHurt.Subscribe(m.handleHurt),
		ch.PlayerDeath.Subscribe(func(event.Death) { m.handleDeath() }),
	)
}

// Close detaches the machine from its event channel.
func (m *Machine) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// SetTunables swaps the tunables in place, e.g. after a hot reload. Invalid
// values are rejected and the old ones kept.
func (m *Machine) SetTunables(t Tunables) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.ctx.Tunables = t
	if m.ctx.ComboCount > t.MaxCombo {
		m.ctx.ComboCount = t.MaxCombo
	}
	m.applyCooldownDurations()
	return nil
}

func (m *Machine) applyCooldownDurations() {
	m.heavyCooldown.Duration = m.ctx.HeavyAttackCooldown
	m.spellCooldown.Duration = m.ctx.SpellCooldown
	m.slideCooldown.Duration = m.ctx.SlideCooldown
}

// Tick runs one simulation step: the variable-rate update followed by the
// fixed-rate update, both with the same dt.
func (m *Machine) Tick(dt float64) {
	m.Update(dt)
	m.FixedUpdate(dt)
}

// Update samples sensors and input, dispatches requests and runs the active
// state's per-frame logic.
func (m *Machine) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	m.ctx.Now += dt
	m.ctx.StateTimer += dt
	m.ctx.Grounded = m.ground.Grounded()
	m.heavyCooldown.Tick(dt)
	m.spellCooldown.Tick(dt)
	m.slideCooldown.Tick(dt)

	frame := m.sample()
	m.ctx.Input = frame.Move
	m.ctx.Blocking = frame.Block && m.ctx.Grounded && !m.ctx.Dead && !m.ctx.Hurting
	m.events.MoveInput.Publish(event.MoveInput{Direction: frame.Move})
	m.dispatch(frame)

	m.checkFlip()
	m.update(dt)
	m.writeAnimParams()
}

// FixedUpdate runs the active state's physics-rate logic.
func (m *Machine) FixedUpdate(dt float64) {
	m.fixedUpdate(dt)
}

func (m *Machine) sample() InputFrame {
	if m.input == nil || !m.ctx.InputEnabled {
		return InputFrame{}
	}
	return m.input.Sample()
}

func (m *Machine) dispatch(f InputFrame) {
	ch := m.events
	if f.Jump {
		ch.JumpRequested.Publish(event.Signal{})
	}
	if f.Attack {
		ch.AttackRequested.Publish(event.Signal{})
	}
	if f.HeavyAttack {
		ch.HeavyAttackRequested.Publish(event.Signal{})
	}
	if f.Spell {
		ch.SpellRequested.Publish(event.Signal{})
	}
	if f.Slide {
		ch.SlideRequested.Publish(event.Signal{})
	}
}

func (m *Machine) checkFlip() {
	if m.ctx.Dead || m.ctx.Hurting || m.current == component.ActionSlide {
		return
	}
	x := m.ctx.Input.X
	if math.Abs(x) <= m.ctx.InputThreshold {
		return
	}
	m.ctx.FacingRight = x > 0
}

func (m *Machine) writeAnimParams() {
	v := m.body.Velocity()
	m.anim.SetBool(ParamIsGround, m.ctx.Grounded)
	m.anim.SetFloat(ParamXVelocity, math.Abs(v.X))
	m.anim.SetFloat(ParamYVelocity, v.Y)
	m.anim.SetBool(ParamIsSliding, m.ctx.Sliding)
	m.anim.SetBool(ParamIsClimbing, m.ctx.Climbing)
	m.anim.SetBool(ParamIsDead, m.ctx.Dead)
	m.anim.SetBool(ParamBlock, m.ctx.Blocking)
}

// RequestTransition asks the machine to switch to kind. It reports false when
// the kind is unknown or the current state's guard refuses. Requests made
// while a swap is already in progress are queued, reported as accepted, and
// validated once the running swap completes.
func (m *Machine) RequestTransition(kind component.ActionKind) bool {
	if !kind.Valid() {
		m.log.Error("fsm: unknown state requested", "state", kind)
		return false
	}
	if m.swapping {
		m.queue = append(m.queue, kind)
		return true
	}
	if !m.apply(kind) {
		return false
	}
	m.drain()
	return true
}

func (m *Machine) apply(to component.ActionKind) bool {
	from := m.current
	if !m.canTransition(from, to) {
		m.log.Debug("fsm: transition rejected", "from", from, "to", to)
		return false
	}

	m.swapping = true
	m.exit(from)
	m.current = to
	m.ctx.StateTimer = 0
	m.enter(to)
	m.events.StateChanged.Publish(event.StateChange{From: from, To: to})
	m.swapping = false

	m.log.Debug("fsm: transition", "from", from, "to", to)
	return true
}

func (m *Machine) drain() {
	applied := 0
	for len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		if applied >= maxQueuedTransitions {
			m.log.Warn("fsm: dropping queued transitions", "pending", len(m.queue)+1)
			m.queue = m.queue[:0]
			return
		}
		if m.apply(next) {
			applied++
		}
	}
}

// Current returns the active state.
func (m *Machine) Current() component.ActionKind {
	return m.current
}

// IsInState reports whether kind is the active state.
func (m *Machine) IsInState(kind component.ActionKind) bool {
	return m.current == kind
}

// FacingDirection returns +1 when facing right and -1 when facing left.
func (m *Machine) FacingDirection() float64 {
	return m.ctx.facing()
}

// Context returns a copy of the current state context.
func (m *Machine) Context() StateContext {
	return m.ctx
}

// ComboCount returns the number of swings in the current chain.
func (m *Machine) ComboCount() int {
	return m.ctx.ComboCount
}

// Cooldowns holds the seconds left before each gated ability is ready.
type Cooldowns struct {
	Heavy, Spell, Slide float64
}

func (m *Machine) Cooldowns() Cooldowns {
	return Cooldowns{
		Heavy: m.heavyCooldown.Remaining(),
		Spell: m.spellCooldown.Remaining(),
		Slide: m.slideCooldown.Remaining(),
	}
}

// Blocking reports whether the guard input is held while grounded.
func (m *Machine) Blocking() bool {
	return m.ctx.Blocking
}

// Position returns the body position.
func (m *Machine) Position() common.Vec2 {
	return m.body.Position()
}

// EnableInput resumes sampling input.
func (m *Machine) EnableInput() {
	m.ctx.InputEnabled = true
}

// DisableInput zeroes sampled input and drops action requests until
// EnableInput is called.
func (m *Machine) DisableInput() {
	m.ctx.InputEnabled = false
	m.ctx.Input = common.Vec2{}
}

// InputEnabled reports whether input is being sampled.
func (m *Machine) InputEnabled() bool {
	return m.ctx.InputEnabled
}

// AllowRespawn authorizes the next Death -> Idle transition.
func (m *Machine) AllowRespawn() {
	m.respawnAuthorized = true
}

// Respawn authorizes and performs Death -> Idle. It reports false when the
// character is not dead.
func (m *Machine) Respawn() bool {
	if m.current != component.ActionDeath {
		return false
	}
	m.AllowRespawn()
	return m.RequestTransition(component.ActionIdle)
}

// StartClimbing enters Climb, e.g. when a ladder is grabbed.
func (m *Machine) StartClimbing() bool {
	if m.ctx.Dead || m.ctx.Hurting || m.ctx.Climbing {
		return false
	}
	return m.RequestTransition(component.ActionClimb)
}

// StopClimbing lets go of the ladder.
func (m *Machine) StopClimbing() bool {
	if m.current != component.ActionClimb {
		return false
	}
	if m.ctx.Grounded {
		return m.RequestTransition(component.ActionIdle)
	}
	return m.RequestTransition(component.ActionJump)
}

// JumpOffLadder leaves Climb with an active jump.
func (m *Machine) JumpOffLadder() bool {
	if m.current != component.ActionClimb {
		return false
	}
	m.jump.forceImpulse = true
	ok := m.RequestTransition(component.ActionJump)
	m.jump.forceImpulse = false
	return ok
}

func (m *Machine) handleJumpRequest() {
	if m.current == component.ActionClimb {
		m.JumpOffLadder()
		return
	}
	if m.ctx.Dead || !m.ctx.Grounded || m.ctx.Hurting {
		return
	}
	m.RequestTransition(component.ActionJump)
}

func (m *Machine) handleAttackRequest(heavy bool) {
	if m.ctx.Dead || !m.ctx.Grounded || m.ctx.Hurting {
		return
	}
	if m.ctx.Attacking {
		if !heavy {
			m.RequestCombo()
		}
		return
	}
	if heavy && !m.heavyCooldown.Ready() {
		return
	}
	m.attack.heavyNext = heavy
	m.RequestTransition(component.ActionAttack)
	m.attack.heavyNext = false
}

func (m *Machine) handleSpellRequest() {
	if m.ctx.Dead || !m.ctx.Grounded || m.ctx.Hurting || !m.spellCooldown.Ready() {
		return
	}
	m.RequestTransition(component.ActionCast)
}

func (m *Machine) handleSlideRequest() {
	if m.ctx.Dead || !m.ctx.Grounded || m.ctx.Hurting || m.ctx.Sliding || !m.slideCooldown.Ready() {
		return
	}
	m.RequestTransition(component.ActionSlide)
}

// handleHurt reacts to a non-lethal hit. Attacks that carried their own
// knockback were already applied by the health model; otherwise the
// character is pushed away from the attacker.
func (m *Machine) handleHurt(d event.Damage) {
	if m.ctx.Dead || m.ctx.Hurting {
		return
	}
	if d.Knockback == 0 && d.Attacker != nil && m.ctx.HurtForce > 0 {
		dir := component.SelfKnockback(d.Attacker.Position(), m.body.Position())
		m.body.SetVelocity(common.Vec2{})
		m.body.ApplyImpulse(component.Impulse(dir, m.ctx.HurtForce))
	}
	m.RequestTransition(component.ActionHurt)
}

func (m *Machine) handleDeath() {
	if m.ctx.Dead {
		return
	}
	m.RequestTransition(component.ActionDeath)
}
