package character

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/milk9111/actioncore/anim"
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
	"github.com/milk9111/actioncore/fsm"
	"github.com/milk9111/actioncore/physics"
	"github.com/milk9111/actioncore/prefabs"
	"github.com/milk9111/actioncore/script"
)

var (
	ErrNoSpec  = errors.New("character: spec is required")
	ErrNoWorld = errors.New("character: physics world is required")
)

type Options struct {
	Spec     *prefabs.CharacterSpec
	World    *physics.World
	Position common.Vec2
	Input    fsm.InputSampler
	// Events is created when nil.
	Events *event.Channel
	// Formula overrides the spec's damage script.
	Formula component.DamageFormula
	Logger  *slog.Logger
}

// Character composes the state machine with its health, hitbox, physics body
// and animation player, all sharing one event channel.
type Character struct {
	id      string
	name    string
	faction component.Faction

	Events  *event.Channel
	Machine *fsm.Machine
	Health  *component.Health
	Hitbox  *component.Hitbox
	Body    *physics.Body
	Anim    *anim.Player

	shape  prefabs.HitboxSpec
	world  *physics.World
	logger *slog.Logger
	unsub  []func()
}

func New(opts Options) (*Character, error) {
	if opts.Spec == nil {
		return nil, ErrNoSpec
	}
	if opts.World == nil {
		return nil, ErrNoWorld
	}
	spec := opts.Spec
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	faction, _ := prefabs.ParseFaction(spec.Faction)
	triggers, _ := spec.TriggerMap()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	player, err := anim.NewPlayer(spec.Clips(), triggers, spec.Locomotion())
	if err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}

	events := opts.Events
	if events == nil {
		events = event.NewChannel()
	}

	c := &Character{
		id:      uuid.NewString(),
		name:    spec.Name,
		faction: faction,
		Events:  events,
		Anim:    player,
		shape:   spec.Hitbox,
		world:   opts.World,
	}
	c.logger = logger.With("character", c.name, "id", c.id)

	c.Body = opts.World.AddBody(opts.Position, spec.Collider.Width, spec.Collider.Height)

	c.Health = component.NewHealth(spec.Health.Max, spec.Health.InvincibleDuration)
	c.Health.Body = c.Body
	c.Health.OnDamage = c.onDamage
	c.Health.OnDeath = c.onDeath
	c.Health.OnInvincibilityEnd = func(*component.Health) {
		c.Events.InvincibilityEnded.Publish(event.Signal{})
	}

	c.Hitbox = &component.Hitbox{Owner: c, Logger: c.logger}
	c.configureHitbox(spec, opts.Formula)
	c.Hitbox.OnHit = c.onHit

	player.OnComplete = func(clip string) {
		c.Events.AnimationComplete.Publish(event.AnimationDone{Clip: clip})
	}

	c.unsub = append(c.unsub,
		events.SwingStarted.Subscribe(func(s event.Swing) {
			c.Hitbox.Activate(s.ComboStep, s.Heavy, s.Facing)
		}),
		events.StateChanged.Subscribe(func(sc event.StateChange) {
			if sc.From == component.ActionAttack {
				c.Hitbox.Deactivate()
			}
		}),
	)

	m, err := fsm.New(fsm.Options{
		Body:      c.Body,
		Ground:    c.Body,
		Animation: player,
		Input:     opts.Input,
		Events:    events,
		Tunables:  spec.Tunables(),
		Logger:    c.logger,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("character: %w", err)
	}
	c.Machine = m

	return c, nil
}

func (c *Character) configureHitbox(spec *prefabs.CharacterSpec, formula component.DamageFormula) {
	hb := spec.Hitbox
	c.Hitbox.BaseDamage = hb.BaseDamage
	c.Hitbox.KnockbackForce = hb.KnockbackForce
	c.Hitbox.KnockbackDirection = hb.Knockback.Vec()
	c.Hitbox.ComboMultipliers = append([]float64(nil), hb.ComboMultipliers...)
	c.Hitbox.Formula = formula
	if formula != nil || hb.DamageScript == "" {
		return
	}
	f, err := script.LoadDamageFormula(hb.DamageScript, hb.ComboMultipliers)
	if err != nil {
		c.logger.Warn("character: damage script unavailable, using multipliers", "script", hb.DamageScript, "err", err)
		return
	}
	c.Hitbox.Formula = f
}

func (c *Character) ID() string {
	return c.id
}

func (c *Character) Name() string {
	return c.name
}

func (c *Character) Position() common.Vec2 {
	return c.Body.Position()
}

func (c *Character) Faction() component.Faction {
	return c.faction
}

// TakeDamage routes an incoming attack through the health model. Damage is
// ignored while blocking on the ground.
func (c *Character) TakeDamage(desc component.AttackDescriptor) component.Outcome {
	if c.Machine != nil && c.Machine.Blocking() {
		c.logger.Debug("character: blocked", "damage", desc.Damage)
		return component.OutcomeIgnored
	}
	return c.Health.TakeDamage(desc)
}

func (c *Character) onDamage(h *component.Health, desc component.AttackDescriptor) {
	c.logger.Info("character: hurt", "damage", desc.Damage, "remaining", h.Current)
	c.Events.PlayerHurt.Publish(event.Damage{
		Attacker:  desc.Attacker,
		Amount:    desc.Damage,
		Remaining: h.Current,
		Knockback: desc.KnockbackForce,
	})
}

func (c *Character) onDeath(_ *component.Health, desc component.AttackDescriptor) {
	c.logger.Info("character: died", "damage", desc.Damage)
	c.Events.PlayerDeath.Publish(event.Death{Attacker: desc.Attacker})
}

func (c *Character) onHit(_ *component.Hitbox, target component.Damageable, desc component.AttackDescriptor, out component.Outcome) {
	if !out.Landed() {
		return
	}
	c.logger.Debug("character: hit", "target", target.ID(), "damage", desc.Damage, "outcome", out)
	c.Events.AttackHit.Publish(event.Hit{
		TargetID:  target.ID(),
		Damage:    desc.Damage,
		ComboStep: desc.ComboStep,
		Killed:    out == component.OutcomeKilled,
	})
}

// Tick advances the machine, animation and health timers by dt. The physics
// world is stepped by its owner.
func (c *Character) Tick(dt float64) {
	c.Machine.Update(dt)
	c.Anim.Update(dt)
	c.Machine.FixedUpdate(dt)
	c.Health.Tick(dt)
}

// Respawn revives a dead character at pos.
func (c *Character) Respawn(pos common.Vec2) bool {
	if !c.Machine.IsInState(component.ActionDeath) {
		return false
	}
	c.Health.Revive()
	if !c.Machine.Respawn() {
		return false
	}
	c.Body.SetPosition(pos)
	c.Body.SetVelocity(common.Vec2{})
	c.logger.Info("character: respawned", "x", pos.X, "y", pos.Y)
	return true
}

// ApplySpec swaps in reloaded tunables. The collider and animation set are
// fixed at construction.
func (c *Character) ApplySpec(spec *prefabs.CharacterSpec) error {
	if spec == nil {
		return ErrNoSpec
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("character: %w", err)
	}
	if err := c.Machine.SetTunables(spec.Tunables()); err != nil {
		return fmt.Errorf("character: %w", err)
	}
	c.Health.SetMaxHP(spec.Health.Max)
	c.Health.InvincibleDuration = spec.Health.InvincibleDuration
	c.configureHitbox(spec, nil)
	c.shape = spec.Hitbox
	c.logger.Info("character: spec applied")
	return nil
}

// HitboxRect returns the swing volume's top-left corner and size, mirrored
// by the facing captured when the swing started.
func (c *Character) HitboxRect() (x, y, w, h float64) {
	pos := c.Position()
	facing := c.Hitbox.Facing()
	cx := pos.X + c.shape.OffsetX*facing
	cy := pos.Y + c.shape.OffsetY
	return cx - c.shape.Width/2, cy - c.shape.Height/2, c.shape.Width, c.shape.Height
}

// Status is a snapshot for debug output.
type Status struct {
	State      component.ActionKind
	Facing     float64
	Combo      int
	HP, MaxHP  float64
	Invincible bool
	Grounded   bool
	Blocking   bool
	Clip       string
	Frame      int
	Cooldowns  fsm.Cooldowns
	Position   common.Vec2
}

func (c *Character) Status() Status {
	ctx := c.Machine.Context()
	return Status{
		State:      c.Machine.Current(),
		Facing:     c.Machine.FacingDirection(),
		Combo:      ctx.ComboCount,
		HP:         c.Health.Current,
		MaxHP:      c.Health.Max,
		Invincible: c.Health.IsInvincible(),
		Grounded:   ctx.Grounded,
		Blocking:   ctx.Blocking,
		Clip:       c.Anim.Clip(),
		Frame:      c.Anim.Frame(),
		Cooldowns:  c.Machine.Cooldowns(),
		Position:   c.Position(),
	}
}

func (s Status) String() string {
	cd := s.Cooldowns
	return fmt.Sprintf("%s facing=%+.0f combo=%d hp=%.0f/%.0f inv=%v ground=%v block=%v clip=%s#%d cd=%.1f/%.1f/%.1f pos=(%.2f,%.2f)",
		s.State, s.Facing, s.Combo, s.HP, s.MaxHP, s.Invincible, s.Grounded, s.Blocking, s.Clip, s.Frame,
		cd.Heavy, cd.Spell, cd.Slide, s.Position.X, s.Position.Y)
}

// Close detaches every subscription and removes the body from the world.
func (c *Character) Close() {
	for _, u := range c.unsub {
		u()
	}
	c.unsub = nil
	if c.Machine != nil {
		c.Machine.Close()
	}
	c.world.RemoveBody(c.Body)
}
