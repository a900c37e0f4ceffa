package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/actioncore/anim"
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/fsm"
	"gopkg.in/yaml.v3"
)

const (
	CharacterFile = "character.yaml"
	ArenaFile     = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CharacterSpec struct {
	Name      string        `yaml:"name"`
	Faction   string        `yaml:"faction"`
	Collider  ColliderSpec  `yaml:"collider"`
	Health    HealthSpec    `yaml:"health"`
	Movement  MovementSpec  `yaml:"movement"`
	Slide     SlideSpec     `yaml:"slide"`
	Climb     ClimbSpec     `yaml:"climb"`
	Hurt      HurtSpec      `yaml:"hurt"`
	Combo     ComboSpec     `yaml:"combo"`
	Attack    AttackSpec    `yaml:"attack"`
	Cast      CastSpec      `yaml:"cast"`
	Hitbox    HitboxSpec    `yaml:"hitbox"`
	Animation AnimationSpec `yaml:"animation"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HealthSpec struct {
	Max                float64 `yaml:"max"`
	InvincibleDuration float64 `yaml:"invincible_duration"`
}

type MovementSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpForce      float64 `yaml:"jump_force"`
	AirControl     float64 `yaml:"air_control"`
	InputThreshold float64 `yaml:"input_threshold"`
}

type SlideSpec struct {
	Speed              float64 `yaml:"speed"`
	Duration           float64 `yaml:"duration"`
	EndSpeedMultiplier float64 `yaml:"end_speed_multiplier"`
	Cooldown           float64 `yaml:"cooldown"`
}

type ClimbSpec struct {
	Speed float64 `yaml:"speed"`
}

type HurtSpec struct {
	Force    float64 `yaml:"force"`
	Duration float64 `yaml:"duration"`
}

type ComboSpec struct {
	Max         int     `yaml:"max"`
	ResetTime   float64 `yaml:"reset_time"`
	WindowStart float64 `yaml:"window_start"`
	WindowEnd   float64 `yaml:"window_end"`
}

type AttackSpec struct {
	Duration      float64 `yaml:"duration"`
	Timeout       float64 `yaml:"timeout"`
	Inertia       float64 `yaml:"inertia"`
	HeavyCooldown float64 `yaml:"heavy_cooldown"`
}

type CastSpec struct {
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type HitboxSpec struct {
	Width            float64    `yaml:"width"`
	Height           float64    `yaml:"height"`
	OffsetX          float64    `yaml:"offset_x"`
	OffsetY          float64    `yaml:"offset_y"`
	BaseDamage       float64    `yaml:"base_damage"`
	KnockbackForce   float64    `yaml:"knockback_force"`
	Knockback        VectorSpec `yaml:"knockback"`
	ComboMultipliers []float64  `yaml:"combo_multipliers"`
	DamageScript     string     `yaml:"damage_script"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vec() common.Vec2 {
	return common.V(v.X, v.Y)
}

type AnimationSpec struct {
	Clips      []ClipSpec        `yaml:"clips"`
	Triggers   map[string]string `yaml:"triggers"`
	Locomotion LocomotionSpec    `yaml:"locomotion"`
}

type ClipSpec struct {
	Name   string  `yaml:"name"`
	Tag    string  `yaml:"tag"`
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type LocomotionSpec struct {
	Idle  string `yaml:"idle"`
	Run   string `yaml:"run"`
	Air   string `yaml:"air"`
	Slide string `yaml:"slide"`
	Climb string `yaml:"climb"`
	Death string `yaml:"death"`
}

// LoadCharacterSpec loads and validates character.yaml.
func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CharacterFile, err)
	}
	return &spec, nil
}

// Validate checks the parts of the spec that are not covered by the state
// machine's own tunables validation.
func (s *CharacterSpec) Validate() error {
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("collider %vx%v must be positive", s.Collider.Width, s.Collider.Height)
	}
	if s.Health.Max <= 0 {
		return fmt.Errorf("health max %v must be positive", s.Health.Max)
	}
	if _, err := ParseFaction(s.Faction); err != nil {
		return err
	}
	if _, err := s.TriggerMap(); err != nil {
		return err
	}
	return s.Tunables().Validate()
}

// Tunables maps the spec onto the state machine's tunables.
func (s *CharacterSpec) Tunables() fsm.Tunables {
	return fsm.Tunables{
		MoveSpeed:      s.Movement.MoveSpeed,
		JumpForce:      s.Movement.JumpForce,
		AirControl:     s.Movement.AirControl,
		InputThreshold: s.Movement.InputThreshold,

		SlideSpeed:              s.Slide.Speed,
		SlideDuration:           s.Slide.Duration,
		SlideEndSpeedMultiplier: s.Slide.EndSpeedMultiplier,

		ClimbSpeed: s.Climb.Speed,

		HurtForce:    s.Hurt.Force,
		HurtDuration: s.Hurt.Duration,

		MaxCombo:       s.Combo.Max,
		ComboResetTime: s.Combo.ResetTime,
		ComboWindow:    fsm.ComboWindow{Start: s.Combo.WindowStart, End: s.Combo.WindowEnd},
		AttackDuration: s.Attack.Duration,
		AttackTimeout:  s.Attack.Timeout,
		AttackInertia:  s.Attack.Inertia,

		CastDuration: s.Cast.Duration,

		HeavyAttackCooldown: s.Attack.HeavyCooldown,
		SpellCooldown:       s.Cast.Cooldown,
		SlideCooldown:       s.Slide.Cooldown,
	}
}

// Clips converts the clip specs for the animation player.
func (s *CharacterSpec) Clips() []anim.Clip {
	out := make([]anim.Clip, 0, len(s.Animation.Clips))
	for _, c := range s.Animation.Clips {
		out = append(out, anim.Clip{Name: c.Name, Tag: c.Tag, Frames: c.Frames, FPS: c.FPS, Loop: c.Loop})
	}
	return out
}

// TriggerMap resolves trigger parameter names to clip names.
func (s *CharacterSpec) TriggerMap() (map[fsm.AnimParam]string, error) {
	out := make(map[fsm.AnimParam]string, len(s.Animation.Triggers))
	for name, clip := range s.Animation.Triggers {
		p, ok := fsm.ParseAnimParam(name)
		if !ok {
			return nil, fmt.Errorf("unknown animation trigger %q", name)
		}
		out[p] = clip
	}
	return out, nil
}

func (s *CharacterSpec) Locomotion() anim.Locomotion {
	l := s.Animation.Locomotion
	return anim.Locomotion{Idle: l.Idle, Run: l.Run, Air: l.Air, Slide: l.Slide, Climb: l.Climb, Death: l.Death}
}

// ParseFaction maps a faction name to its value; empty means neutral.
func ParseFaction(name string) (component.Faction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "neutral":
		return component.FactionNeutral, nil
	case "player":
		return component.FactionPlayer, nil
	case "enemy":
		return component.FactionEnemy, nil
	case "environment":
		return component.FactionEnvironment, nil
	}
	return component.FactionNeutral, fmt.Errorf("unknown faction %q", name)
}

type ArenaSpec struct {
	Name      string      `yaml:"name"`
	Width     float64     `yaml:"width"`
	Height    float64     `yaml:"height"`
	Gravity   float64     `yaml:"gravity"`
	Scale     float64     `yaml:"scale"`
	Spawn     VectorSpec  `yaml:"spawn"`
	Platforms []RectSpec  `yaml:"platforms"`
	Ladders   []RectSpec  `yaml:"ladders"`
	Dummies   []DummySpec `yaml:"dummies"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DummySpec struct {
	Name     string     `yaml:"name"`
	Position VectorSpec `yaml:"position"`
	Health   float64    `yaml:"health"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
}

// LoadArenaSpec loads arena.yaml.
func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: arena %vx%v must be positive", ArenaFile, spec.Width, spec.Height)
	}
	return &spec, nil
}
