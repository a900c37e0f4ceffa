package fsm

import (
	"errors"
	"fmt"
)

var ErrInvalidTunables = errors.New("fsm: invalid tunables")

// ComboWindow bounds, as fractions of a swing's playback, when a queued combo
// request may start the next swing (Start) and when an unchained swing ends
// (End).
type ComboWindow struct {
	Start float64
	End   float64
}

// Tunables are the designer-facing numbers of the machine. Durations are in
// seconds, speeds in world units per second.
type Tunables struct {
	MoveSpeed      float64
	JumpForce      float64
	AirControl     float64
	InputThreshold float64

	SlideSpeed              float64
	SlideDuration           float64
	SlideEndSpeedMultiplier float64

	ClimbSpeed float64

	HurtForce    float64
	HurtDuration float64

	MaxCombo       int
	ComboResetTime float64
	ComboWindow    ComboWindow
	AttackDuration float64
	AttackTimeout  float64
	AttackInertia  float64

	CastDuration float64

	HeavyAttackCooldown float64
	SpellCooldown       float64
	SlideCooldown       float64
}

// DefaultTunables returns the stock character feel.
func DefaultTunables() Tunables {
	return Tunables{
		MoveSpeed:      5,
		JumpForce:      15,
		AirControl:     0.8,
		InputThreshold: 0.01,

		SlideSpeed:              15,
		SlideDuration:           0.5,
		SlideEndSpeedMultiplier: 0.5,

		ClimbSpeed: 3,

		HurtForce:    10,
		HurtDuration: 0.3,

		MaxCombo:       3,
		ComboResetTime: 1,
		ComboWindow:    ComboWindow{Start: 0.5, End: 0.9},
		AttackDuration: 0.4,
		AttackTimeout:  1,
		AttackInertia:  0.2,

		CastDuration: 0.8,

		HeavyAttackCooldown: 1,
		SpellCooldown:       2,
		SlideCooldown:       1.5,
	}
}

// Validate rejects values the machine cannot run with.
func (t Tunables) Validate() error {
	switch {
	case t.MaxCombo < 1:
		return fmt.Errorf("%w: max combo %d < 1", ErrInvalidTunables, t.MaxCombo)
	case t.ComboWindow.Start < 0 || t.ComboWindow.Start >= 1 || t.ComboWindow.End < 0 || t.ComboWindow.End >= 1:
		return fmt.Errorf("%w: combo window %+v outside [0,1)", ErrInvalidTunables, t.ComboWindow)
	case t.ComboWindow.Start > t.ComboWindow.End:
		return fmt.Errorf("%w: combo window start %v after end %v", ErrInvalidTunables, t.ComboWindow.Start, t.ComboWindow.End)
	case t.AttackDuration <= 0 || t.AttackTimeout <= 0:
		return fmt.Errorf("%w: attack duration %v timeout %v", ErrInvalidTunables, t.AttackDuration, t.AttackTimeout)
	case t.AttackInertia < 0 || t.AttackInertia > 1:
		return fmt.Errorf("%w: attack inertia %v outside [0,1]", ErrInvalidTunables, t.AttackInertia)
	case t.SlideDuration <= 0 || t.HurtDuration < 0 || t.CastDuration < 0:
		return fmt.Errorf("%w: non-positive state duration", ErrInvalidTunables)
	case t.MoveSpeed < 0 || t.SlideSpeed < 0 || t.ClimbSpeed < 0 || t.JumpForce < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidTunables)
	}
	return nil
}
