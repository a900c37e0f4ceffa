package fsm

import (
	"math"

	"github.com/milk9111/actioncore/common"
)

// StateContext is the shared mutable record read and written by the active
// state. Only the Machine mutates it.
type StateContext struct {
	Tunables

	Input        common.Vec2
	FacingRight  bool
	Grounded     bool
	InputEnabled bool

	ComboCount     int
	LastAttackTime float64
	StateTimer     float64
	Now            float64

	Attacking bool
	Sliding   bool
	Climbing  bool
	Hurting   bool
	Dead      bool
	Blocking  bool
}

func newStateContext(t Tunables) StateContext {
	return StateContext{
		Tunables:       t,
		FacingRight:    true,
		InputEnabled:   true,
		LastAttackTime: math.Inf(-1),
	}
}

// HasMoveInput reports whether horizontal input clears the dead zone.
func (c *StateContext) HasMoveInput() bool {
	return math.Abs(c.Input.X) > c.InputThreshold
}

// ComboTimedOut reports whether the last swing is too old to chain from.
func (c *StateContext) ComboTimedOut() bool {
	return c.Now-c.LastAttackTime > c.ComboResetTime
}

// incrementCombo advances the chain, wrapping past MaxCombo to a fresh chain.
func (c *StateContext) incrementCombo() {
	c.ComboCount++
	if c.ComboCount > c.MaxCombo || c.ComboCount < 1 {
		c.ComboCount = 1
	}
	c.LastAttackTime = c.Now
}

func (c *StateContext) facing() float64 {
	if c.FacingRight {
		return 1
	}
	return -1
}
