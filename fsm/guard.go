package fsm

import "github.com/milk9111/actioncore/component"

// canTransition is the single legal-transition table of the machine.
func (m *Machine) canTransition(from, to component.ActionKind) bool {
	if !to.Valid() || from == to {
		return false
	}
	switch from {
	case component.ActionNone:
		return to == component.ActionIdle
	case component.ActionDeath:
		return to == component.ActionIdle && m.respawnAuthorized
	}
	if to == component.ActionDeath {
		return true
	}
	if to == component.ActionHurt {
		return from != component.ActionHurt
	}

	switch from {
	case component.ActionAttack:
		return m.attack.finished
	case component.ActionHurt:
		return m.ctx.StateTimer >= m.ctx.HurtDuration
	case component.ActionSlide:
		if to == component.ActionJump && !m.ctx.Grounded {
			return true
		}
		return m.ctx.StateTimer >= m.ctx.SlideDuration
	case component.ActionCast:
		return m.ctx.StateTimer >= m.ctx.CastDuration
	case component.ActionJump:
		if to == component.ActionIdle || to == component.ActionMove {
			return m.ctx.Grounded && !m.ascending()
		}
		return true
	case component.ActionIdle, component.ActionMove, component.ActionClimb:
		return true
	}
	return false
}

// ascending reports whether the body is still moving up.
func (m *Machine) ascending() bool {
	return m.body.Velocity().Y < -ascendEpsilon
}

const ascendEpsilon = 1e-6
