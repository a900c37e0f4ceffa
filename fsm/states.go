package fsm

import (
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type jumpData struct {
	forceImpulse bool
}

type slideData struct {
	dir   float64
	speed *gween.Tween
}

func (m *Machine) enter(k component.ActionKind) {
	switch k {
	case component.ActionIdle:
		m.setVelocityX(0)
	case component.ActionMove:
	case component.ActionJump:
		m.enterJump()
	case component.ActionAttack:
		m.enterAttack()
	case component.ActionHurt:
		m.ctx.Hurting = true
		m.anim.SetTrigger(ParamHurt)
	case component.ActionDeath:
		m.ctx.Dead = true
		m.respawnAuthorized = false
		m.anim.SetBool(ParamIsDead, true)
		m.DisableInput()
		m.body.SetVelocity(common.Vec2{})
	case component.ActionSlide:
		m.enterSlide()
	case component.ActionClimb:
		m.ctx.Climbing = true
		m.body.SetGravityEnabled(false)
		m.body.SetVelocity(common.Vec2{})
		m.anim.SetBool(ParamIsClimbing, true)
		m.events.ClimbStarted.Publish(event.Signal{})
	case component.ActionCast:
		m.spellCooldown.Trigger()
		m.anim.SetTrigger(ParamSpell)
		m.setVelocityX(0)
	}
}

func (m *Machine) exit(k component.ActionKind) {
	switch k {
	case component.ActionAttack:
		m.exitAttack()
	case component.ActionHurt:
		m.ctx.Hurting = false
	case component.ActionDeath:
		m.ctx.Dead = false
		m.respawnAuthorized = false
		m.anim.SetBool(ParamIsDead, false)
		m.EnableInput()
		m.heavyCooldown.Reset()
		m.spellCooldown.Reset()
		m.slideCooldown.Reset()
	case component.ActionSlide:
		m.ctx.Sliding = false
		m.anim.SetBool(ParamIsSliding, false)
		m.slide.speed = nil
	case component.ActionClimb:
		m.ctx.Climbing = false
		m.body.SetGravityEnabled(true)
		m.anim.SetBool(ParamIsClimbing, false)
		m.events.ClimbEnded.Publish(event.Signal{})
	}
}

func (m *Machine) update(dt float64) {
	switch m.current {
	case component.ActionIdle:
		switch {
		case !m.ctx.Grounded:
			m.RequestTransition(component.ActionJump)
		case m.ctx.HasMoveInput():
			m.RequestTransition(component.ActionMove)
		}
	case component.ActionMove:
		switch {
		case !m.ctx.Grounded:
			m.RequestTransition(component.ActionJump)
		case !m.ctx.HasMoveInput():
			m.RequestTransition(component.ActionIdle)
		}
	case component.ActionJump:
		if m.ctx.Grounded && !m.ascending() {
			m.events.Landed.Publish(event.Signal{})
			m.settle()
		}
	case component.ActionAttack:
		m.updateAttack(dt)
	case component.ActionHurt:
		if m.ctx.StateTimer < m.ctx.HurtDuration {
			return
		}
		if m.ctx.Dead {
			m.RequestTransition(component.ActionDeath)
			return
		}
		m.settle()
	case component.ActionSlide:
		switch {
		case !m.ctx.Grounded:
			m.RequestTransition(component.ActionJump)
		case m.ctx.StateTimer >= m.ctx.SlideDuration:
			m.settle()
		}
	case component.ActionCast:
		if m.ctx.StateTimer >= m.ctx.CastDuration {
			m.settle()
		}
	}
}

func (m *Machine) fixedUpdate(dt float64) {
	switch m.current {
	case component.ActionIdle:
		if m.ctx.Grounded {
			m.setVelocityX(0)
		}
	case component.ActionMove:
		m.setVelocityX(m.ctx.Input.X * m.ctx.MoveSpeed)
	case component.ActionJump:
		m.setVelocityX(m.ctx.Input.X * m.ctx.MoveSpeed * m.ctx.AirControl)
	case component.ActionAttack:
		m.setVelocityX(m.body.Velocity().X * m.ctx.AttackInertia)
	case component.ActionDeath, component.ActionCast:
		m.setVelocityX(0)
	case component.ActionSlide:
		m.setVelocityX(m.slide.dir * m.slideSpeed())
	case component.ActionClimb:
		m.body.SetVelocity(common.V(0, m.ctx.Input.Y*m.ctx.ClimbSpeed))
	}
}

// settle picks the resting state that matches ground and input.
func (m *Machine) settle() {
	switch {
	case !m.ctx.Grounded:
		m.RequestTransition(component.ActionJump)
	case m.ctx.HasMoveInput():
		m.RequestTransition(component.ActionMove)
	default:
		m.RequestTransition(component.ActionIdle)
	}
}

func (m *Machine) enterJump() {
	if !m.ctx.Grounded && !m.jump.forceImpulse {
		return
	}
	m.anim.SetTrigger(ParamJump)
	v := m.body.Velocity()
	m.body.SetVelocity(common.V(v.X, 0))
	m.body.ApplyImpulse(common.V(0, -m.ctx.JumpForce))
}

func (m *Machine) enterSlide() {
	m.slide.dir = m.ctx.facing()
	m.slide.speed = gween.New(
		float32(m.ctx.SlideSpeed),
		float32(m.ctx.MoveSpeed*m.ctx.SlideEndSpeedMultiplier),
		float32(m.ctx.SlideDuration),
		ease.Linear,
	)
	m.ctx.Sliding = true
	m.slideCooldown.Trigger()
	m.anim.SetTrigger(ParamSlide)
	m.anim.SetBool(ParamIsSliding, true)
	m.setVelocityX(m.slide.dir * m.ctx.SlideSpeed)
}

func (m *Machine) slideSpeed() float64 {
	if m.slide.speed == nil {
		return m.ctx.SlideSpeed
	}
	speed, _ := m.slide.speed.Set(float32(m.ctx.StateTimer))
	return float64(speed)
}

func (m *Machine) setVelocityX(x float64) {
	v := m.body.Velocity()
	m.body.SetVelocity(common.V(x, v.Y))
}
