package fsm

import (
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
)

// chainRestartPoint is how far into the final swing of a full combo a new
// attack request must arrive to start a fresh chain.
const chainRestartPoint = 0.5

// attackData is the combo controller carried by the Attack state.
type attackData struct {
	heavyNext bool
	heavy     bool

	pendingCombo   bool
	pendingRestart bool
	restartAt      float64
	finished       bool
	swingTimer     float64
}

func (m *Machine) enterAttack() {
	a := &m.attack
	a.heavy = a.heavyNext
	a.pendingCombo = false
	a.pendingRestart = false
	a.finished = false
	m.ctx.Attacking = true

	if m.ctx.ComboTimedOut() {
		m.ctx.ComboCount = 0
	}
	if a.heavy {
		m.heavyCooldown.Trigger()
	}
	m.startSwing()

	v := m.body.Velocity()
	m.setVelocityX(v.X * m.ctx.AttackInertia)
}

func (m *Machine) exitAttack() {
	a := &m.attack
	a.pendingCombo = false
	a.pendingRestart = false
	a.heavy = false
	m.ctx.Attacking = false
}

func (m *Machine) startSwing() {
	a := &m.attack
	a.pendingCombo = false
	a.swingTimer = 0
	m.ctx.incrementCombo()
	m.anim.SetFloat(ParamCombo, float64(m.ctx.ComboCount))
	if a.heavy {
		m.anim.SetTrigger(ParamHeavyAttack)
	} else {
		m.anim.SetTrigger(ParamAttack)
	}
	m.events.SwingStarted.Publish(event.Swing{
		ComboStep: m.ctx.ComboCount,
		Heavy:     a.heavy,
		Facing:    m.ctx.facing(),
	})
}

func (m *Machine) updateAttack(dt float64) {
	a := &m.attack
	a.swingTimer += dt

	if a.pendingRestart && m.ctx.Now > a.restartAt {
		a.pendingRestart = false
		m.ctx.ComboCount = 0
		m.startSwing()
		return
	}

	p := m.attackProgress()
	if a.pendingCombo && p >= m.ctx.ComboWindow.Start {
		m.startSwing()
		return
	}
	if a.pendingRestart {
		return
	}
	if (!a.pendingCombo && p >= m.ctx.ComboWindow.End) || a.swingTimer >= m.ctx.AttackTimeout {
		a.finished = true
		m.settle()
	}
}

// RequestCombo latches the next swing and reports whether the request was
// kept. At full combo a request on the back half of the final swing restarts
// the chain on the following tick; earlier requests are dropped.
func (m *Machine) RequestCombo() bool {
	a := &m.attack
	if m.current != component.ActionAttack || a.heavy || a.finished {
		return false
	}
	if m.ctx.ComboCount < m.ctx.MaxCombo {
		a.pendingCombo = true
		return true
	}
	if a.pendingRestart {
		return true
	}
	if m.attackProgress() >= chainRestartPoint {
		a.pendingRestart = true
		a.restartAt = m.ctx.Now
		return true
	}
	return false
}

// attackProgress is the normalized playback of the current swing. It comes
// from the animation sink when an attack clip is showing and falls back to
// the swing timer otherwise.
func (m *Machine) attackProgress() float64 {
	if m.anim.Tag() == AttackTag {
		return m.anim.NormalizedTime()
	}
	if m.ctx.AttackDuration <= 0 {
		return 1
	}
	return m.attack.swingTimer / m.ctx.AttackDuration
}

// ComboPending reports whether a follow-up swing is queued.
func (m *Machine) ComboPending() bool {
	return m.attack.pendingCombo || m.attack.pendingRestart
}
