package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/actioncore/common"
)

// Body adapts a Chipmunk body to the state machine. It also acts as the
// ground sensor for its owner.
type Body struct {
	body        *cp.Body
	shape       *cp.Shape
	groundShape *cp.Shape

	gravity  bool
	contact  bool
	grounded bool
}

func (b *Body) Position() common.Vec2 {
	return fromCP(b.body.Position())
}

func (b *Body) SetPosition(p common.Vec2) {
	b.body.SetPosition(toCP(p))
}

func (b *Body) Velocity() common.Vec2 {
	return fromCP(b.body.Velocity())
}

func (b *Body) SetVelocity(v common.Vec2) {
	b.body.SetVelocity(v.X, v.Y)
}

// ApplyImpulse changes velocity instantly by impulse / mass.
func (b *Body) ApplyImpulse(impulse common.Vec2) {
	b.body.ApplyImpulseAtWorldPoint(toCP(impulse), b.body.Position())
}

// SetGravityEnabled toggles whether the space's gravity integrates into
// this body.
func (b *Body) SetGravityEnabled(enabled bool) {
	if b.gravity == enabled {
		return
	}
	b.gravity = enabled
	if enabled {
		b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return
	}
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})
}

func (b *Body) GravityEnabled() bool {
	return b.gravity
}

// Grounded reports whether the ground sensor touched solid geometry during
// the last step.
func (b *Body) Grounded() bool {
	return b.grounded
}
