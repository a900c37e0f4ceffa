package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/actioncore/common"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBody
	collisionTypeGroundSensor
)

// DefaultGravity is downward acceleration in world units per second squared.
const DefaultGravity = 40.0

// World owns the Chipmunk space, the static level geometry and the dynamic
// character bodies.
type World struct {
	space         *cp.Space
	handlersReady bool

	groundToBody map[*cp.Shape]*Body
	bodies       []*Body
}

// NewWorld creates an empty space with the given downward gravity.
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:        space,
		groundToBody: make(map[*cp.Shape]*Body),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddSegment adds a static solid line, e.g. a floor or a wall.
func (w *World) AddSegment(a, b common.Vec2, thickness float64) {
	shape := cp.NewSegment(w.space.StaticBody, toCP(a), toCP(b), thickness)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
}

// AddPlatform adds a static solid box with its top-left corner at (x, y).
func (w *World) AddPlatform(x, y, width, height float64) {
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
}

// AddBounds encloses [0,width]x[0,height] with static segments.
func (w *World) AddBounds(width, height float64) {
	const thickness = 0.1
	w.AddSegment(common.V(0, 0), common.V(width, 0), thickness)
	w.AddSegment(common.V(0, height), common.V(width, height), thickness)
	w.AddSegment(common.V(0, 0), common.V(0, height), thickness)
	w.AddSegment(common.V(width, 0), common.V(width, height), thickness)
}

// AddBody creates a non-rotating dynamic box centered at pos with a ground
// sensor along its bottom edge.
func (w *World) AddBody(pos common.Vec2, width, height float64) *Body {
	mass := 1.0
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(toCP(pos))

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBody)

	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2,
		R: width * 0.45,
		T: height/2 + 0.05,
	}
	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypeGroundSensor)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.space.AddShape(groundShape)

	b := &Body{body: body, shape: shape, groundShape: groundShape, gravity: true}
	w.groundToBody[groundShape] = b
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody takes b out of the simulation.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil || b.body == nil {
		return
	}
	delete(w.groundToBody, b.groundShape)
	w.space.RemoveShape(b.groundShape)
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	out := w.bodies[:0]
	for _, other := range w.bodies {
		if other != b {
			out = append(out, other)
		}
	}
	w.bodies = out
}

func (w *World) setupHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}
	groundHandler := w.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	groundHandler.UserData = w
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		a, b := arb.Shapes()
		if body := world.groundToBody[a]; body != nil {
			body.contact = true
		}
		if body := world.groundToBody[b]; body != nil {
			body.contact = true
		}
		return true
	}
	w.handlersReady = true
}

// Step advances the simulation by dt and refreshes every body's ground
// contact.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.contact = false
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		b.grounded = b.contact
	}
}

func toCP(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) common.Vec2 {
	return common.V(v.X, v.Y)
}
