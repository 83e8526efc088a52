package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// Body is a rotation-locked cp body whose gravity is scaled per step
type Body struct {
	body         *cp.Body
	shape        *cp.Shape
	gravityScale float64
}

func newBody(cfg config.BodyConfig, x, y float64) *Body {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	scale := cfg.DefaultGravityScale
	if scale <= 0 {
		scale = 1
	}

	b := &Body{gravityScale: scale}
	b.body = cp.NewBody(mass, math.Inf(1))
	b.body.SetPosition(cp.Vector{X: x, Y: y})
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})

	b.shape = cp.NewBox(b.body, cfg.Width, cfg.Height, 0)
	// Horizontal response comes from the movement model, not contact friction
	b.shape.SetFriction(0)
	b.shape.SetElasticity(0)
	b.shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(CategoryCharacter), Mask: cp.ALL_CATEGORIES})
	return b
}

// Velocity returns the current linear velocity
func (b *Body) Velocity() motion.VelocityState {
	v := b.body.Velocity()
	return motion.VelocityState{X: v.X, Y: v.Y}
}

// SetVelocity overwrites the linear velocity
func (b *Body) SetVelocity(v motion.VelocityState) {
	b.body.SetVelocity(v.X, v.Y)
}

// GravityScale returns the multiplier applied to world gravity
func (b *Body) GravityScale() motion.GravityScale {
	return motion.GravityScale(b.gravityScale)
}

// SetGravityScale sets the multiplier used by the next step
func (b *Body) SetGravityScale(s motion.GravityScale) {
	b.gravityScale = float64(s)
}

// Position returns the body center
func (b *Body) Position() motion.Vec2 {
	p := b.body.Position()
	return motion.Vec2{p.X, p.Y}
}

// SetPosition teleports the body and clears its velocity
func (b *Body) SetPosition(p motion.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X(), Y: p.Y()})
	b.body.SetVelocity(0, 0)
}
