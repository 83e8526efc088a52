// Package physics adapts a jakecoffman/cp space to the collaborators the
// movement core consumes: a rigid body with a gravity scale and an overlap
// query for ground contact.
package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// CategoryCharacter is the collision category of character bodies.
// Ground masks should not include it so a ground query never hits its own body.
const CategoryCharacter uint32 = 1 << 31

// ErrNotReady is returned by queries against a closed or unbuilt world
var ErrNotReady = errors.New("physics world not ready")

// Platform is a static box in world units
type Platform struct {
	X, Y, Width, Height float64
	Layer               uint32
}

// World owns the cp space for one stage
type World struct {
	space     *cp.Space
	platforms []Platform
	logger    *zap.Logger
}

// NewWorld creates an empty world with the signed vertical gravity
func NewWorld(gravity float64, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{
		space:  space,
		logger: logger,
	}
}

// NewStageWorld builds a world and the static geometry of a stage
func NewStageWorld(sim config.SimulationConfig, stage *config.StageConfig, logger *zap.Logger) *World {
	w := NewWorld(sim.Gravity, logger)
	if stage == nil {
		return w
	}
	for _, p := range stage.Platforms {
		w.AddPlatform(Platform{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Layer: p.Layer})
	}
	w.logger.Debug("stage world built",
		zap.String("stage", stage.ID),
		zap.Int("platforms", len(stage.Platforms)))
	return w
}

// Gravity returns the signed vertical gravity of the environment
func (w *World) Gravity() float64 {
	if w.space == nil {
		return 0
	}
	return w.space.Gravity().Y
}

// AddPlatform adds a static box; a zero layer is treated as layer 1
func (w *World) AddPlatform(p Platform) {
	if w.space == nil {
		return
	}
	if p.Layer == 0 {
		p.Layer = 1
	}
	bb := cp.BB{L: p.X, B: p.Y, R: p.X + p.Width, T: p.Y + p.Height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(p.Layer), Mask: cp.ALL_CATEGORIES})
	w.space.AddShape(shape)
	w.platforms = append(w.platforms, p)
}

// Platforms returns the static boxes for debug drawing
func (w *World) Platforms() []Platform {
	return w.platforms
}

// AddBody creates a character body centered at (x, y)
func (w *World) AddBody(cfg config.BodyConfig, x, y float64) (*Body, error) {
	if w.space == nil {
		return nil, ErrNotReady
	}
	b := newBody(cfg, x, y)
	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	return b, nil
}

// Step integrates the space by dt
func (w *World) Step(dt float64) {
	if w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// OverlapCircle reports whether any shape whose category intersects mask lies
// within radius of center.
func (w *World) OverlapCircle(center motion.Vec2, radius float64, mask uint32) (bool, error) {
	if w.space == nil {
		return false, ErrNotReady
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
	info := w.space.PointQueryNearest(cp.Vector{X: center.X(), Y: center.Y()}, radius, filter)
	return info != nil && info.Shape != nil, nil
}

// Close releases the space; later queries return ErrNotReady
func (w *World) Close() {
	w.space = nil
}
