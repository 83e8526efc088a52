// Package controller owns a character's lifecycle: activation, per-frame
// input sampling and the fixed-tick write-back into its rigid body.
package controller

import (
	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/application/input"
	"github.com/younwookim/jumpfeel/internal/application/system"
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

//go:generate go tool mockgen -destination=./mocks/rigid_body_mock.go -package=mocks . RigidBody

// RigidBody is the integrator-owned body the character drives
type RigidBody interface {
	Velocity() motion.VelocityState
	SetVelocity(v motion.VelocityState)
	GravityScale() motion.GravityScale
	SetGravityScale(s motion.GravityScale)
	Position() motion.Vec2
}

// Character binds a CharacterStepper to a rigid body and a ground sensor
type Character struct {
	cfg     config.CharacterConfig
	body    RigidBody
	sensor  *system.GroundSensor
	stepper *system.CharacterStepper
	logger  *zap.Logger

	defaultScale motion.GravityScale

	sampled motion.InputSnapshot
	latched bool
	applied motion.InputSnapshot
	last    system.Step

	active bool
	sub    *input.Subscription
}

// NewCharacter validates cfg and captures the body's gravity scale as the default.
// The character starts inactive.
func NewCharacter(cfg *config.CharacterConfig, body RigidBody, oracle system.ContactOracle, logger *zap.Logger) (*Character, error) {
	if cfg == nil {
		return nil, config.NewConfigurationError("character", "missing")
	}
	if body == nil {
		return nil, config.NewConfigurationError("character.body", "no rigid body")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sensor, err := system.NewGroundSensor(oracle, logger)
	if err != nil {
		return nil, err
	}

	c := &Character{
		body:         body,
		sensor:       sensor,
		logger:       logger.With(zap.String("character", cfg.Name)),
		defaultScale: body.GravityScale(),
	}
	if err := c.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Reconfigure rebuilds the stepper from cfg. On error the previous
// configuration stays in effect; on success the jump windows restart.
func (c *Character) Reconfigure(cfg *config.CharacterConfig) error {
	if cfg == nil {
		return config.NewConfigurationError("character", "missing")
	}

	next := *cfg
	if c.stepper != nil {
		// the rigid body already exists with its shape and mass
		next.Body = c.cfg.Body
	}
	next.Body.DefaultGravityScale = float64(c.defaultScale)
	if err := config.Validate(&next); err != nil {
		return err
	}

	stepper, err := system.NewCharacterStepper(&next)
	if err != nil {
		return err
	}

	c.cfg = next
	c.stepper = stepper
	c.logger.Debug("character configured",
		zap.String("movement", next.Movement.Model),
		zap.String("jump", next.Jump.Mode),
		zap.Bool("windowed", stepper.Jump().Windowed()))
	return nil
}

// Activate enables sampling and fixed ticks. With a non-nil latch the
// returned subscription is the handle push callbacks write through until
// Deactivate closes it.
func (c *Character) Activate(latch *input.Latch) *input.Subscription {
	if c.active {
		return c.sub
	}
	c.active = true
	if latch != nil {
		c.sub = latch.Subscribe()
	}
	return c.sub
}

// Deactivate stops ticking and releases the input subscription
func (c *Character) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	if c.sub != nil {
		_ = c.sub.Close()
		c.sub = nil
	}
	c.sampled = motion.InputSnapshot{}
	c.latched = false
}

// Active reports whether the character is ticking
func (c *Character) Active() bool {
	return c.active
}

// Sample takes the input of one presentation frame.
// A press is held until the next fixed tick consumes it.
func (c *Character) Sample(in motion.InputSnapshot) {
	if !c.active {
		return
	}
	c.sampled = in
	if in.JumpPressed {
		c.latched = true
	}
}

// FixedUpdate runs one fixed tick against the body and writes velocity and
// gravity scale back. It returns false while inactive.
func (c *Character) FixedUpdate(dt, gravity float64) (system.Step, bool) {
	if !c.active {
		return system.Step{}, false
	}

	in := c.sampled
	in.JumpPressed = c.latched
	c.latched = false

	env := system.Environment{
		Gravity: gravity,
		Ground:  c.queryGround,
	}
	step := c.stepper.Tick(dt, in, c.body.Velocity(), env)

	c.body.SetVelocity(step.Velocity)
	c.body.SetGravityScale(step.GravityScale)

	if step.Jumped {
		c.logger.Debug("jump",
			zap.Float64("vy", step.Velocity.Y),
			zap.Bool("grounded", step.Ground.Grounded))
	}
	if step.Ground.BecameGrounded {
		c.logger.Debug("landed", zap.Float64("vx", step.Velocity.X))
	}

	c.applied = in
	c.last = step
	return step, true
}

// GroundCheckPoint returns the world-space center of the ground check circle
func (c *Character) GroundCheckPoint() motion.Vec2 {
	gc := c.cfg.GroundCheck
	return c.body.Position().Add(motion.Vec2{gc.OffsetX, gc.OffsetY})
}

// AppliedInput returns the snapshot consumed by the last fixed tick
func (c *Character) AppliedInput() motion.InputSnapshot {
	return c.applied
}

// LastStep returns the outcome of the last fixed tick
func (c *Character) LastStep() system.Step {
	return c.last
}

// Timers returns a copy of the jump windows
func (c *Character) Timers() motion.TimerBank {
	return c.stepper.Timers()
}

// Config returns the active configuration
func (c *Character) Config() config.CharacterConfig {
	return c.cfg
}

// DefaultGravityScale returns the scale captured from the body at construction
func (c *Character) DefaultGravityScale() motion.GravityScale {
	return c.defaultScale
}

// Reset clears timers, sampled input and ground history, e.g. after a respawn
func (c *Character) Reset() {
	c.stepper.Reset()
	c.sensor.Reset()
	c.sampled = motion.InputSnapshot{}
	c.latched = false
	c.applied = motion.InputSnapshot{}
	c.last = system.Step{}
	c.body.SetGravityScale(c.defaultScale)
}

func (c *Character) queryGround() motion.GroundState {
	gc := c.cfg.GroundCheck
	return c.sensor.Query(c.GroundCheckPoint(), gc.Radius, gc.Mask)
}
