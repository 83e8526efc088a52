package system

import (
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// GroundQuery samples ground contact for the current tick
type GroundQuery func() motion.GroundState

// Environment carries the per-tick collaborators of a CharacterStepper.
// Gravity is the signed gravitational acceleration.
type Environment struct {
	Gravity float64
	Ground  GroundQuery
}

// Step is the outcome of one fixed tick
type Step struct {
	Velocity     motion.VelocityState
	GravityScale motion.GravityScale
	Ground       motion.GroundState
	Jumped       bool
}

// CharacterStepper runs the movement core once per fixed tick
type CharacterStepper struct {
	movement MovementModel
	jump     *JumpModel
	cfg      config.JumpConfig
	timers   motion.TimerBank
}

// NewCharacterStepper builds the movement and jump models from cfg
func NewCharacterStepper(cfg *config.CharacterConfig) (*CharacterStepper, error) {
	if cfg == nil {
		return nil, config.NewConfigurationError("character", "missing")
	}

	movement, err := NewMovementModel(cfg.Movement)
	if err != nil {
		return nil, err
	}

	jump, err := NewJumpModel(cfg.Jump, cfg.Body.DefaultGravityScale)
	if err != nil {
		return nil, err
	}

	return &CharacterStepper{
		movement: movement,
		jump:     jump,
		cfg:      cfg.Jump,
	}, nil
}

// Tick advances one fixed step from the previous velocity.
// The order below is load bearing: timers decay before the ground refresh,
// and the trigger runs after both refreshes.
func (s *CharacterStepper) Tick(dt float64, in motion.InputSnapshot, prev motion.VelocityState, env Environment) Step {
	var ground motion.GroundState
	if env.Ground != nil {
		ground = env.Ground()
	}

	s.timers.Advance(dt)

	if ground.Grounded {
		s.timers.RefreshCoyote(s.cfg.CoyoteTime)
	}

	if in.JumpPressed {
		s.timers.RefreshBuffer(s.cfg.JumpBufferTime)
	}

	next := prev
	next.X = s.movement.Step(prev.X, in.MoveAxis, ground.Grounded, dt)

	vy, jumped := s.jump.EvaluateTrigger(&s.timers, ground, in.JumpPressed, env.Gravity)
	if jumped {
		next.Y = vy
	}

	return Step{
		Velocity:     next,
		GravityScale: s.jump.GravityScale(next.Y, in.JumpHeld),
		Ground:       ground,
		Jumped:       jumped,
	}
}

// Timers returns a copy of the current timer state
func (s *CharacterStepper) Timers() motion.TimerBank {
	return s.timers
}

// Jump exposes the jump model
func (s *CharacterStepper) Jump() *JumpModel {
	return s.jump
}

// Reset closes both timer windows
func (s *CharacterStepper) Reset() {
	s.timers.ConsumeBoth()
}
