package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigurationError
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError reports a missing collaborator or a bad tuning value.
// It is fatal to the character being built, never to the process.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidConfig) match
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigurationError builds a ConfigurationError
func NewConfigurationError(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}

// Validate checks every tuning value and returns all violations joined
func Validate(cfg *CharacterConfig) error {
	if cfg == nil {
		return NewConfigurationError("character", "missing")
	}

	var errs []error
	errs = append(errs, cfg.Simulation.validate()...)
	errs = append(errs, cfg.Body.validate()...)
	errs = append(errs, cfg.Movement.Validate()...)
	errs = append(errs, cfg.Jump.Validate()...)
	errs = append(errs, cfg.GroundCheck.validate()...)
	return errors.Join(errs...)
}

func (c SimulationConfig) validate() []error {
	var errs []error
	if c.FixedStep <= 0 {
		errs = append(errs, NewConfigurationError("simulation.fixedStep", "must be positive"))
	}
	if c.MaxSubsteps < 0 {
		errs = append(errs, NewConfigurationError("simulation.maxSubsteps", "must not be negative"))
	}
	return errs
}

func (c BodyConfig) validate() []error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, NewConfigurationError("body.size", "width and height must be positive"))
	}
	if c.Mass <= 0 {
		errs = append(errs, NewConfigurationError("body.mass", "must be positive"))
	}
	if c.DefaultGravityScale <= 0 {
		errs = append(errs, NewConfigurationError("body.defaultGravityScale", "must be positive"))
	}
	return errs
}

// Validate checks the fields the selected movement model reads
func (c MovementConfig) Validate() []error {
	var errs []error
	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, NewConfigurationError("movement."+field, "must not be negative"))
		}
	}

	switch c.Model {
	case "", MovementAcceleration:
		nonNegative("groundAcceleration", c.GroundAcceleration)
		nonNegative("airAcceleration", c.AirAcceleration)
		nonNegative("groundDrag", c.GroundDrag)
		nonNegative("airDrag", c.AirDrag)
		if c.MaxSpeed <= 0 {
			errs = append(errs, NewConfigurationError("movement.maxSpeed", "must be positive"))
		}
	case MovementDirect:
		nonNegative("moveSpeed", c.MoveSpeed)
	default:
		errs = append(errs, NewConfigurationError("movement.model", fmt.Sprintf("unknown model %q", c.Model)))
	}
	nonNegative("deadZone", c.DeadZone)
	return errs
}

// Validate checks the launch mode, multipliers and timing windows
func (c JumpConfig) Validate() []error {
	var errs []error
	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, NewConfigurationError("jump."+field, "must not be negative"))
		}
	}

	switch c.Mode {
	case "", JumpModeHeight:
		if c.JumpHeight <= 0 {
			errs = append(errs, NewConfigurationError("jump.jumpHeight", "must be positive"))
		}
	case JumpModeForce:
		if c.JumpForce <= 0 {
			errs = append(errs, NewConfigurationError("jump.jumpForce", "must be positive"))
		}
	default:
		errs = append(errs, NewConfigurationError("jump.mode", fmt.Sprintf("unknown mode %q", c.Mode)))
	}

	nonNegative("risingGravityMultiplier", c.RisingGravityMultiplier)
	nonNegative("fallGravityMultiplier", c.FallGravityMultiplier)
	nonNegative("lowJumpGravityMultiplier", c.LowJumpGravityMultiplier)
	nonNegative("coyoteTime", c.CoyoteTime)
	nonNegative("jumpBufferTime", c.JumpBufferTime)
	return errs
}

func (c GroundCheckConfig) validate() []error {
	if c.Radius < 0 {
		return []error{NewConfigurationError("groundCheck.radius", "must not be negative")}
	}
	return nil
}
