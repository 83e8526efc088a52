package system

import (
	"math"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// JumpModel decides when a jump fires and which gravity scale applies.
//
// A jump fires on a tick where both windows are open. A window configured
// as zero is open only on its own tick: a zero buffer needs the press this
// tick and a zero coyote time needs ground contact this tick. With both zero
// the trigger is a grounded press.
type JumpModel struct {
	cfg          config.JumpConfig
	defaultScale float64
}

// NewJumpModel validates cfg; defaultGravityScale is the body's resting scale
func NewJumpModel(cfg config.JumpConfig, defaultGravityScale float64) (*JumpModel, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	if defaultGravityScale <= 0 {
		return nil, config.NewConfigurationError("body.defaultGravityScale", "must be positive")
	}
	return &JumpModel{
		cfg:          cfg,
		defaultScale: defaultGravityScale,
	}, nil
}

// Windowed reports whether coyote time or jump buffering is in use
func (m *JumpModel) Windowed() bool {
	return m.cfg.CoyoteTime > 0 || m.cfg.JumpBufferTime > 0
}

// LaunchVelocity is the vertical speed set when a jump fires.
// Height mode solves v = sqrt(2gh) against the resting gravity.
func (m *JumpModel) LaunchVelocity(gravity float64) float64 {
	if m.cfg.Mode == config.JumpModeForce {
		return m.cfg.JumpForce
	}
	return math.Sqrt(m.cfg.JumpHeight * 2 * math.Abs(gravity) * m.defaultScale)
}

// EvaluateTrigger returns the launch velocity when a jump fires this tick.
// Firing closes both timer windows so one press launches at most once.
func (m *JumpModel) EvaluateTrigger(timers *motion.TimerBank, ground motion.GroundState, pressed bool, gravity float64) (float64, bool) {
	buffered := pressed
	if m.cfg.JumpBufferTime > 0 {
		buffered = timers.Buffer() > 0
	}
	coyote := ground.Grounded
	if m.cfg.CoyoteTime > 0 {
		coyote = timers.Coyote() > 0
	}
	if !buffered || !coyote {
		return 0, false
	}

	timers.ConsumeBoth()
	return m.LaunchVelocity(gravity), true
}

// GravityScale picks the multiplier for this tick from the vertical velocity
// and whether jump is still held. Releasing early while rising cuts the jump.
func (m *JumpModel) GravityScale(vy float64, jumpHeld bool) motion.GravityScale {
	switch {
	case vy < 0:
		return motion.GravityScale(m.defaultScale * m.cfg.FallGravityMultiplier)
	case vy > 0 && !jumpHeld:
		return motion.GravityScale(m.defaultScale * m.cfg.LowJumpGravityMultiplier)
	case vy > 0:
		return motion.GravityScale(m.defaultScale * m.cfg.RisingGravityMultiplier)
	default:
		return motion.GravityScale(m.defaultScale)
	}
}
