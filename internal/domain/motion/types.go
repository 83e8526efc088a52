// Package motion holds the per-tick data model of the character movement core.
package motion

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a world-space point (y axis up)
type Vec2 = mgl64.Vec2

// InputSnapshot is the input state for a single simulation tick.
// It is produced once per tick and never modified afterwards.
type InputSnapshot struct {
	MoveAxis    float64 // Horizontal intent in [-1, 1]
	JumpHeld    bool    // Jump input is currently down
	JumpPressed bool    // Jump input went down since the previous tick
}

// ClampAxis limits an analog axis value to [-1, 1]
func ClampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// GroundState is the ground contact result for a single tick.
// BecameGrounded implies Grounded.
type GroundState struct {
	Grounded       bool
	BecameGrounded bool
}

// VelocityState is the linear velocity of the character body
type VelocityState struct {
	X, Y float64
}

// GravityScale multiplies the environment gravity for one tick
type GravityScale float64

// DefaultGravityScale is applied when the character is neither rising nor falling
const DefaultGravityScale GravityScale = 1.0
