package config

// Movement model names
const (
	MovementAcceleration = "acceleration"
	MovementDirect       = "direct"
)

// Jump launch mode names
const (
	JumpModeHeight = "height"
	JumpModeForce  = "force"
)

// CharacterConfig is the root config for a character file (JSON or YAML)
type CharacterConfig struct {
	Name        string            `json:"name" yaml:"name"`
	Display     DisplayConfig     `json:"display" yaml:"display"`
	Simulation  SimulationConfig  `json:"simulation" yaml:"simulation"`
	Body        BodyConfig        `json:"body" yaml:"body"`
	Movement    MovementConfig    `json:"movement" yaml:"movement"`
	Jump        JumpConfig        `json:"jump" yaml:"jump"`
	GroundCheck GroundCheckConfig `json:"groundCheck" yaml:"groundCheck"`
}

type DisplayConfig struct {
	ScreenWidth    int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight   int     `json:"screenHeight" yaml:"screenHeight"`
	Framerate      int     `json:"framerate" yaml:"framerate"`
	PixelsPerMeter float64 `json:"pixelsPerMeter" yaml:"pixelsPerMeter"`
}

// SimulationConfig describes the physics environment
type SimulationConfig struct {
	FixedStep   float64 `json:"fixedStep" yaml:"fixedStep"`     // Seconds per fixed tick
	Gravity     float64 `json:"gravity" yaml:"gravity"`         // Signed, negative points down
	MaxSubsteps int     `json:"maxSubsteps" yaml:"maxSubsteps"` // Fixed ticks allowed per frame
}

// BodyConfig describes the rigid body the core drives
type BodyConfig struct {
	Width               float64 `json:"width" yaml:"width"`
	Height              float64 `json:"height" yaml:"height"`
	Mass                float64 `json:"mass" yaml:"mass"`
	DefaultGravityScale float64 `json:"defaultGravityScale" yaml:"defaultGravityScale"`
}

// MovementConfig selects and tunes the horizontal movement model.
// Acceleration uses the acceleration/drag fields, direct uses MoveSpeed.
type MovementConfig struct {
	Model              string  `json:"model" yaml:"model"`
	GroundAcceleration float64 `json:"groundAcceleration" yaml:"groundAcceleration"`
	AirAcceleration    float64 `json:"airAcceleration" yaml:"airAcceleration"`
	MaxSpeed           float64 `json:"maxSpeed" yaml:"maxSpeed"`
	GroundDrag         float64 `json:"groundDrag" yaml:"groundDrag"`
	AirDrag            float64 `json:"airDrag" yaml:"airDrag"`
	MoveSpeed          float64 `json:"moveSpeed" yaml:"moveSpeed"`
	DeadZone           float64 `json:"deadZone" yaml:"deadZone"` // Axis magnitude below which drag applies
}

// JumpConfig tunes launch and the variable gravity policy.
// CoyoteTime and JumpBufferTime both zero selects edge-triggered jumps.
type JumpConfig struct {
	Mode                     string  `json:"mode" yaml:"mode"`
	JumpHeight               float64 `json:"jumpHeight" yaml:"jumpHeight"`
	JumpForce                float64 `json:"jumpForce" yaml:"jumpForce"`
	RisingGravityMultiplier  float64 `json:"risingGravityMultiplier" yaml:"risingGravityMultiplier"`
	FallGravityMultiplier    float64 `json:"fallGravityMultiplier" yaml:"fallGravityMultiplier"`
	LowJumpGravityMultiplier float64 `json:"lowJumpGravityMultiplier" yaml:"lowJumpGravityMultiplier"`
	CoyoteTime               float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBufferTime           float64 `json:"jumpBufferTime" yaml:"jumpBufferTime"`
}

// GroundCheckConfig places the ground check circle relative to the body center
type GroundCheckConfig struct {
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
	Radius  float64 `json:"radius" yaml:"radius"`
	Mask    uint32  `json:"mask" yaml:"mask"`
}

// Defaults returns the tuning the movement core was designed around
func Defaults() *CharacterConfig {
	return &CharacterConfig{
		Name: "default",
		Display: DisplayConfig{
			ScreenWidth:    640,
			ScreenHeight:   360,
			Framerate:      60,
			PixelsPerMeter: 32,
		},
		Simulation: SimulationConfig{
			FixedStep:   0.02,
			Gravity:     -9.81,
			MaxSubsteps: 5,
		},
		Body: BodyConfig{
			Width:               0.8,
			Height:              1.6,
			Mass:                1,
			DefaultGravityScale: 1,
		},
		Movement: MovementConfig{
			Model:              MovementAcceleration,
			GroundAcceleration: 120,
			AirAcceleration:    90,
			MaxSpeed:           12,
			GroundDrag:         8,
			AirDrag:            2,
			MoveSpeed:          8,
			DeadZone:           0.01,
		},
		Jump: JumpConfig{
			Mode:                     JumpModeHeight,
			JumpHeight:               5,
			JumpForce:                12,
			RisingGravityMultiplier:  1,
			FallGravityMultiplier:    3.5,
			LowJumpGravityMultiplier: 2.5,
			CoyoteTime:               0.15,
			JumpBufferTime:           0.1,
		},
		GroundCheck: GroundCheckConfig{
			OffsetX: 0,
			OffsetY: -0.8,
			Radius:  0.2,
			Mask:    1,
		},
	}
}
