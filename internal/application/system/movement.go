package system

import (
	"math"

	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// defaultDeadZone is the axis magnitude below which input counts as released
const defaultDeadZone = 0.01

// MovementModel converts horizontal input into the next horizontal velocity
type MovementModel interface {
	Step(vx, moveAxis float64, grounded bool, dt float64) float64
	isMovementModel()
}

// AccelerationDrag accelerates toward MaxSpeed and brakes with drag impulses
// when the axis is released. Force and impulse act on unit mass.
type AccelerationDrag struct {
	GroundAcceleration float64
	AirAcceleration    float64
	MaxSpeed           float64
	GroundDrag         float64
	AirDrag            float64
	DeadZone           float64
}

func (AccelerationDrag) isMovementModel() {}

// Step applies one fixed tick of acceleration, speed clamp and drag
func (m AccelerationDrag) Step(vx, moveAxis float64, grounded bool, dt float64) float64 {
	accel := m.AirAcceleration
	drag := m.AirDrag
	if grounded {
		accel = m.GroundAcceleration
		drag = m.GroundDrag
	}

	vx += accel * moveAxis * dt

	// Clamp by assignment so the sign survives
	if math.Abs(vx) > m.MaxSpeed {
		vx = math.Copysign(m.MaxSpeed, vx)
	}

	if math.Abs(moveAxis) < m.DeadZone {
		// Never more than the current speed, so no sign flip
		amount := math.Min(math.Abs(vx), drag)
		vx -= math.Copysign(amount, vx)
	}

	return vx
}

// DirectVelocity sets the horizontal velocity straight from the axis
type DirectVelocity struct {
	MoveSpeed float64
}

func (DirectVelocity) isMovementModel() {}

// Step returns moveAxis * MoveSpeed regardless of ground state
func (m DirectVelocity) Step(_, moveAxis float64, _ bool, _ float64) float64 {
	return moveAxis * m.MoveSpeed
}

// NewMovementModel selects the model named by cfg.Model
func NewMovementModel(cfg config.MovementConfig) (MovementModel, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}

	deadZone := cfg.DeadZone
	if deadZone == 0 {
		deadZone = defaultDeadZone
	}

	switch cfg.Model {
	case config.MovementDirect:
		return DirectVelocity{MoveSpeed: cfg.MoveSpeed}, nil
	default:
		return AccelerationDrag{
			GroundAcceleration: cfg.GroundAcceleration,
			AirAcceleration:    cfg.AirAcceleration,
			MaxSpeed:           cfg.MaxSpeed,
			GroundDrag:         cfg.GroundDrag,
			AirDrag:            cfg.AirDrag,
			DeadZone:           deadZone,
		}, nil
	}
}
