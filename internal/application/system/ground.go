package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

//go:generate go tool mockgen -destination=./mocks/contact_oracle_mock.go -package=mocks . ContactOracle

// ContactOracle answers spatial overlap queries against world geometry
type ContactOracle interface {
	OverlapCircle(center motion.Vec2, radius float64, mask uint32) (bool, error)
}

// GroundSensor turns overlap queries into a GroundState with landing edge detection
type GroundSensor struct {
	oracle      ContactOracle
	logger      *zap.Logger
	wasGrounded bool
	failing     bool
}

// NewGroundSensor creates a sensor; a nil oracle is a configuration error
func NewGroundSensor(oracle ContactOracle, logger *zap.Logger) (*GroundSensor, error) {
	if oracle == nil {
		return nil, config.NewConfigurationError("groundCheck.oracle", "no contact oracle")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroundSensor{
		oracle: oracle,
		logger: logger,
	}, nil
}

// Query tests a circle at point and compares with the previous query.
// A failing oracle reads as airborne for that tick only and leaves the
// previous contact untouched.
func (s *GroundSensor) Query(point motion.Vec2, radius float64, mask uint32) motion.GroundState {
	grounded, err := s.oracle.OverlapCircle(point, radius, mask)
	if err != nil {
		if !s.failing {
			s.logger.Warn("ground query failed, treating as airborne",
				zap.Error(err),
				zap.Float64("x", point.X()),
				zap.Float64("y", point.Y()))
		}
		s.failing = true
		// contact history is kept so recovery does not fake a landing
		return motion.GroundState{}
	}
	if s.failing {
		s.logger.Debug("ground query recovered")
		s.failing = false
	}

	state := motion.GroundState{
		Grounded:       grounded,
		BecameGrounded: grounded && !s.wasGrounded,
	}
	s.wasGrounded = grounded
	return state
}

// Reset forgets the previous contact so the next landing is reported again
func (s *GroundSensor) Reset() {
	s.wasGrounded = false
	s.failing = false
}
