package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/jumpfeel/internal/application/system/mocks"
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

var errSensorOffline = errors.New("sensor offline")

func TestNewGroundSensor_NilOracle(t *testing.T) {
	_, err := NewGroundSensor(nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGroundSensor_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	point := motion.Vec2{1, 2}

	gomock.InOrder(
		oracle.EXPECT().OverlapCircle(point, 0.2, uint32(1)).Return(false, nil),
		oracle.EXPECT().OverlapCircle(point, 0.2, uint32(1)).Return(true, nil),
		oracle.EXPECT().OverlapCircle(point, 0.2, uint32(1)).Return(true, nil),
		oracle.EXPECT().OverlapCircle(point, 0.2, uint32(1)).Return(false, nil),
	)

	sensor, err := NewGroundSensor(oracle, nil)
	require.NoError(t, err)

	assert.Equal(t, motion.GroundState{}, sensor.Query(point, 0.2, 1), "airborne")
	assert.Equal(t, motion.GroundState{Grounded: true, BecameGrounded: true}, sensor.Query(point, 0.2, 1), "landing edge")
	assert.Equal(t, motion.GroundState{Grounded: true}, sensor.Query(point, 0.2, 1), "still grounded")
	assert.Equal(t, motion.GroundState{}, sensor.Query(point, 0.2, 1), "left ground")
}

func TestGroundSensor_BecameGroundedImpliesGrounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)

	contacts := []bool{true, false, true, true, false, false, true}
	for _, c := range contacts {
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(c, nil)
	}

	sensor, err := NewGroundSensor(oracle, nil)
	require.NoError(t, err)

	for range contacts {
		state := sensor.Query(motion.Vec2{}, 0.2, 1)
		if state.BecameGrounded {
			assert.True(t, state.Grounded)
		}
	}
}

func TestGroundSensor_TransientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)

	gomock.InOrder(
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errSensorOffline).Times(3),
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errSensorOffline),
	)

	core, logs := observer.New(zapcore.WarnLevel)
	sensor, err := NewGroundSensor(oracle, zap.New(core))
	require.NoError(t, err)

	assert.True(t, sensor.Query(motion.Vec2{}, 0.2, 1).Grounded)

	for i := 0; i < 3; i++ {
		state := sensor.Query(motion.Vec2{}, 0.2, 1)
		assert.False(t, state.Grounded, "failed query reads as airborne")
	}
	assert.Equal(t, 1, logs.Len(), "one warning per failure streak")

	state := sensor.Query(motion.Vec2{}, 0.2, 1)
	assert.True(t, state.Grounded)
	assert.False(t, state.BecameGrounded, "recovering on the ground is not a landing")

	sensor.Query(motion.Vec2{}, 0.2, 1)
	assert.Equal(t, 2, logs.Len(), "new streak logs again")
	assert.Equal(t, errSensorOffline.Error(), logs.All()[0].ContextMap()["error"])
}

func TestGroundSensor_ErrorKeepsLandingEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)

	gomock.InOrder(
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errSensorOffline),
		oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
	)

	sensor, err := NewGroundSensor(oracle, nil)
	require.NoError(t, err)

	sensor.Query(motion.Vec2{}, 0.2, 1)
	sensor.Query(motion.Vec2{}, 0.2, 1)
	state := sensor.Query(motion.Vec2{}, 0.2, 1)

	assert.True(t, state.BecameGrounded, "airborne before the failure, so this is a landing")
}

func TestGroundSensor_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	oracle.EXPECT().OverlapCircle(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	sensor, err := NewGroundSensor(oracle, nil)
	require.NoError(t, err)

	assert.True(t, sensor.Query(motion.Vec2{}, 0.2, 1).BecameGrounded)
	sensor.Reset()
	assert.True(t, sensor.Query(motion.Vec2{}, 0.2, 1).BecameGrounded)
}
