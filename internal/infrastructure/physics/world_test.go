package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

const testStep = 0.02

func createTestBodyConfig() config.BodyConfig {
	return config.BodyConfig{Width: 0.8, Height: 1.6, Mass: 1, DefaultGravityScale: 1}
}

func createTestWorld() *World {
	w := NewWorld(-9.81, nil)
	w.AddPlatform(Platform{X: -20, Y: -1, Width: 40, Height: 1, Layer: 1})
	return w
}

func TestNewStageWorld(t *testing.T) {
	stage := &config.StageConfig{
		ID: "test",
		Platforms: []config.PlatformConfig{
			{X: 0, Y: 0, Width: 10, Height: 1, Layer: 1},
			{X: 4, Y: 3, Width: 2, Height: 0.5},
		},
	}

	w := NewStageWorld(config.SimulationConfig{Gravity: -20}, stage, nil)

	assert.Equal(t, -20.0, w.Gravity())
	require.Len(t, w.Platforms(), 2)
	assert.Equal(t, uint32(1), w.Platforms()[1].Layer, "zero layer defaults to 1")
}

func TestWorld_OverlapCircle(t *testing.T) {
	w := createTestWorld()

	t.Run("touching ground", func(t *testing.T) {
		hit, err := w.OverlapCircle(motion.Vec2{0, 0.1}, 0.2, 1)
		require.NoError(t, err)
		assert.True(t, hit)
	})

	t.Run("in the air", func(t *testing.T) {
		hit, err := w.OverlapCircle(motion.Vec2{0, 3}, 0.2, 1)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("mask excludes layer", func(t *testing.T) {
		hit, err := w.OverlapCircle(motion.Vec2{0, 0.1}, 0.2, 2)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("ignores character bodies", func(t *testing.T) {
		_, err := w.AddBody(createTestBodyConfig(), 5, 4)
		require.NoError(t, err)

		hit, err := w.OverlapCircle(motion.Vec2{5, 4}, 0.2, 1)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestWorld_Closed(t *testing.T) {
	w := createTestWorld()
	w.Close()

	_, err := w.OverlapCircle(motion.Vec2{0, 0}, 0.2, 1)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = w.AddBody(createTestBodyConfig(), 0, 0)
	assert.ErrorIs(t, err, ErrNotReady)

	assert.NotPanics(t, func() { w.Step(testStep) })
	assert.Equal(t, 0.0, w.Gravity())
}

func TestBody_GravityScale(t *testing.T) {
	tests := []struct {
		name  string
		scale motion.GravityScale
	}{
		{"default", 1},
		{"fall multiplier", 3.5},
		{"low jump multiplier", 2.5},
		{"weightless", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(-9.81, nil)
			b, err := w.AddBody(createTestBodyConfig(), 0, 10)
			require.NoError(t, err)

			b.SetGravityScale(tt.scale)
			w.Step(testStep)

			assert.Equal(t, tt.scale, b.GravityScale())
			assert.InDelta(t, -9.81*float64(tt.scale)*testStep, b.Velocity().Y, 1e-9)
		})
	}
}

func TestBody_DefaultGravityScaleFromConfig(t *testing.T) {
	w := NewWorld(-9.81, nil)
	cfg := createTestBodyConfig()
	cfg.DefaultGravityScale = 2

	b, err := w.AddBody(cfg, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, motion.GravityScale(2), b.GravityScale())
}

func TestBody_VelocityRoundTrip(t *testing.T) {
	w := NewWorld(0, nil)
	b, err := w.AddBody(createTestBodyConfig(), 0, 0)
	require.NoError(t, err)

	b.SetVelocity(motion.VelocityState{X: 3, Y: -1})
	assert.Equal(t, motion.VelocityState{X: 3, Y: -1}, b.Velocity())

	w.Step(0.5)
	assert.InDelta(t, 1.5, b.Position().X(), 1e-9)
	assert.InDelta(t, -0.5, b.Position().Y(), 1e-9)

	b.SetPosition(motion.Vec2{7, 7})
	assert.Equal(t, motion.Vec2{7, 7}, b.Position())
	assert.Equal(t, motion.VelocityState{}, b.Velocity())
}

func TestBody_LandsOnPlatform(t *testing.T) {
	w := createTestWorld()
	b, err := w.AddBody(createTestBodyConfig(), 0, 3)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		w.Step(testStep)
	}

	assert.InDelta(t, 0.8, b.Position().Y(), 0.15, "body rests on top of platform")
	assert.InDelta(t, 0.0, b.Velocity().Y, 0.15)

	feet := b.Position().Add(motion.Vec2{0, -0.8})
	hit, err := w.OverlapCircle(feet, 0.2, 1)
	require.NoError(t, err)
	assert.True(t, hit)
}
