package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

func TestLatch_PollClearsPressEdge(t *testing.T) {
	latch := NewLatch()
	sub := latch.Subscribe()
	defer sub.Close()

	sub.Move(0.5)
	sub.JumpPerformed()

	first := latch.Poll()
	assert.Equal(t, motion.InputSnapshot{MoveAxis: 0.5, JumpHeld: true, JumpPressed: true}, first)

	second := latch.Poll()
	assert.Equal(t, motion.InputSnapshot{MoveAxis: 0.5, JumpHeld: true}, second, "held values persist")
}

func TestLatch_JumpCanceled(t *testing.T) {
	latch := NewLatch()
	sub := latch.Subscribe()
	defer sub.Close()

	sub.JumpPerformed()
	sub.JumpCanceled()

	snap := latch.Poll()
	assert.False(t, snap.JumpHeld)
	assert.True(t, snap.JumpPressed, "a tap between polls is not lost")
}

func TestLatch_MoveClampsAxis(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside range", -0.3, -0.3},
		{"above", 4, 1},
		{"below", -2, -1},
		{"cancel", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latch := NewLatch()
			sub := latch.Subscribe()
			defer sub.Close()

			sub.Move(tt.in)
			assert.Equal(t, tt.want, latch.Poll().MoveAxis)
		})
	}
}

func TestSubscription_Close(t *testing.T) {
	t.Run("drops callbacks after close", func(t *testing.T) {
		latch := NewLatch()
		sub := latch.Subscribe()

		sub.Move(1)
		require.NoError(t, sub.Close())
		sub.JumpPerformed()
		sub.Move(-1)

		assert.Equal(t, motion.InputSnapshot{}, latch.Poll())
		assert.False(t, latch.Subscribed())
	})

	t.Run("idempotent", func(t *testing.T) {
		latch := NewLatch()
		first := latch.Subscribe()
		second := latch.Subscribe()

		require.NoError(t, first.Close())
		require.NoError(t, first.Close())

		assert.True(t, latch.Subscribed(), "double close must not release another subscription")

		second.Move(1)
		assert.Equal(t, 1.0, latch.Poll().MoveAxis)
		require.NoError(t, second.Close())
		assert.False(t, latch.Subscribed())
	})

	t.Run("state survives while another subscription is open", func(t *testing.T) {
		latch := NewLatch()
		first := latch.Subscribe()
		second := latch.Subscribe()
		defer second.Close()

		first.Move(-1)
		require.NoError(t, first.Close())

		assert.Equal(t, -1.0, latch.Poll().MoveAxis)
	})
}

func TestLatch_ConcurrentDelivery(t *testing.T) {
	latch := NewLatch()
	sub := latch.Subscribe()
	defer sub.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sub.Move(1)
				sub.JumpPerformed()
				sub.JumpCanceled()
			}
		}()
	}

	presses := 0
	for i := 0; i < 100; i++ {
		if latch.Poll().JumpPressed {
			presses++
		}
	}
	wg.Wait()

	snap := latch.Poll()
	assert.Equal(t, 1.0, snap.MoveAxis)
	assert.False(t, snap.JumpHeld)
	assert.LessOrEqual(t, presses, 100)
}

func TestSourceFunc(t *testing.T) {
	want := motion.InputSnapshot{MoveAxis: -1, JumpHeld: true}
	var src Source = SourceFunc(func() motion.InputSnapshot { return want })

	assert.Equal(t, want, src.Poll())
}
