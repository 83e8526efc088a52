package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

// scriptedSource returns one snapshot per Poll, then idle
func scriptedSource(frames ...motion.InputSnapshot) Source {
	i := 0
	return SourceFunc(func() motion.InputSnapshot {
		if i >= len(frames) {
			return motion.InputSnapshot{}
		}
		in := frames[i]
		i++
		return in
	})
}

func TestPump_ForwardsThroughLatch(t *testing.T) {
	frames := []motion.InputSnapshot{
		{MoveAxis: -1},
		{MoveAxis: -1, JumpHeld: true, JumpPressed: true},
		{MoveAxis: 0.5, JumpHeld: true},
		{MoveAxis: 0.5},
	}
	pump := NewPump(scriptedSource(frames...))
	latch := NewLatch()
	sub := latch.Subscribe()
	defer sub.Close()

	for i, want := range frames {
		pump.Push(sub)
		assert.Equal(t, want, latch.Poll(), "frame %d", i)
	}
}

func TestPump_TapWithinFrame(t *testing.T) {
	pump := NewPump(scriptedSource(motion.InputSnapshot{JumpPressed: true}))
	latch := NewLatch()
	sub := latch.Subscribe()
	defer sub.Close()

	pump.Push(sub)

	assert.Equal(t, motion.InputSnapshot{JumpPressed: true}, latch.Poll())
}

func TestPump_ClosedSubscriptionDropsInput(t *testing.T) {
	pump := NewPump(scriptedSource(motion.InputSnapshot{MoveAxis: 1, JumpHeld: true, JumpPressed: true}))
	latch := NewLatch()
	sub := latch.Subscribe()
	_ = sub.Close()

	pump.Push(sub)

	assert.Equal(t, motion.InputSnapshot{}, latch.Poll())
}
