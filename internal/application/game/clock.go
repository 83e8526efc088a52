package game

const defaultMaxSubsteps = 5

// FixedClock turns variable frame time into whole fixed simulation steps.
// Time beyond maxSubsteps in one frame is dropped so a slow frame cannot
// snowball into ever longer catch-up frames.
type FixedClock struct {
	step        float64
	maxSubsteps int
	acc         float64
	dropped     int
}

// NewFixedClock creates a clock; maxSubsteps <= 0 selects the default of 5
func NewFixedClock(step float64, maxSubsteps int) *FixedClock {
	if maxSubsteps <= 0 {
		maxSubsteps = defaultMaxSubsteps
	}
	return &FixedClock{
		step:        step,
		maxSubsteps: maxSubsteps,
	}
}

// Advance accumulates frame time and returns how many fixed steps to run now
func (c *FixedClock) Advance(frame float64) int {
	if frame <= 0 || c.step <= 0 {
		return 0
	}
	c.acc += frame

	steps := 0
	for c.acc >= c.step && steps < c.maxSubsteps {
		c.acc -= c.step
		steps++
	}
	if c.acc >= c.step {
		c.dropped += int(c.acc / c.step)
		c.acc = 0
	}
	return steps
}

// Step returns the fixed step length in seconds
func (c *FixedClock) Step() float64 {
	return c.step
}

// Alpha returns how far the clock is into the next step, in [0, 1)
func (c *FixedClock) Alpha() float64 {
	if c.step <= 0 {
		return 0
	}
	return c.acc / c.step
}

// Dropped returns the number of steps discarded by the substep cap
func (c *FixedClock) Dropped() int {
	return c.dropped
}

// Reset clears accumulated time
func (c *FixedClock) Reset() {
	c.acc = 0
	c.dropped = 0
}
