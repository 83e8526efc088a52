package motion

// TimerBank holds the coyote and jump buffer countdowns of a character.
// Both timers are in seconds and never go negative.
type TimerBank struct {
	coyote float64
	buffer float64
}

// Advance decays both timers by dt, floored at zero.
// Must run once per tick before any refresh or consume.
func (t *TimerBank) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	t.coyote = decay(t.coyote, dt)
	t.buffer = decay(t.buffer, dt)
}

// RefreshCoyote restarts the coyote window
func (t *TimerBank) RefreshCoyote(max float64) {
	t.coyote = nonNegative(max)
}

// RefreshBuffer restarts the jump buffer window
func (t *TimerBank) RefreshBuffer(max float64) {
	t.buffer = nonNegative(max)
}

// ConsumeBoth closes both windows at once after a jump fires
func (t *TimerBank) ConsumeBoth() {
	t.coyote = 0
	t.buffer = 0
}

// Coyote returns the remaining coyote time
func (t TimerBank) Coyote() float64 {
	return t.coyote
}

// Buffer returns the remaining jump buffer time
func (t TimerBank) Buffer() float64 {
	return t.buffer
}

func decay(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
