package input

import (
	"sync"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

// Latch holds push-delivered input until it is overwritten or polled.
// Callbacks reach it only through an open Subscription.
type Latch struct {
	mu      sync.Mutex
	axis    float64
	held    bool
	pressed bool
	open    int
}

// NewLatch creates an empty latch
func NewLatch() *Latch {
	return &Latch{}
}

// Subscribe opens a handle for an event source. Close it on deactivation,
// typically with defer, so stale callbacks stop landing in the latch.
func (l *Latch) Subscribe() *Subscription {
	l.mu.Lock()
	l.open++
	l.mu.Unlock()
	return &Subscription{latch: l}
}

// Poll returns the held values and clears the press edge
func (l *Latch) Poll() motion.InputSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := motion.InputSnapshot{
		MoveAxis:    l.axis,
		JumpHeld:    l.held,
		JumpPressed: l.pressed,
	}
	l.pressed = false
	return snap
}

// Subscribed reports whether any subscription is still open
func (l *Latch) Subscribed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open > 0
}

func (l *Latch) release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.open--
	if l.open == 0 {
		l.axis = 0
		l.held = false
		l.pressed = false
	}
}

// Subscription is the scoped handle callbacks write through
type Subscription struct {
	latch  *Latch
	mu     sync.Mutex
	closed bool
}

// Move records a move action (performed or canceled) with its axis value
func (s *Subscription) Move(axis float64) {
	s.deliver(func(l *Latch) {
		l.axis = motion.ClampAxis(axis)
	})
}

// JumpPerformed records a jump press
func (s *Subscription) JumpPerformed() {
	s.deliver(func(l *Latch) {
		l.held = true
		l.pressed = true
	})
}

// JumpCanceled records a jump release
func (s *Subscription) JumpCanceled() {
	s.deliver(func(l *Latch) {
		l.held = false
	})
}

// Close releases the subscription; later callbacks are dropped.
// Safe to call more than once.
func (s *Subscription) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.latch.release()
	return nil
}

func (s *Subscription) deliver(apply func(l *Latch)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.latch.mu.Lock()
	apply(s.latch)
	s.latch.mu.Unlock()
}
