package input

// Pump forwards a polled device into a Subscription as action callbacks,
// so a polling device feeds the same latch an event-driven one would.
type Pump struct {
	src  Source
	held bool
}

// NewPump creates a pump reading src
func NewPump(src Source) *Pump {
	return &Pump{src: src}
}

// Push polls the source once and reports the move value, a press as
// performed and a release as canceled.
func (p *Pump) Push(sub *Subscription) {
	in := p.src.Poll()

	sub.Move(in.MoveAxis)
	if in.JumpPressed {
		sub.JumpPerformed()
	}
	if !in.JumpHeld && (p.held || in.JumpPressed) {
		sub.JumpCanceled()
	}
	p.held = in.JumpHeld
}
