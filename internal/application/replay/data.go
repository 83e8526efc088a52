// Package replay records the InputSnapshots consumed by fixed ticks and plays
// them back one frame per tick.
package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

// FormatVersion is written by Recorder and required by LoadReplay
const FormatVersion = "2.0"

var (
	ErrNoFrames        = errors.New("no frames to save")
	ErrVersionMismatch = errors.New("unsupported replay version")
)

// FrameInput records the input of a single fixed tick
type FrameInput struct {
	F  int     `json:"f"`            // Tick number
	A  float64 `json:"a,omitempty"`  // MoveAxis
	J  bool    `json:"j,omitempty"`  // JumpHeld
	JP bool    `json:"jp,omitempty"` // JumpPressed
	R  bool    `json:"r,omitempty"`  // Respawn before the tick
}

// Snapshot converts the frame back to the tick input it was recorded from
func (f FrameInput) Snapshot() motion.InputSnapshot {
	return motion.InputSnapshot{
		MoveAxis:    motion.ClampAxis(f.A),
		JumpHeld:    f.J,
		JumpPressed: f.JP,
	}
}

// NewFrameInput records in as tick n; respawn marks a respawn that ran first
func NewFrameInput(n int, in motion.InputSnapshot, respawn bool) FrameInput {
	return FrameInput{
		F:  n,
		A:  in.MoveAxis,
		J:  in.JumpHeld,
		JP: in.JumpPressed,
		R:  respawn,
	}
}

// ReplayData contains all data needed to replay a session.
// Playback is deterministic only with the same character, stage and FixedStep.
type ReplayData struct {
	Version   string       `json:"version"`
	ID        string       `json:"id"`
	Character string       `json:"character"`
	Stage     string       `json:"stage"`
	FixedStep float64      `json:"fixedStep"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks the header fields playback depends on
func (d *ReplayData) Validate() error {
	if d.Version != FormatVersion {
		return fmt.Errorf("%w: %q", ErrVersionMismatch, d.Version)
	}
	if d.FixedStep <= 0 {
		return fmt.Errorf("invalid fixed step %v", d.FixedStep)
	}
	for i, f := range d.Frames {
		if f.F != i {
			return fmt.Errorf("frame %d out of order (got %d)", i, f.F)
		}
	}
	return nil
}
