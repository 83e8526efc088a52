// Package input delivers InputSnapshots to the movement core, either polled
// from a device every frame or pushed by callbacks and latched until read.
package input

import "github.com/younwookim/jumpfeel/internal/domain/motion"

// Source yields the latest input once per presentation tick
type Source interface {
	Poll() motion.InputSnapshot
}

// SourceFunc adapts a function to Source
type SourceFunc func() motion.InputSnapshot

// Poll calls f
func (f SourceFunc) Poll() motion.InputSnapshot {
	return f()
}
