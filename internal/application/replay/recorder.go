package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

// Recorder collects the input of every fixed tick
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts a recording tagged with a fresh ID
func NewRecorder(character, stage string, fixedStep float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			ID:        uuid.NewString(),
			Character: character,
			Stage:     stage,
			FixedStep: fixedStep,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3000), // ~1 minute at 50 ticks per second
		},
		recording: true,
	}
}

// RecordFrame appends the input consumed by one fixed tick and whether a
// respawn ran before it
func (r *Recorder) RecordFrame(in motion.InputSnapshot, respawn bool) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(len(r.data.Frames), in, respawn))
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// ID returns the recording identifier
func (r *Recorder) ID() string {
	return r.data.ID
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
