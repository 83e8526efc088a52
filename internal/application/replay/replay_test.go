package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

func TestFrameInput_JSONOmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3}`, string(data))
}

func TestFrameInput_Snapshot(t *testing.T) {
	in := motion.InputSnapshot{MoveAxis: -0.5, JumpHeld: true, JumpPressed: true}

	frame := NewFrameInput(7, in, true)

	assert.Equal(t, 7, frame.F)
	assert.True(t, frame.R)
	assert.Equal(t, in, frame.Snapshot())
}

func TestFrameInput_SnapshotClampsAxis(t *testing.T) {
	tests := []struct {
		name string
		axis float64
		want float64
	}{
		{"far right", 3, 1},
		{"far left", -7.5, -1},
		{"in range", 0.4, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrameInput{A: tt.axis}.Snapshot().MoveAxis)
		})
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder("default", "demo", 0.02)

	rec.RecordFrame(motion.InputSnapshot{MoveAxis: 1}, false)
	rec.RecordFrame(motion.InputSnapshot{JumpHeld: true, JumpPressed: true}, true)
	rec.Stop()
	rec.RecordFrame(motion.InputSnapshot{MoveAxis: -1}, false)

	assert.False(t, rec.IsRecording())
	require.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "default", data.Character)
	assert.Equal(t, "demo", data.Stage)
	assert.Equal(t, 0.02, data.FixedStep)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].JP)
	assert.True(t, data.Frames[1].R)
	assert.False(t, data.Frames[0].R)

	_, err := uuid.Parse(rec.ID())
	assert.NoError(t, err)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("snappy", "demo", 0.02)
	rec.RecordFrame(motion.InputSnapshot{MoveAxis: 0.25}, false)
	rec.RecordFrame(motion.InputSnapshot{JumpHeld: true, JumpPressed: true}, true)

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)
	assert.Equal(t, rec.ID(), data.ID)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("default", "demo", 0.02)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data ReplayData) string {
		path := filepath.Join(dir, name)
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("old version", func(t *testing.T) {
		data := CreateTestReplayData(2)
		data.Version = "1.0"
		_, err := LoadReplay(write("old.json", data))
		assert.ErrorIs(t, err, ErrVersionMismatch)
	})

	t.Run("no fixed step", func(t *testing.T) {
		data := CreateTestReplayData(2)
		data.FixedStep = 0
		_, err := LoadReplay(write("step.json", data))
		assert.Error(t, err)
	})

	t.Run("frames out of order", func(t *testing.T) {
		data := CreateTestReplayData(3)
		data.Frames[2].F = 5
		_, err := LoadReplay(write("order.json", data))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}

func TestReplayer_Next(t *testing.T) {
	data := CreateTestReplayData(3)
	data.Frames[1] = FrameInput{F: 1, A: 1, J: true, JP: true, R: true}

	replayer := NewReplayer(data)

	frame, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, motion.InputSnapshot{}, frame.Snapshot())

	frame, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, motion.InputSnapshot{MoveAxis: 1, JumpHeld: true, JumpPressed: true}, frame.Snapshot())
	assert.True(t, frame.R)

	_, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, replayer.Done())

	frame, ok = replayer.Next()
	assert.False(t, ok)
	assert.Equal(t, FrameInput{}, frame, "exhausted replay reads as idle")
}

func TestReplayer_FrameCounters(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Next()
	replayer.Next()
	replayer.Next()
	assert.Equal(t, 3, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	require.NoError(t, data.Validate())
	assert.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
	}
}
