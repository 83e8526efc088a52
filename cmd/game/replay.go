package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/application/replay"
	"github.com/younwookim/jumpfeel/internal/application/session"
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// ReplayResult is the character state after the last replayed tick
type ReplayResult struct {
	ID       string
	Frames   int
	Jumps    int
	Respawns int
	Position motion.Vec2
	Velocity motion.VelocityState
	Grounded bool
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("replay %s: %d frames, %d jumps, %d respawns, pos=(%.4f, %.4f) v=(%.4f, %.4f) grounded=%t",
		r.ID, r.Frames, r.Jumps, r.Respawns,
		r.Position.X(), r.Position.Y(),
		r.Velocity.X, r.Velocity.Y, r.Grounded)
}

// replayConfig copies cfg with the fixed step the recording was made with
func replayConfig(cfg *config.GameConfig, data *replay.ReplayData, logger *zap.Logger) *config.GameConfig {
	character := *cfg.Character
	if character.Name != data.Character {
		logger.Warn("replay recorded with another character",
			zap.String("recorded", data.Character),
			zap.String("loaded", character.Name))
	}
	if character.Simulation.FixedStep != data.FixedStep {
		logger.Warn("replay fixed step differs from config, using recorded step",
			zap.Float64("recorded", data.FixedStep),
			zap.Float64("config", character.Simulation.FixedStep))
		character.Simulation.FixedStep = data.FixedStep
	}
	return &config.GameConfig{Character: &character, Stage: cfg.Stage}
}

// runReplay feeds every recorded frame to a fresh session, one per fixed
// tick, using the fixed step the recording was made with.
func runReplay(cfg *config.GameConfig, data *replay.ReplayData, logger *zap.Logger) (ReplayResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := data.Validate(); err != nil {
		return ReplayResult{}, err
	}

	sess, err := session.New(replayConfig(cfg, data, logger), logger)
	if err != nil {
		return ReplayResult{}, err
	}
	defer sess.Close()
	player := sess.Character()
	player.Activate(nil)

	replayer := replay.NewReplayer(*data)
	result := ReplayResult{ID: data.ID}
	for !replayer.Done() {
		frame, _ := replayer.Next()
		if frame.R {
			sess.RequestRespawn()
		}
		player.Sample(frame.Snapshot())
		tick, _ := sess.Step(data.FixedStep)

		if tick.Step.Jumped {
			result.Jumps++
		}
		if tick.Respawned || tick.Fell {
			result.Respawns++
		}
		result.Grounded = tick.Step.Ground.Grounded
	}

	result.Frames = replayer.CurrentFrame()
	result.Position = sess.Body().Position()
	result.Velocity = sess.Body().Velocity()

	logger.Debug("replay finished",
		zap.String("id", data.ID),
		zap.Int("frames", result.Frames),
		zap.Int("jumps", result.Jumps),
		zap.Int("respawns", result.Respawns))
	return result, nil
}
