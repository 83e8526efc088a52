// Package session runs one character on one stage, one fixed tick at a time.
// The interactive scene and the headless replay runner both drive a Session,
// so a recording replays through exactly the ticks it was made from.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/application/controller"
	"github.com/younwookim/jumpfeel/internal/application/system"
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
	"github.com/younwookim/jumpfeel/internal/infrastructure/physics"
)

// KillDepth is how far below y = 0 a character may fall before respawning
const KillDepth = 5.0

// Tick is the outcome of one fixed tick
type Tick struct {
	Step  system.Step
	Input motion.InputSnapshot // Input the character consumed

	Respawned bool // A requested respawn ran before the tick
	Fell      bool // The character fell past KillDepth and was respawned after the tick
}

// Session owns the physics world and the character spawned into it
type Session struct {
	world  *physics.World
	body   *physics.Body
	player *controller.Character
	spawn  motion.Vec2
	logger *zap.Logger

	pending bool
}

// New builds the stage world and spawns an inactive character at the stage spawn
func New(cfg *config.GameConfig, logger *zap.Logger) (*Session, error) {
	if cfg == nil || cfg.Character == nil || cfg.Stage == nil {
		return nil, config.NewConfigurationError("game", "character and stage are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	character := cfg.Character
	spawn := motion.Vec2{cfg.Stage.PlayerSpawn.X, cfg.Stage.PlayerSpawn.Y}

	world := physics.NewStageWorld(character.Simulation, cfg.Stage, logger)
	body, err := world.AddBody(character.Body, spawn.X(), spawn.Y())
	if err != nil {
		return nil, fmt.Errorf("failed to spawn character: %w", err)
	}

	player, err := controller.NewCharacter(character, body, world, logger)
	if err != nil {
		world.Close()
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	return &Session{
		world:  world,
		body:   body,
		player: player,
		spawn:  spawn,
		logger: logger,
	}, nil
}

// RequestRespawn moves the character back to the spawn at the start of the next tick
func (s *Session) RequestRespawn() {
	s.pending = true
}

// Step runs one fixed tick of dt seconds. It returns false while the
// character is inactive; a pending respawn then waits for the next tick.
func (s *Session) Step(dt float64) (Tick, bool) {
	if !s.player.Active() {
		return Tick{}, false
	}

	var tick Tick
	if s.pending {
		s.pending = false
		s.respawn("requested")
		tick.Respawned = true
	}

	step, _ := s.player.FixedUpdate(dt, s.world.Gravity())
	s.world.Step(dt)
	tick.Step = step
	tick.Input = s.player.AppliedInput()

	if s.body.Position().Y() < -KillDepth {
		s.respawn("fell")
		tick.Fell = true
	}
	return tick, true
}

func (s *Session) respawn(reason string) {
	s.body.SetPosition(s.spawn)
	s.player.Reset()
	s.logger.Debug("respawned", zap.String("reason", reason))
}

// World returns the stage world
func (s *Session) World() *physics.World {
	return s.world
}

// Body returns the character's rigid body
func (s *Session) Body() *physics.Body {
	return s.body
}

// Character returns the controlled character
func (s *Session) Character() *controller.Character {
	return s.player
}

// Close deactivates the character and releases the world
func (s *Session) Close() {
	s.player.Deactivate()
	s.world.Close()
}
