// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/jumpfeel/internal/application/controller"
	"github.com/younwookim/jumpfeel/internal/application/game"
	"github.com/younwookim/jumpfeel/internal/application/input"
	"github.com/younwookim/jumpfeel/internal/application/replay"
	"github.com/younwookim/jumpfeel/internal/application/scene"
	"github.com/younwookim/jumpfeel/internal/application/session"
	"github.com/younwookim/jumpfeel/internal/application/state"
	"github.com/younwookim/jumpfeel/internal/domain/motion"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlatform    = color.RGBA{80, 80, 100, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorPlayerAir   = color.RGBA{100, 160, 220, 255}
	colorGroundCheck = color.RGBA{200, 200, 100, 200}
	colorGroundHit   = color.RGBA{255, 120, 80, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 128}
)

// Options configures a Playing scene
type Options struct {
	Source     input.Source     // nil polls the keyboard
	Replay     *replay.Replayer // plays recorded ticks instead of Source
	RecordPath string           // empty disables recording
	Logger     *zap.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	state    state.GameState
	session  *session.Session
	player   *controller.Character
	clock    *game.FixedClock
	screenW  int
	screenH  int
	ppm      float64
	showInfo bool
	logger   *zap.Logger

	// Live input reaches the character through a latch subscription
	pump  *input.Pump
	latch *input.Latch
	sub   *input.Subscription

	replayer *replay.Replayer

	reloads chan *config.CharacterConfig

	// Input recording
	recorder   *replay.Recorder
	recordPath string
}

// New creates a new Playing scene from a validated character and stage
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	source := opts.Source
	if source == nil {
		source = input.NewKeyboard()
	}

	sess, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	character := cfg.Character
	p := &Playing{
		config:     cfg,
		state:      state.StatePlaying,
		session:    sess,
		player:     sess.Character(),
		pump:       input.NewPump(source),
		latch:      input.NewLatch(),
		replayer:   opts.Replay,
		clock:      game.NewFixedClock(character.Simulation.FixedStep, character.Simulation.MaxSubsteps),
		screenW:    character.Display.ScreenWidth,
		screenH:    character.Display.ScreenHeight,
		ppm:        character.Display.PixelsPerMeter,
		showInfo:   true,
		logger:     logger,
		reloads:    make(chan *config.CharacterConfig, 1),
		recordPath: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(character.Name, cfg.Stage.ID, character.Simulation.FixedStep)
		logger.Info("recording enabled",
			zap.String("path", opts.RecordPath),
			zap.String("id", p.recorder.ID()))
	}
	if p.replayer != nil {
		data := p.replayer.Data()
		logger.Info("replaying",
			zap.String("id", data.ID),
			zap.Int("frames", p.replayer.TotalFrames()))
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReload()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.setState(state.StatePaused)
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.Respawn()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			p.showInfo = !p.showInfo
		}
		p.advance(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.setState(state.StatePlaying)
			p.clock.Reset()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) setState(next state.GameState) {
	p.logger.Debug("state changed", zap.Stringer("from", p.state), zap.Stringer("to", next))
	p.state = next
}

// advance samples input for this frame and runs the fixed ticks it owes
func (p *Playing) advance(dt float64) {
	if p.replayer == nil {
		if p.sub != nil {
			p.pump.Push(p.sub)
		}
		p.player.Sample(p.latch.Poll())
	}

	step := p.clock.Step()
	for n := p.clock.Advance(dt); n > 0; n-- {
		if p.replayer != nil {
			p.feedReplay()
		}
		tick, ok := p.session.Step(step)
		if ok && p.recorder != nil && p.recorder.IsRecording() {
			p.recorder.RecordFrame(tick.Input, tick.Respawned)
		}
	}
}

// feedReplay samples the next recorded tick; an exhausted replay reads as idle
func (p *Playing) feedReplay() {
	frame, ok := p.replayer.Next()
	if !ok {
		p.player.Sample(motion.InputSnapshot{})
		return
	}
	if frame.R {
		p.session.RequestRespawn()
	}
	p.player.Sample(frame.Snapshot())
	if p.replayer.Done() {
		p.logger.Info("replay finished", zap.Int("frames", p.replayer.TotalFrames()))
	}
}

// Respawn puts the character back at the spawn on the next tick.
// While replaying it restarts the replay instead.
func (p *Playing) Respawn() {
	if p.replayer != nil {
		p.replayer.Reset()
	}
	p.session.RequestRespawn()
}

// RequestReload queues a new character config for the game goroutine.
// Only the newest pending config is kept.
func (p *Playing) RequestReload(cfg *config.CharacterConfig) {
	for {
		select {
		case p.reloads <- cfg:
			return
		default:
		}
		select {
		case <-p.reloads:
		default:
		}
	}
}

func (p *Playing) applyReload() {
	select {
	case cfg := <-p.reloads:
		if err := p.player.Reconfigure(cfg); err != nil {
			p.logger.Warn("config reload rejected", zap.Error(err))
			return
		}
		p.logger.Info("config reloaded", zap.String("character", cfg.Name))
	default:
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", zap.Error(err))
		return
	}
	p.logger.Info("recording saved",
		zap.String("path", filename),
		zap.Int("frames", p.recorder.FrameCount()))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	for _, pl := range p.session.World().Platforms() {
		x, y := p.toScreen(pl.X, pl.Y+pl.Height, camX, camY)
		vector.DrawFilledRect(screen, x, y, float32(pl.Width*p.ppm), float32(pl.Height*p.ppm), colorPlatform, false)
	}

	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	cfg := p.player.Config()
	body := cfg.Body
	pos := p.session.Body().Position()
	x, y := p.toScreen(pos.X()-body.Width/2, pos.Y()+body.Height/2, camX, camY)

	c := colorPlayer
	if !p.player.LastStep().Ground.Grounded {
		c = colorPlayerAir
	}
	vector.DrawFilledRect(screen, x, y, float32(body.Width*p.ppm), float32(body.Height*p.ppm), c, false)

	check := p.player.GroundCheckPoint()
	cx, cy := p.toScreen(check.X(), check.Y(), camX, camY)
	checkColor := colorGroundCheck
	if p.player.LastStep().Ground.Grounded {
		checkColor = colorGroundHit
	}
	r := float32(cfg.GroundCheck.Radius * p.ppm)
	vector.StrokeCircle(screen, cx, cy, r, 1, checkColor, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | R: Respawn | Tab: Info | ESC: Pause | Q: Quit")
	if !p.showInfo {
		return
	}

	step := p.player.LastStep()
	timers := p.player.Timers()
	cfg := p.player.Config()
	info := fmt.Sprintf("%s  movement=%s jump=%s\nv=(%.2f, %.2f) g*%.2f grounded=%t\ncoyote=%.3f buffer=%.3f",
		cfg.Name, cfg.Movement.Model, cfg.Jump.Mode,
		step.Velocity.X, step.Velocity.Y, float64(step.GravityScale), step.Ground.Grounded,
		timers.Coyote(), timers.Buffer())
	if p.recorder != nil {
		info += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		info += fmt.Sprintf("\nREPLAY %d/%d (R restarts)", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, info, 10, p.screenH-50)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// camera returns the world point at the screen center, clamped to the stage
func (p *Playing) camera() (float64, float64) {
	pos := p.session.Body().Position()
	halfW := float64(p.screenW) / p.ppm / 2
	halfH := float64(p.screenH) / p.ppm / 2
	size := p.config.Stage.Size
	return clamp(pos.X(), halfW, size.Width-halfW), clamp(pos.Y(), halfH, size.Height-halfH)
}

// toScreen maps a y-up world point to y-down screen pixels
func (p *Playing) toScreen(x, y, camX, camY float64) (float32, float32) {
	sx := (x-camX)*p.ppm + float64(p.screenW)/2
	sy := float64(p.screenH)/2 - (y-camY)*p.ppm
	return float32(sx), float32(sy)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	if p.replayer != nil {
		p.player.Activate(nil)
	} else {
		p.sub = p.player.Activate(p.latch)
	}
	p.clock.Reset()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.player.Deactivate()
	p.sub = nil
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Session returns the simulation driven by this scene
func (p *Playing) Session() *session.Session {
	return p.session
}

// Character returns the controlled character
func (p *Playing) Character() *controller.Character {
	return p.player
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
