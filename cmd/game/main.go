package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/jumpfeel/internal/application/game"
	"github.com/younwookim/jumpfeel/internal/application/replay"
	"github.com/younwookim/jumpfeel/internal/application/scene/playing"
	"github.com/younwookim/jumpfeel/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir  string
	character  string
	stage      string
	recordPath string
	replayPath string
	view       bool
	watch      bool
	debug      bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.StringVar(&opts.configDir, "config", "", "Load configs from this directory instead of the embedded set")
	fset.StringVar(&opts.character, "character", "default", "Character config name (characters/<name>.json|yaml)")
	fset.StringVar(&opts.stage, "stage", "demo", "Stage config name (stages/<name>.json)")
	fset.StringVar(&opts.recordPath, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replayPath, "replay", "", "Play a recording headless and print the final state")
	fset.BoolVar(&opts.view, "view", false, "Show the -replay recording in a window instead of running it headless")
	fset.BoolVar(&opts.watch, "watch", false, "Reload the character when its file changes (requires -config)")
	fset.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}
	if opts.watch && opts.configDir == "" {
		return opts, errors.New("-watch requires -config")
	}
	if opts.recordPath != "" && opts.replayPath != "" {
		return opts, errors.New("-record and -replay are mutually exclusive")
	}
	if opts.view && opts.replayPath == "" {
		return opts, errors.New("-view requires -replay")
	}
	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		logger.Fatal("game failed", zap.Error(err))
	}
}

func run(opts options, logger *zap.Logger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}

	if opts.replayPath != "" && !opts.view {
		return runReplayFile(loader, opts.replayPath, logger)
	}

	var (
		cfg      *config.GameConfig
		replayer *replay.Replayer
	)
	if opts.view {
		cfg, replayer, err = loadReplayView(loader, opts.replayPath, logger)
	} else {
		cfg, err = loader.LoadAll(opts.character, opts.stage)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	scene, err := playing.New(cfg, playing.Options{
		Replay:     replayer,
		RecordPath: opts.recordPath,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if opts.watch {
		stop, err := watchCharacter(loader, opts.character, scene, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	display := cfg.Character.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight,
		game.WithLogger(logger),
		game.WithTPS(display.Framerate))
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*2, display.ScreenHeight*2)
	ebiten.SetWindowTitle("Jump Feel")
	ebiten.SetTPS(display.Framerate)

	logger.Info("starting",
		zap.String("character", cfg.Character.Name),
		zap.String("stage", cfg.Stage.ID))

	return ebiten.RunGame(g)
}

// reloader receives character configs built from changed files
type reloader interface {
	RequestReload(cfg *config.CharacterConfig)
}

// watchCharacter reloads the named character whenever one of its files changes
func watchCharacter(loader *config.Loader, name string, target reloader, logger *zap.Logger) (func(), error) {
	dir := filepath.Join(loader.BasePath(), "characters")
	w, err := config.NewWatcher(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if !isCharacterFile(path, name) {
					continue
				}
				cfg, err := loader.LoadCharacter(name)
				if err != nil {
					logger.Warn("config reload failed", zap.String("path", path), zap.Error(err))
					continue
				}
				target.RequestReload(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	logger.Info("watching configs", zap.String("dir", dir))
	return func() { _ = w.Close() }, nil
}

func isCharacterFile(path, name string) bool {
	base := filepath.Base(path)
	return config.IsConfigFile(path) && strings.TrimSuffix(base, filepath.Ext(base)) == name
}

// loadReplayView loads a recording and the configs it was made with
func loadReplayView(loader *config.Loader, path string, logger *zap.Logger) (*config.GameConfig, *replay.Replayer, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll(data.Character, data.Stage)
	if err != nil {
		return nil, nil, err
	}
	return replayConfig(cfg, data, logger), replay.NewReplayer(*data), nil
}

func runReplayFile(loader *config.Loader, path string, logger *zap.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	cfg, err := loader.LoadAll(data.Character, data.Stage)
	if err != nil {
		return fmt.Errorf("failed to load replay config: %w", err)
	}

	result, err := runReplay(cfg, data, logger)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
