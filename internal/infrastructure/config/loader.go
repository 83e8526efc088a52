package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// characterExts is the lookup order when a character is loaded by name
var characterExts = []string{".json", ".yaml", ".yml"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Character *CharacterConfig
	Stage     *StageConfig
}

// Loader loads configuration files (JSON or YAML) using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadCharacter loads characters/<name>.{json,yaml,yml} on top of Defaults
// and validates the result.
func (l *Loader) LoadCharacter(name string) (*CharacterConfig, error) {
	for _, ext := range characterExts {
		file := "characters/" + name + ext
		if _, err := fs.Stat(l.fsys, file); err != nil {
			continue
		}
		return l.LoadCharacterFile(file)
	}
	return nil, fmt.Errorf("failed to find character %s: %w", name, fs.ErrNotExist)
}

// LoadCharacterFile loads a single character file relative to the loader root
func (l *Loader) LoadCharacterFile(file string) (*CharacterConfig, error) {
	cfg := Defaults()
	if err := l.decodeFile(file, cfg); err != nil {
		return nil, err
	}
	if cfg.Name == "" || cfg.Name == Defaults().Name {
		cfg.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid character %s: %w", file, err)
	}
	return cfg, nil
}

// LoadStage loads a stage file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.decodeFile("stages/"+name+".json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads a character and the stage it plays on
func (l *Loader) LoadAll(character, stage string) (*GameConfig, error) {
	charCfg, err := l.LoadCharacter(character)
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Character: charCfg,
		Stage:     stageCfg,
	}, nil
}

func (l *Loader) decodeFile(file string, v any) error {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := Decode(file, data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}

// Decode unmarshals data into v using the format implied by the file extension
func Decode(file string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(file)) {
	case ".json":
		return json.Unmarshal(data, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, file)
	}
}
