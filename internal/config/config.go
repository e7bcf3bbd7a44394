package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claude/yawa/internal/program"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "yawa.yaml"

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Program ProgramConfig `yaml:"program"`
}

type StorageConfig struct {
	SaveDirectory string `yaml:"save_directory"`
	HistoryDB     *bool  `yaml:"history_db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ProgramConfig struct {
	Template string `yaml:"template"`
}

// HistoryDBEnabled reports whether history is mirrored into SQLite.
func (s StorageConfig) HistoryDBEnabled() bool {
	return s.HistoryDB == nil || *s.HistoryDB
}

// SlogLevel maps log.level to a slog level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{SaveDirectory: "."},
		Log:     LogConfig{Level: "warn"},
		Program: ProgramConfig{Template: program.GZCL4Day.Key},
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix YAWA_:
//
//	YAWA_SAVE_DIRECTORY, YAWA_HISTORY_DB, YAWA_LOG_LEVEL, YAWA_PROGRAM_TEMPLATE
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(data)
}

// LoadOptional is Load, except a missing file yields the defaults (still
// subject to env overrides).
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("YAWA_SAVE_DIRECTORY"); v != "" {
		cfg.Storage.SaveDirectory = v
	}
	if v := os.Getenv("YAWA_HISTORY_DB"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("YAWA_HISTORY_DB: %w", err)
		}
		cfg.Storage.HistoryDB = &b
	}
	if v := os.Getenv("YAWA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("YAWA_PROGRAM_TEMPLATE"); v != "" {
		cfg.Program.Template = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Storage.SaveDirectory == "" {
		return fmt.Errorf("storage.save_directory is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	if _, err := program.LookupTemplate(c.Program.Template); err != nil {
		return err
	}
	return nil
}
