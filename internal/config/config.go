// Package config loads the TOML configuration shared by the server and the
// command-line tools.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cours-de-latin/naglasak"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Lexicon   LexiconConfig   `toml:"lexicon"`
	Synthesis SynthesisConfig `toml:"synthesis"`
	Log       LogConfig       `toml:"log"`
}

type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	Metrics        bool     `toml:"metrics"`
}

type LexiconConfig struct {
	Path string `toml:"path"`
	// Format is yaml or sqlite; empty infers it from the extension.
	Format string `toml:"format"`
}

// SynthesisConfig holds the default options of every request.
type SynthesisConfig struct {
	Reflex                   string `toml:"reflex"`
	Latin                    bool   `toml:"latin"`
	DisableAugmentRetraction bool   `toml:"disable_augment_retraction"`
	LengthInconstancy        bool   `toml:"length_inconstancy"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := validateLexicon(&cfg); err != nil {
		return nil, err
	}
	if err := validateSynthesis(&cfg); err != nil {
		return nil, err
	}
	if err := validateLog(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = ":8080"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if strings.TrimSpace(cfg.Lexicon.Path) == "" {
		cfg.Lexicon.Path = "data/lexicon.yaml"
	}
	if strings.TrimSpace(cfg.Lexicon.Format) == "" {
		cfg.Lexicon.Format = formatOf(cfg.Lexicon.Path)
	}
	if strings.TrimSpace(cfg.Synthesis.Reflex) == "" {
		cfg.Synthesis.Reflex = "e"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	}
	return "yaml"
}

func validateLexicon(cfg *Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Lexicon.Format)) {
	case "yaml", "sqlite":
		return nil
	}
	return fmt.Errorf("lexicon.format must be one of: yaml, sqlite, got %q", cfg.Lexicon.Format)
}

func validateSynthesis(cfg *Config) error {
	if _, err := naglasak.ParseReflex(cfg.Synthesis.Reflex); err != nil {
		return fmt.Errorf("synthesis.reflex: %w", err)
	}
	return nil
}

func validateLog(cfg *Config) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// SetLexicon points the configuration at another lexicon file and infers
// its format from the extension.
func (c *Config) SetLexicon(path string) {
	c.Lexicon.Path = path
	c.Lexicon.Format = formatOf(path)
}

// Options returns the default synthesis options.
func (c *Config) Options() (naglasak.Options, error) {
	r, err := naglasak.ParseReflex(c.Synthesis.Reflex)
	if err != nil {
		return naglasak.Options{}, err
	}
	return naglasak.Options{
		Reflex:                   r,
		Latin:                    c.Synthesis.Latin,
		DisableAugmentRetraction: c.Synthesis.DisableAugmentRetraction,
		LengthInconstancy:        c.Synthesis.LengthInconstancy,
	}, nil
}

// LogLevel returns the configured level, or info if it does not parse.
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
