package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	avlog "github.com/pjscruggs/slogcp-avlog"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the bridge settings.
type Config struct {
	// Level is the libavutil threshold, by name or AV_LOG_* number.
	Level string `json:"level" yaml:"level" toml:"level"`
	// Flags is a comma separated flag list, see avlog.ParseFlags.
	Flags string `json:"flags" yaml:"flags" toml:"flags"`
	// RespectNativeLevel makes the adapter apply Level before rendering.
	RespectNativeLevel bool `json:"respectNativeLevel" yaml:"respect_native_level" toml:"respect_native_level"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Level: avlog.LevelInfo.String(),
		Flags: "none",
	}
}

// Load reads configuration from a YAML, TOML or JSON file, chosen by
// extension. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(b), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate parses Level and Flags without touching libavutil.
func (c Config) Validate() (avlog.Level, avlog.Flags, error) {
	level, err := avlog.ParseLevel(c.Level)
	if err != nil {
		return 0, 0, fmt.Errorf("config: level: %w", err)
	}
	flags, err := avlog.ParseFlags(c.Flags)
	if err != nil {
		return 0, 0, fmt.Errorf("config: flags: %w", err)
	}
	return level, flags, nil
}

// Apply pushes the level and flags to libavutil. Nothing is applied if
// either fails to parse.
func (c Config) Apply() error {
	level, flags, err := c.Validate()
	if err != nil {
		return err
	}
	avlog.SetLevel(level)
	avlog.SetFlags(flags)
	return nil
}

// AdapterOptions returns the adapter options implied by c.
func (c Config) AdapterOptions() []avlog.AdapterOption {
	return []avlog.AdapterOption{
		avlog.WithNativeThreshold(c.RespectNativeLevel),
	}
}
