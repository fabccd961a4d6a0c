package config

import (
	"os"
	"strconv"
)

// FromEnv overlays AVLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("AVLOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("AVLOG_FLAGS"); v != "" {
		cfg.Flags = v
	}
	if v := os.Getenv("AVLOG_RESPECT_NATIVE_LEVEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RespectNativeLevel = b
		}
	}
}
