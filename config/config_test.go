package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	avlog "github.com/pjscruggs/slogcp-avlog"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFormats(t *testing.T) {
	want := Config{Level: "verbose", Flags: "skip_repeated,print_level", RespectNativeLevel: true}
	files := map[string]string{
		"avlog.yaml": "level: verbose\nflags: skip_repeated,print_level\nrespect_native_level: true\n",
		"avlog.yml":  "level: verbose\nflags: skip_repeated,print_level\nrespect_native_level: true\n",
		"avlog.toml": "level = \"verbose\"\nflags = \"skip_repeated,print_level\"\nrespect_native_level = true\n",
		"avlog.json": `{"level":"verbose","flags":"skip_repeated,print_level","respectNativeLevel":true}`,
	}
	for name, body := range files {
		cfg, err := Load(writeFile(t, name, body))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg != want {
			t.Fatalf("%s: got %+v, want %+v", name, cfg, want)
		}
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeFile(t, "partial.yaml", "flags: print_level\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Level != "info" || cfg.Flags != "print_level" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.toml", "level = [")); err == nil {
		t.Fatalf("expected toml parse error")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Fatalf("expected json parse error")
	}
}

func TestFromEnvOverlays(t *testing.T) {
	t.Setenv("AVLOG_LEVEL", "trace")
	t.Setenv("AVLOG_FLAGS", "0x3")
	t.Setenv("AVLOG_RESPECT_NATIVE_LEVEL", "true")

	cfg := Default()
	FromEnv(&cfg)
	if cfg.Level != "trace" || cfg.Flags != "0x3" || !cfg.RespectNativeLevel {
		t.Fatalf("unexpected config after env overlay: %+v", cfg)
	}

	t.Setenv("AVLOG_RESPECT_NATIVE_LEVEL", "maybe")
	FromEnv(&cfg)
	if !cfg.RespectNativeLevel {
		t.Fatalf("unparseable bool should leave the value unchanged")
	}
}

func TestValidate(t *testing.T) {
	level, flags, err := Config{Level: "warn", Flags: "skip_repeated,0x100"}.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != avlog.LevelWarning || flags != avlog.FlagSkipRepeated|0x100 {
		t.Fatalf("unexpected values: %v %v", level, flags)
	}

	if _, _, err := (Config{Level: "loud"}).Validate(); !errors.Is(err, avlog.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, _, err := (Config{Level: "info", Flags: "sparkles"}).Validate(); err == nil {
		t.Fatalf("expected flags error")
	}
}

func TestApplySetsNativeState(t *testing.T) {
	prevLevel, _ := avlog.GetLevel()
	prevFlags := avlog.GetFlags()
	t.Cleanup(func() {
		avlog.SetLevel(prevLevel)
		avlog.SetFlags(prevFlags)
	})

	if err := (Config{Level: "debug", Flags: "print_level,0x100"}).Apply(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, err := avlog.GetLevel(); err != nil || got != avlog.LevelDebug {
		t.Fatalf("GetLevel() = %v, %v", got, err)
	}
	if got := avlog.GetFlags(); got != avlog.FlagPrintLevel|0x100 {
		t.Fatalf("GetFlags() = %v", got)
	}

	if err := (Config{Level: "bogus"}).Apply(); err == nil {
		t.Fatalf("expected error for invalid level")
	}
	if got, _ := avlog.GetLevel(); got != avlog.LevelDebug {
		t.Fatalf("failed Apply changed the level to %v", got)
	}
}

func TestAdapterOptions(t *testing.T) {
	if n := len(Default().AdapterOptions()); n != 1 {
		t.Fatalf("expected one option, got %d", n)
	}
}
