package avlog

import (
	"errors"
	"log/slog"
	"math"
	"testing"
)

// TestLevelNativeRoundTrip checks Native and FromNative are exact inverses.
func TestLevelNativeRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		got, err := FromNative(l.Native())
		if err != nil {
			t.Fatalf("%v: unexpected error %v", l, err)
		}
		if got != l {
			t.Fatalf("FromNative(%d) = %v, want %v", l.Native(), got, l)
		}
	}

	natives := []int32{-8, 0, 8, 16, 24, 32, 40, 48, 56}
	for _, n := range natives {
		l, err := FromNative(n)
		if err != nil {
			t.Fatalf("FromNative(%d): unexpected error %v", n, err)
		}
		if l.Native() != n {
			t.Fatalf("Native(FromNative(%d)) = %d", n, l.Native())
		}
	}
}

// TestFromNativeRejectsUnknownValues ensures undefined values fail instead of
// silently producing a level.
func TestFromNativeRejectsUnknownValues(t *testing.T) {
	for _, n := range []int32{-9, -7, 1, 31, 57, 64, math.MinInt32, math.MaxInt32} {
		if _, err := FromNative(n); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("FromNative(%d): expected ErrInvalidLevel, got %v", n, err)
		}
	}
}

// TestDecodeNativeIsLenient verifies the dispatcher conversion strips tint
// bits and falls back to info.
func TestDecodeNativeIsLenient(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want Level
	}{
		{"warning", nativeWarning, LevelWarning},
		{"tinted-warning", nativeWarning | 0x0300, LevelWarning},
		{"tinted-panic", 0x0400, LevelPanic},
		{"quiet", nativeQuiet, LevelQuiet},
		{"unknown", 33, LevelInfo},
		{"negative", -100, LevelInfo},
		{"min", math.MinInt32, LevelInfo},
	}
	for _, tt := range tests {
		if got := decodeNative(tt.in); got != tt.want {
			t.Fatalf("%s: decodeNative(%d) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

// TestLevelFilterTable pins the coarsening table.
func TestLevelFilterTable(t *testing.T) {
	want := map[Level]Filter{
		LevelQuiet:   FilterOff,
		LevelTrace:   FilterTrace,
		LevelDebug:   FilterDebug,
		LevelVerbose: FilterDebug,
		LevelInfo:    FilterInfo,
		LevelWarning: FilterWarn,
		LevelError:   FilterError,
		LevelFatal:   FilterError,
		LevelPanic:   FilterError,
	}
	for l, f := range want {
		if got := l.Filter(); got != f {
			t.Fatalf("%v.Filter() = %v, want %v", l, got, f)
		}
	}
}

// TestLevelFilterMonotonic checks a <= b implies Filter(a) <= Filter(b).
func TestLevelFilterMonotonic(t *testing.T) {
	levels := Levels()
	for _, a := range levels {
		for _, b := range levels {
			if a <= b && a.Filter() > b.Filter() {
				t.Fatalf("Filter not monotonic: %v(%v) > %v(%v)", a, a.Filter(), b, b.Filter())
			}
		}
	}
}

// TestLevelPasses covers threshold filtering including the quiet threshold.
func TestLevelPasses(t *testing.T) {
	tests := []struct {
		level, threshold Level
		want             bool
	}{
		{LevelDebug, LevelInfo, false},
		{LevelInfo, LevelInfo, true},
		{LevelError, LevelWarning, true},
		{LevelPanic, LevelQuiet, false},
		{LevelTrace, LevelTrace, true},
	}
	for _, tt := range tests {
		if got := tt.level.Passes(tt.threshold); got != tt.want {
			t.Fatalf("%v.Passes(%v) = %v, want %v", tt.level, tt.threshold, got, tt.want)
		}
	}
}

// TestParseLevel accepts names, aliases and native integers.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"info", LevelInfo},
		{" VERBOSE ", LevelVerbose},
		{"warn", LevelWarning},
		{"warning", LevelWarning},
		{"56", LevelTrace},
		{"-8", LevelQuiet},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"loud", "33", ""} {
		if _, err := ParseLevel(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("ParseLevel(%q): expected ErrInvalidLevel, got %v", bad, err)
		}
	}
}

// TestLevelText round-trips every level through its text form.
func TestLevelText(t *testing.T) {
	for _, l := range Levels() {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", l, err)
		}
		var back Level
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != l {
			t.Fatalf("text round trip %v -> %q -> %v", l, text, back)
		}
	}
	if _, err := Level(42).MarshalText(); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for out-of-range level, got %v", err)
	}
	if got := Level(42).String(); got != "Level(42)" {
		t.Fatalf("unexpected string for out-of-range level: %s", got)
	}
}

// TestFilterSlogLevel asserts the slog mapping and that off is disabled.
func TestFilterSlogLevel(t *testing.T) {
	tests := []struct {
		in   Filter
		want slog.Level
	}{
		{FilterTrace, LevelTraceSlog},
		{FilterDebug, slog.LevelDebug},
		{FilterInfo, slog.LevelInfo},
		{FilterWarn, slog.LevelWarn},
		{FilterError, slog.LevelError},
	}
	for _, tt := range tests {
		got, ok := tt.in.SlogLevel()
		if !ok || got != tt.want {
			t.Fatalf("%v.SlogLevel() = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := FilterOff.SlogLevel(); ok {
		t.Fatalf("FilterOff should not map to a slog level")
	}
}
