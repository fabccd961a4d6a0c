package avlog

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Level is a libavutil log severity. Levels are ordered from LevelQuiet
// (suppress everything) to LevelPanic so that threshold comparisons work
// directly on the Go values.
type Level int

const (
	LevelQuiet Level = iota
	LevelTrace
	LevelDebug
	LevelVerbose
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
	LevelPanic
)

// Native libavutil AV_LOG_* values.
const (
	nativeQuiet   int32 = -8
	nativePanic   int32 = 0
	nativeFatal   int32 = 8
	nativeError   int32 = 16
	nativeWarning int32 = 24
	nativeInfo    int32 = 32
	nativeVerbose int32 = 40
	nativeDebug   int32 = 48
	nativeTrace   int32 = 56
)

// ErrInvalidLevel reports a native level outside the AV_LOG_* set.
var ErrInvalidLevel = errors.New("avlog: invalid log level")

var levelNames = [...]string{
	LevelQuiet:   "quiet",
	LevelTrace:   "trace",
	LevelDebug:   "debug",
	LevelVerbose: "verbose",
	LevelInfo:    "info",
	LevelWarning: "warning",
	LevelError:   "error",
	LevelFatal:   "fatal",
	LevelPanic:   "panic",
}

var levelNatives = [...]int32{
	LevelQuiet:   nativeQuiet,
	LevelTrace:   nativeTrace,
	LevelDebug:   nativeDebug,
	LevelVerbose: nativeVerbose,
	LevelInfo:    nativeInfo,
	LevelWarning: nativeWarning,
	LevelError:   nativeError,
	LevelFatal:   nativeFatal,
	LevelPanic:   nativePanic,
}

// Levels returns every defined level in ascending order.
func Levels() []Level {
	return []Level{
		LevelQuiet, LevelTrace, LevelDebug, LevelVerbose, LevelInfo,
		LevelWarning, LevelError, LevelFatal, LevelPanic,
	}
}

func (l Level) valid() bool { return l >= LevelQuiet && l <= LevelPanic }

// Native returns the libavutil value for l. Out-of-range levels map to
// AV_LOG_INFO.
func (l Level) Native() int32 {
	if !l.valid() {
		return nativeInfo
	}
	return levelNatives[l]
}

// FromNative converts a libavutil level to a Level. Values outside the
// AV_LOG_* set return an error wrapping ErrInvalidLevel.
func FromNative(n int32) (Level, error) {
	switch n {
	case nativeQuiet:
		return LevelQuiet, nil
	case nativePanic:
		return LevelPanic, nil
	case nativeFatal:
		return LevelFatal, nil
	case nativeError:
		return LevelError, nil
	case nativeWarning:
		return LevelWarning, nil
	case nativeInfo:
		return LevelInfo, nil
	case nativeVerbose:
		return LevelVerbose, nil
	case nativeDebug:
		return LevelDebug, nil
	case nativeTrace:
		return LevelTrace, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
}

// decodeNative is the dispatcher's lenient conversion. libavutil callers may
// OR a colour tint into bits 8-15 of the level, which is stripped first.
// Anything still unknown is treated as LevelInfo.
func decodeNative(n int32) Level {
	if n >= 0 {
		n &= 0xff
	}
	l, err := FromNative(n)
	if err != nil {
		return LevelInfo
	}
	return l
}

// Passes reports whether an event at l survives threshold. A LevelQuiet
// threshold suppresses everything.
func (l Level) Passes(threshold Level) bool {
	if threshold == LevelQuiet {
		return false
	}
	return l >= threshold
}

// String returns the lower-case libavutil name of the level.
func (l Level) String() string {
	if !l.valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// ParseLevel accepts a level name (case-insensitive, "warn" is accepted for
// "warning") or a native AV_LOG_* integer.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return LevelWarning, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	if n, err := strconv.ParseInt(name, 10, 32); err == nil {
		return FromNative(int32(n))
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Filter is the coarse enabled/disabled scale of a general logging
// framework. Ordered from FilterOff to FilterError.
type Filter int

const (
	FilterOff Filter = iota
	FilterTrace
	FilterDebug
	FilterInfo
	FilterWarn
	FilterError
)

// LevelTraceSlog is the slog level used for FilterTrace. slog has no trace
// level of its own.
const LevelTraceSlog = slog.LevelDebug - 4

// Filter coarsens l onto the Filter scale. Total and monotonic.
func (l Level) Filter() Filter {
	switch l {
	case LevelQuiet:
		return FilterOff
	case LevelTrace:
		return FilterTrace
	case LevelDebug, LevelVerbose:
		return FilterDebug
	case LevelInfo:
		return FilterInfo
	case LevelWarning:
		return FilterWarn
	case LevelError, LevelFatal, LevelPanic:
		return FilterError
	default:
		if l > LevelPanic {
			return FilterError
		}
		return FilterOff
	}
}

// SlogLevel returns the slog level for f, or false for FilterOff.
func (f Filter) SlogLevel() (slog.Level, bool) {
	switch f {
	case FilterTrace:
		return LevelTraceSlog, true
	case FilterDebug:
		return slog.LevelDebug, true
	case FilterInfo:
		return slog.LevelInfo, true
	case FilterWarn:
		return slog.LevelWarn, true
	case FilterError:
		return slog.LevelError, true
	default:
		return 0, false
	}
}

func (f Filter) String() string {
	switch f {
	case FilterOff:
		return "off"
	case FilterTrace:
		return "trace"
	case FilterDebug:
		return "debug"
	case FilterInfo:
		return "info"
	case FilterWarn:
		return "warn"
	case FilterError:
		return "error"
	default:
		return "Filter(" + strconv.Itoa(int(f)) + ")"
	}
}
