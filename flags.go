package avlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Flags is the libavutil log flag bit set (AV_LOG_SKIP_REPEATED and
// friends). Bits this package does not name are carried through untouched.
type Flags int32

const (
	// FlagSkipRepeated collapses repeated lines in the native default output.
	FlagSkipRepeated Flags = 1
	// FlagPrintLevel prefixes native output with the level name.
	FlagPrintLevel Flags = 2
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagSkipRepeated, "skip_repeated"},
	{FlagPrintLevel, "print_level"},
}

// Has reports whether every bit of want is set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// String lists named bits and renders any remaining bits in hex.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(uint32(rest)), 16))
	}
	return strings.Join(parts, ",")
}

// ParseFlags reads a comma separated list of flag names and numeric bit
// patterns ("skip_repeated,print_level", "0x3", "5"). "none" and the empty
// string both yield zero.
func ParseFlags(s string) (Flags, error) {
	var out Flags
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || part == "none" {
			continue
		}
		matched := false
		for _, fn := range flagNames {
			if fn.name == part {
				out |= fn.flag
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		n, err := strconv.ParseUint(part, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("avlog: invalid log flag %q", part)
		}
		out |= Flags(int32(uint32(n)))
	}
	return out, nil
}
