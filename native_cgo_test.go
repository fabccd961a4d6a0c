//go:build cgo && !avlog_nocgo

package avlog

import "testing"

// TestRenderIgnoresPrintLevelFlag checks libavutil's level prefix stays out
// of bridged text.
func TestRenderIgnoresPrintLevelFlag(t *testing.T) {
	prevFlags := GetFlags()
	defer SetFlags(prevFlags)

	rec := &recordingCallback{}
	reg := Register(rec)
	defer reg.Close()

	SetFlags(FlagPrintLevel)
	Print(nil, LevelWarning, "disk full")

	got := rec.recorded()
	if len(got) != 1 || got[0] != (recordedEvent{level: LevelWarning, text: "disk full"}) {
		t.Fatalf("unexpected events: %+v", got)
	}
}
