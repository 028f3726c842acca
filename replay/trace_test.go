package replay

import (
	"path/filepath"
	"testing"

	"nsim/sim"
)

func TestExportAndImportRoundTrip(t *testing.T) {
	frames := []sim.Frame{
		{Num: 1, XPos: 1.5, YPos: 2.5, XSpeed: 0.1, YSpeed: -0.2, State: 1},
		{Num: 2, XPos: 1.6, YPos: 2.7, XSpeed: 0.1, YSpeed: -0.1, State: 1},
	}
	path := filepath.Join(t.TempDir(), "trace.csv")

	if err := ExportCSV(path, frames); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	rows, err := ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if !MatchesTrace(rows, frames) {
		t.Fatalf("round-tripped rows do not match the original frames: %+v", rows)
	}
}

func TestMatchesTraceDetectsDivergence(t *testing.T) {
	frames := []sim.Frame{{Num: 1, XPos: 1, YPos: 1, XSpeed: 0, YSpeed: 0, State: 0}}
	rows := FromFrames([]sim.Frame{{Num: 1, XPos: 2, YPos: 1, XSpeed: 0, YSpeed: 0, State: 0}})
	if MatchesTrace(rows, frames) {
		t.Fatal("expected a position mismatch to be detected")
	}
}
