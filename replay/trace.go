// Package replay turns a simulator's per-frame trace into a CSV artifact
// and checks its round-trip validity.
package replay

import (
	"os"

	"github.com/gocarina/gocsv"

	"nsim/sim"
)

// Row is one frame of a ninja's recorded trajectory, tagged for gocsv
// marshaling.
type Row struct {
	Frame  int     `csv:"frame"`
	XPos   float64 `csv:"x"`
	YPos   float64 `csv:"y"`
	XSpeed float64 `csv:"xspeed"`
	YSpeed float64 `csv:"yspeed"`
	State  int     `csv:"state"`
}

// FromFrames converts a simulator's internal trace into exportable rows.
func FromFrames(frames []sim.Frame) []*Row {
	rows := make([]*Row, len(frames))
	for i, f := range frames {
		rows[i] = &Row{Frame: f.Num, XPos: f.XPos, YPos: f.YPos, XSpeed: f.XSpeed, YSpeed: f.YSpeed, State: f.State}
	}
	return rows
}

// ExportCSV writes a trace to path in CSV form.
func ExportCSV(path string, frames []sim.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(FromFrames(frames), file)
}

// ImportCSV reads a trace previously written by ExportCSV, for round-trip
// validation against a freshly computed run.
func ImportCSV(path string) ([]*Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var rows []*Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MatchesTrace reports whether frames equals rows (for example rows read back
// by ImportCSV), field for field and frame for frame. This is the round-trip
// check: a replay re-run against the same map and input file must reproduce
// the same recorded values.
func MatchesTrace(rows []*Row, frames []sim.Frame) bool {
	if len(rows) != len(frames) {
		return false
	}
	for i, f := range frames {
		r := rows[i]
		if r.Frame != f.Num || r.XPos != f.XPos || r.YPos != f.YPos ||
			r.XSpeed != f.XSpeed || r.YSpeed != f.YSpeed || r.State != f.State {
			return false
		}
	}
	return true
}
