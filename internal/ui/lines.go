package ui

import (
	"fmt"
	"strings"

	"torus-life/internal/core"
)

// Line is one row of HUD text.
type Line struct {
	Text   string
	Header bool
}

// SnapshotLines lays out a parameter snapshot as HUD rows: one header per
// group followed by "label: value" rows.
func SnapshotLines(title string, snap core.ParameterSnapshot) []Line {
	lines := []Line{{Text: title, Header: true}}
	for _, group := range snap.Groups {
		lines = append(lines, Line{Text: group.Name, Header: true})
		for _, p := range group.Params {
			lines = append(lines, Line{Text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
		}
	}
	return lines
}

// Title builds the HUD heading for a sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Status"
}

// SimErr returns the last error a sim recorded, or nil when it has none or
// does not track errors.
func SimErr(sim core.Sim) error {
	f, ok := sim.(core.Failer)
	if !ok {
		return nil
	}
	return f.Err()
}

// ErrorLine formats err as a HUD row.
func ErrorLine(err error) Line {
	return Line{Text: "Error: " + err.Error(), Header: true}
}

// LoopBanner returns the overlay message for a halted sim, or "" while it is
// still running.
func LoopBanner(sim core.Sim) string {
	h, ok := sim.(core.Halter)
	if !ok || !h.Halted() {
		return ""
	}
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return "LOOP DETECTED"
	}
	snap := p.Parameters()
	first, okFirst := snap.Lookup("loop_first")
	period, okPeriod := snap.Lookup("period")
	if !okFirst || !okPeriod {
		return "LOOP DETECTED"
	}
	return fmt.Sprintf("LOOP DETECTED: repeats turn %s every %s", first.Value, period.Value)
}
