package ui

import (
	"fmt"
	"landmark-flight/internal/game/flightplan"
	"math"
)

// FormatTime renders whole seconds as mm:ss. Minutes keep counting past 59.
func FormatTime(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// CompleteLabel replaces the target once the route has been flown.
const CompleteLabel = "All landmarks passed"

// TargetLabel names the checkpoint to fly next, "i/N District / Name". An
// index past the end names the last one.
func TargetLabel(index int) string {
	names := flightplan.Names()
	n := len(names)
	i := min(max(index, 0), n-1)
	return fmt.Sprintf("%d/%d %s", i+1, n, names[i])
}
