package simulation

import (
	"landmark-flight/internal/game/flightplan"

	"github.com/go-gl/mathgl/mgl64"
)

// checkCapture tests pos against the active checkpoint only. Later
// checkpoints are never considered, even when pos is inside one of them.
func checkCapture(route *flightplan.Route, index int, pos mgl64.Vec3) (*flightplan.Checkpoint, bool) {
	cp, ok := route.Active(index)
	if !ok {
		return nil, false
	}
	return cp, cp.Contains(pos)
}
