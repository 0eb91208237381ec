package aircraft

import (
	"fmt"
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"

	"github.com/go-gl/mathgl/mgl64"
)

// SpawnPoint is where every run starts, nose pointing along +Z.
var SpawnPoint = mgl64.Vec3{0, 32, 20}

// Forward is the model-space nose direction.
var Forward = mgl64.Vec3{0, 0, 1}

type spinner struct {
	node *scene.Node
	axis mgl64.Vec3
	rate float64
}

type Aircraft struct {
	Kind    types.VehicleKind
	Profile Profile

	Node        *scene.Node
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Speed       float64

	spinners []spinner
}

// New builds a fresh aircraft of the given kind at the spawn point. Every call
// allocates its own geometries and materials. An unknown kind panics.
func New(kind types.VehicleKind) *Aircraft {
	profile := ProfileFor(kind)

	ac := &Aircraft{
		Kind:        kind,
		Profile:     profile,
		Node:        scene.NewGroup(fmt.Sprintf("aircraft-%s", kind)),
		Position:    SpawnPoint,
		Orientation: mgl64.QuatIdent(),
		Speed:       profile.BaseSpeed,
	}

	b := &builder{ac: ac, body: scene.NewGroup(string(kind))}
	switch kind {
	case types.Jetliner:
		b.jetliner()
	case types.Fighter:
		b.fighter()
	case types.Biplane:
		b.biplane()
	case types.Helicopter:
		b.helicopter()
	}
	ac.Node.Add(b.body)
	ac.SyncNode()
	return ac
}

// Heading returns the unit vector the nose points along.
func (ac *Aircraft) Heading() mgl64.Vec3 {
	return ac.Orientation.Rotate(Forward).Normalize()
}

// SyncNode copies the simulated pose onto the visual node.
func (ac *Aircraft) SyncNode() {
	ac.Node.Position = ac.Position
	ac.Node.Rotation = ac.Orientation
}

// Spin advances propellers and rotors by dt seconds.
func (ac *Aircraft) Spin(dt float64) {
	for _, s := range ac.spinners {
		s.node.Rotate(s.axis, s.rate*dt)
	}
}

// Spinners reports how many animated parts the model has.
func (ac *Aircraft) Spinners() int {
	return len(ac.spinners)
}
