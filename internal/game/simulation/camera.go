package simulation

import (
	"landmark-flight/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// startOffset places the camera above and behind the spawn point before the
// first frame.
var startOffset = mgl64.Vec3{0, 14, -62}

// Rig is a trailing chase camera.
type Rig struct {
	CameraParams
}

// Place puts cam at its starting position looking at pos.
func (r Rig) Place(cam *scene.Camera, pos mgl64.Vec3) {
	cam.SetPosition(pos.Add(startOffset))
	cam.LookAt(pos)
}

// Desired returns where the camera wants to be and what it looks at.
func (r Rig) Desired(pos, forward mgl64.Vec3) (eye, target mgl64.Vec3) {
	eye = pos.Add(mgl64.Vec3{0, r.Height, 0}).Sub(forward.Mul(r.Trail))
	target = pos.Add(forward.Mul(r.LookAhead))
	return eye, target
}

// Follow moves cam a fixed fraction of the way toward its desired position.
func (r Rig) Follow(cam *scene.Camera, pos, forward mgl64.Vec3) {
	eye, target := r.Desired(pos, forward)
	cam.SetPosition(lerp(cam.Position, eye, r.Smoothing))
	cam.LookAt(target)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
