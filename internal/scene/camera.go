package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Fov      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64

	proj  mgl64.Mat4
	view  mgl64.Mat4
	dirty bool
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		Up:     mgl64.Vec3{0, 1, 0},
		Target: mgl64.Vec3{0, 0, 1},
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		dirty:  true,
	}
}

func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
	c.dirty = true
}

func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
	c.dirty = true
}

// Fit refits the projection to a viewport of the given pixel size.
func (c *Camera) Fit(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
	c.dirty = true
}

func (c *Camera) View() mgl64.Mat4 {
	c.update()
	return c.view
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Refresh recomputes cached matrices after fields were assigned directly.
func (c *Camera) Refresh() {
	c.dirty = true
	c.update()
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.proj = c.Projection()
	c.dirty = false
}

// Depth is the distance of p in front of the camera along its view axis.
// Negative values are behind the camera.
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	return -c.View().Mul4x1(p.Vec4(1)).Z()
}

// Project maps a world point to viewport pixels. ok is false for points
// behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	c.update()
	v := c.view.Mul4x1(p.Vec4(1))
	if -v.Z() < c.Near {
		return 0, 0, false
	}
	x, y = c.toScreen(v, width, height)
	return x, y, true
}

// ProjectSegment projects the segment a-b, clipping it against the near
// plane. ok is false when the whole segment is behind the camera.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3, width, height int) (x0, y0, x1, y1 float64, ok bool) {
	c.update()
	va := c.view.Mul4x1(a.Vec4(1))
	vb := c.view.Mul4x1(b.Vec4(1))
	da, db := -va.Z()-c.Near, -vb.Z()-c.Near
	switch {
	case da < 0 && db < 0:
		return 0, 0, 0, 0, false
	case da < 0:
		va = va.Add(vb.Sub(va).Mul(da / (da - db)))
	case db < 0:
		vb = vb.Add(va.Sub(vb).Mul(db / (db - da)))
	}
	x0, y0 = c.toScreen(va, width, height)
	x1, y1 = c.toScreen(vb, width, height)
	return x0, y0, x1, y1, true
}

// ProjectRadius approximates the on-screen radius in pixels of a sphere of
// radius r at view depth d.
func (c *Camera) ProjectRadius(r, d float64, height int) float64 {
	if d <= c.Near {
		return 0
	}
	f := 1 / mgl64.Clamp(tanHalf(c.Fov), 1e-6, 1e6)
	return r / d * f * float64(height) / 2
}

func (c *Camera) toScreen(view mgl64.Vec4, width, height int) (float64, float64) {
	clip := c.proj.Mul4x1(view)
	w := clip.W()
	if w == 0 {
		w = 1e-9
	}
	nx, ny := clip.X()/w, clip.Y()/w
	return (nx + 1) / 2 * float64(width), (1 - ny) / 2 * float64(height)
}

func tanHalf(fovDeg float64) float64 {
	return math.Tan(mgl64.DegToRad(fovDeg) / 2)
}
