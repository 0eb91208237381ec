package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type GeometryKind int

const (
	BoxGeometry GeometryKind = iota
	SphereGeometry
	CylinderGeometry
	ConeGeometry
	TorusGeometry
	PlaneGeometry
	CircleGeometry
	LineGeometry
)

var GeometryKindStringMap = map[GeometryKind]string{
	BoxGeometry:      "box",
	SphereGeometry:   "sphere",
	CylinderGeometry: "cylinder",
	ConeGeometry:     "cone",
	TorusGeometry:    "torus",
	PlaneGeometry:    "plane",
	CircleGeometry:   "circle",
	LineGeometry:     "line",
}

// Geometry is a shape description in local space. It stands in for a GPU
// vertex buffer: it must be released exactly once through Dispose.
type Geometry struct {
	Kind     GeometryKind
	Size     mgl64.Vec3 // box width/height/depth, plane width/-/depth
	Radius   float64    // sphere, circle, cone base, cylinder top, torus main radius
	Radius2  float64    // cylinder bottom, torus tube
	Height   float64    // cylinder, cone
	Segments int
	Points   []mgl64.Vec3 // line vertices

	outline  [][]mgl64.Vec3
	disposed bool
}

func NewBox(w, h, d float64) *Geometry {
	return &Geometry{Kind: BoxGeometry, Size: mgl64.Vec3{w, h, d}}
}

func NewSphere(r float64, segments int) *Geometry {
	return &Geometry{Kind: SphereGeometry, Radius: r, Segments: segments}
}

// NewCylinder builds a Y-aligned cylinder centred on the origin.
func NewCylinder(top, bottom, h float64, segments int) *Geometry {
	return &Geometry{Kind: CylinderGeometry, Radius: top, Radius2: bottom, Height: h, Segments: segments}
}

// NewCone builds a Y-aligned cone with its apex at +h/2.
func NewCone(r, h float64, segments int) *Geometry {
	return &Geometry{Kind: ConeGeometry, Radius: r, Height: h, Segments: segments}
}

// NewTorus builds a ring lying in the local XY plane.
func NewTorus(r, tube float64, segments int) *Geometry {
	return &Geometry{Kind: TorusGeometry, Radius: r, Radius2: tube, Segments: segments}
}

// NewPlane builds a horizontal XZ plane split into a grid of divisions.
func NewPlane(w, d float64, divisions int) *Geometry {
	return &Geometry{Kind: PlaneGeometry, Size: mgl64.Vec3{w, 0, d}, Segments: divisions}
}

// NewCircle builds a flat horizontal disc.
func NewCircle(r float64, segments int) *Geometry {
	return &Geometry{Kind: CircleGeometry, Radius: r, Segments: segments}
}

func NewLine(points []mgl64.Vec3) *Geometry {
	pts := make([]mgl64.Vec3, len(points))
	copy(pts, points)
	return &Geometry{Kind: LineGeometry, Points: pts}
}

func (g *Geometry) Dispose() error {
	if g.disposed {
		return ErrDisposed
	}
	g.disposed = true
	g.outline = nil
	return nil
}

func (g *Geometry) Disposed() bool {
	return g.disposed
}

// BoundingRadius is the radius of a sphere around the local origin that
// encloses the shape.
func (g *Geometry) BoundingRadius() float64 {
	switch g.Kind {
	case BoxGeometry, PlaneGeometry:
		return g.Size.Len() / 2
	case CylinderGeometry:
		return math.Hypot(math.Max(g.Radius, g.Radius2), g.Height/2)
	case ConeGeometry:
		return math.Hypot(g.Radius, g.Height/2)
	case TorusGeometry:
		return g.Radius + g.Radius2
	case LineGeometry:
		r := 0.0
		for _, p := range g.Points {
			r = math.Max(r, p.Len())
		}
		return r
	default:
		return g.Radius
	}
}

// Outline returns local-space polylines tracing the shape's silhouette edges.
// The result is cached and must not be modified.
func (g *Geometry) Outline() [][]mgl64.Vec3 {
	if g.disposed {
		return nil
	}
	if g.outline == nil {
		g.outline = g.buildOutline()
	}
	return g.outline
}

// segments returns the ring resolution, def when unset. Outlines are drawn
// per frame so detail is capped at 48.
func (g *Geometry) segments(def int) int {
	switch {
	case g.Segments <= 0:
		return def
	case g.Segments < 3:
		return 3
	case g.Segments > 48:
		return 48
	}
	return g.Segments
}

func (g *Geometry) buildOutline() [][]mgl64.Vec3 {
	switch g.Kind {
	case BoxGeometry:
		hx, hy, hz := g.Size.X()/2, g.Size.Y()/2, g.Size.Z()/2
		bottom := rect(hx, hz, -hy)
		top := rect(hx, hz, hy)
		out := [][]mgl64.Vec3{bottom, top}
		for i := 0; i < 4; i++ {
			out = append(out, []mgl64.Vec3{bottom[i], top[i]})
		}
		return out
	case SphereGeometry:
		n := g.segments(12)
		return [][]mgl64.Vec3{
			ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c, s, 0}.Mul(g.Radius) }),
			ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c, 0, s}.Mul(g.Radius) }),
			ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{0, c, s}.Mul(g.Radius) }),
		}
	case CylinderGeometry:
		n := g.segments(8)
		h := g.Height / 2
		top := ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c * g.Radius, h, s * g.Radius} })
		bottom := ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c * g.Radius2, -h, s * g.Radius2} })
		out := [][]mgl64.Vec3{top, bottom}
		for i := 0; i < n; i += max(1, n/4) {
			out = append(out, []mgl64.Vec3{top[i], bottom[i]})
		}
		return out
	case ConeGeometry:
		n := g.segments(8)
		h := g.Height / 2
		base := ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c * g.Radius, -h, s * g.Radius} })
		apex := mgl64.Vec3{0, h, 0}
		out := [][]mgl64.Vec3{base}
		for i := 0; i < n; i += max(1, n/4) {
			out = append(out, []mgl64.Vec3{base[i], apex})
		}
		return out
	case TorusGeometry:
		n := g.segments(16)
		out := make([][]mgl64.Vec3, 0, 3)
		for _, r := range []float64{g.Radius - g.Radius2, g.Radius, g.Radius + g.Radius2} {
			out = append(out, ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c * r, s * r, 0} }))
		}
		return out
	case PlaneGeometry:
		hx, hz := g.Size.X()/2, g.Size.Z()/2
		out := [][]mgl64.Vec3{rect(hx, hz, 0)}
		div := max(1, g.Segments)
		for i := 1; i < div; i++ {
			t := float64(i)/float64(div)*2 - 1
			out = append(out,
				[]mgl64.Vec3{{t * hx, 0, -hz}, {t * hx, 0, hz}},
				[]mgl64.Vec3{{-hx, 0, t * hz}, {hx, 0, t * hz}},
			)
		}
		return out
	case CircleGeometry:
		n := g.segments(12)
		return [][]mgl64.Vec3{ring(n, func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c * g.Radius, 0, s * g.Radius} })}
	case LineGeometry:
		return [][]mgl64.Vec3{g.Points}
	}
	return nil
}

func rect(hx, hz, y float64) []mgl64.Vec3 {
	return []mgl64.Vec3{{-hx, y, -hz}, {hx, y, -hz}, {hx, y, hz}, {-hx, y, hz}, {-hx, y, -hz}}
}

// ring samples a closed loop; the last point repeats the first.
func ring(n int, at func(c, s float64) mgl64.Vec3) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts = append(pts, at(math.Cos(a), math.Sin(a)))
	}
	return pts
}
