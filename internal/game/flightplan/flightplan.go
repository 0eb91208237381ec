package flightplan

import (
	"image/color"
	"landmark-flight/internal/scene"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

type MarkerStyle int

const (
	Idle MarkerStyle = iota
	Active
	Captured
)

var MarkerStyleStringMap = map[MarkerStyle]string{
	Idle:     "IDLE",
	Active:   "ACTIVE",
	Captured: "CAPTURED",
}

const (
	tubeRadius    = 1.5
	captureMargin = 2
	glowDots      = 20
	pathSamples   = 300
)

// CapturedColor is the ring colour once a checkpoint has been flown through.
var CapturedColor = scene.Hex(0x22c55e)

// Checkpoint is one ring of the route. Everything but the marker's visual
// style is fixed once the route is built.
type Checkpoint struct {
	Index    int
	ID       string
	Name     string
	District string
	Center   mgl64.Vec3
	Radius   float64 // capture radius
	Color    color.RGBA

	// Phase seeds the ring's pulse so neighbouring rings do not beat in sync.
	Phase  float64
	Marker *scene.Node

	ring  *scene.Material
	style MarkerStyle
}

type waypoint struct {
	district string
	name     string
	center   mgl64.Vec3
	color    uint32
	radius   float64
}

var waypoints = []waypoint{
	{"Industrial Park", "Gate of the Orient", mgl64.Vec3{0, 58, 135}, 0x67e8f9, 18},
	{"Industrial Park", "Jinji Lake", mgl64.Vec3{110, 42, 220}, 0x38bdf8, 18},
	{"Gusu", "Beisi Pagoda", mgl64.Vec3{-120, 55, 220}, 0xfbbf24, 17},
	{"Gusu", "Suzhou Museum", mgl64.Vec3{-205, 38, 130}, 0xf59e0b, 17},
	{"High-Tech Zone", "Tiger Hill Pagoda", mgl64.Vec3{-268, 48, -24}, 0xf97316, 17},
	{"Wuzhong", "Baodai Bridge", mgl64.Vec3{-40, 34, -205}, 0x60a5fa, 18},
	{"Xiangcheng", "Vitality Island", mgl64.Vec3{190, 45, -100}, 0x22d3ee, 19},
}

// Names returns the "District / Name" label of every checkpoint in route
// order. It needs no built route.
func Names() []string {
	out := make([]string, len(waypoints))
	for i, wp := range waypoints {
		out[i] = wp.district + " / " + wp.name
	}
	return out
}

// Route is the ordered, read-only list of checkpoints. The order it was
// built in is the order they must be flown.
type Route struct {
	checkpoints []*Checkpoint
	Path        *scene.Node
}

// Build adds every checkpoint marker and the guide path to sc and returns
// the route.
func Build(sc *scene.Scene, rng *rand.Rand) *Route {
	r := &Route{checkpoints: make([]*Checkpoint, 0, len(waypoints))}
	centers := make([]mgl64.Vec3, 0, len(waypoints))

	for i, wp := range waypoints {
		cp := newCheckpoint(i, wp, rng.Float64()*2*math.Pi)
		sc.Add(cp.Marker)
		r.checkpoints = append(r.checkpoints, cp)
		centers = append(centers, wp.center)
	}

	r.Path = guidePath(centers)
	sc.Add(r.Path)
	return r
}

func newCheckpoint(index int, wp waypoint, phase float64) *Checkpoint {
	c := scene.Hex(wp.color)
	cp := &Checkpoint{
		Index:    index,
		ID:       wp.district + " / " + wp.name,
		Name:     wp.name,
		District: wp.district,
		Center:   wp.center,
		Radius:   wp.radius + captureMargin,
		Color:    c,
		Phase:    phase,
		ring:     scene.NewGlowMaterial(c, 0.5),
	}

	marker := scene.NewGroup("checkpoint").At(wp.center.X(), wp.center.Y(), wp.center.Z())
	marker.Add(scene.NewMesh("ring", scene.NewTorus(wp.radius, tubeRadius, 96), cp.ring))

	inner := scene.NewGlowMaterial(scene.Hex(0xffffff), 0.7).WithOpacity(0.4)
	inner.Emissive = c
	marker.Add(scene.NewMesh("inner-ring", scene.NewTorus(wp.radius-2, 0.35, 72), inner))

	dot := scene.NewSphere(0.35, 6)
	dotMat := scene.NewGlowMaterial(scene.Hex(0xffffff), 1).WithOpacity(0.7)
	dotMat.Emissive = c
	for i := 0; i < glowDots; i++ {
		a := float64(i) / glowDots * 2 * math.Pi
		marker.Add(scene.NewMesh("glow", dot, dotMat).At(math.Cos(a)*wp.radius, math.Sin(a)*wp.radius, 0))
	}

	label := scene.NewMaterial(scene.Hex(0xf0f9ff))
	marker.Add(scene.NewLabel("label", cp.ID, label).At(0, wp.radius+11, 0))
	marker.Add(scene.NewMesh("arrow", scene.NewCone(1.5, 4, 8), scene.NewGlowMaterial(c, 0.6)).
		At(0, wp.radius+4, 0).Rotate(mgl64.Vec3{1, 0, 0}, math.Pi))

	cp.Marker = marker
	cp.Style(Idle, 0)
	return cp
}

func guidePath(centers []mgl64.Vec3) *scene.Node {
	pts := scene.CatmullRom(centers, pathSamples)
	path := scene.NewGroup("route-path")

	dashed := scene.NewMaterial(scene.Hex(0x93c5fd)).WithOpacity(0.5)
	dashed.Dashed = true
	path.Add(scene.NewMesh("path", scene.NewLine(pts), dashed))
	path.Add(scene.NewMesh("path-glow", scene.NewLine(pts), scene.NewMaterial(scene.Hex(0x60a5fa)).WithOpacity(0.15)))
	return path
}

// Style restyles the marker. pulse is the accumulated pulse angle and only
// matters for the active style.
func (cp *Checkpoint) Style(style MarkerStyle, pulse float64) {
	ring := cp.Marker.Children()[0]
	switch style {
	case Active:
		ring.SetUniformScale(1 + math.Sin(pulse)*0.08)
		cp.ring.EmissiveIntensity = 0.7
	case Captured:
		ring.SetUniformScale(1)
		cp.ring.Color = CapturedColor
		cp.ring.Emissive = CapturedColor
		cp.ring.EmissiveIntensity = 0.5
	default:
		ring.SetUniformScale(1)
		cp.ring.EmissiveIntensity = 0.3
	}
	cp.style = style
}

func (cp *Checkpoint) CurrentStyle() MarkerStyle {
	return cp.style
}

// RingMaterial exposes the restyled material for inspection.
func (cp *Checkpoint) RingMaterial() *scene.Material {
	return cp.ring
}

// Contains reports whether p is strictly inside the capture sphere.
func (cp *Checkpoint) Contains(p mgl64.Vec3) bool {
	return p.Sub(cp.Center).Len() < cp.Radius
}

func (r *Route) Len() int {
	return len(r.checkpoints)
}

func (r *Route) At(i int) *Checkpoint {
	return r.checkpoints[i]
}

// Checkpoints returns the route in flying order. The slice is a copy; the
// checkpoints are shared.
func (r *Route) Checkpoints() []*Checkpoint {
	out := make([]*Checkpoint, len(r.checkpoints))
	copy(out, r.checkpoints)
	return out
}

// Active returns the checkpoint eligible for capture at progress index, or
// false once the route is complete.
func (r *Route) Active(index int) (*Checkpoint, bool) {
	if index < 0 || index >= len(r.checkpoints) {
		return nil, false
	}
	return r.checkpoints[index], true
}

// Restyle applies idle/active/captured styles for progress index.
func (r *Route) Restyle(index int, pulse float64) {
	for i, cp := range r.checkpoints {
		switch {
		case i == index:
			cp.Style(Active, pulse)
		case i < index:
			cp.Style(Captured, 0)
		default:
			cp.Style(Idle, 0)
		}
	}
}
