package scene

import (
	"errors"
	"fmt"
	"image/color"
	"landmark-flight/internal/logging"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrEnvironmentUnavailable = errors.New("rendering environment unavailable")
	ErrDisposed               = errors.New("resource already released")
)

var logger = logging.New("scene")

// Disposer is anything holding a resource that has to be released explicitly.
type Disposer interface {
	Dispose() error
}

type Fog struct {
	Color     color.RGBA
	Near, Far float64
}

// Factor returns how much of the fog colour replaces a surface at distance d.
func (f Fog) Factor(d float64) float64 {
	if f.Far <= f.Near {
		return 0
	}
	return mgl64.Clamp((d-f.Near)/(f.Far-f.Near), 0, 1)
}

type LightKind int

const (
	HemisphereLight LightKind = iota
	DirectionalLight
)

type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Ground    color.RGBA
	Intensity float64
	Position  mgl64.Vec3
}

// Scene is the arena owning everything a run draws. It is never shared
// between runs: each run builds a fresh one and disposes it on the way out.
type Scene struct {
	Root       *Node
	Background color.RGBA
	Fog        Fog
	Lights     []Light

	extra    []Disposer
	disposed bool
}

func New() *Scene {
	return &Scene{Root: NewGroup("root")}
}

func (s *Scene) Add(nodes ...*Node) {
	s.Root.Add(nodes...)
}

func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Ambient returns the combined brightness of the scene lights, used as a
// flat shading factor.
func (s *Scene) Ambient() float64 {
	a := 0.0
	for _, l := range s.Lights {
		a += l.Intensity
	}
	if a == 0 {
		return 1
	}
	return mgl64.Clamp(a*0.55, 0.3, 1.2)
}

// Track registers an extra resource released together with the scene.
func (s *Scene) Track(d Disposer) {
	s.extra = append(s.extra, d)
}

func (s *Scene) Traverse(fn func(*Node)) {
	s.Root.Walk(func(n *Node, _ mgl64.Mat4) { fn(n) })
}

// Resources returns every distinct geometry and material reachable from the
// root, in traversal order.
func (s *Scene) Resources() ([]*Geometry, []*Material) {
	var geoms []*Geometry
	var mats []*Material
	seenG := make(map[*Geometry]struct{})
	seenM := make(map[*Material]struct{})
	s.Traverse(func(n *Node) {
		if g := n.Geometry; g != nil {
			if _, ok := seenG[g]; !ok {
				seenG[g] = struct{}{}
				geoms = append(geoms, g)
			}
		}
		if m := n.Material; m != nil {
			if _, ok := seenM[m]; !ok {
				seenM[m] = struct{}{}
				mats = append(mats, m)
			}
		}
	})
	return geoms, mats
}

func (s *Scene) Disposed() bool {
	return s.disposed
}

// Report summarises one disposal sweep.
type Report struct {
	Geometries int
	Materials  int
	Extra      int
	Failures   int
	Err        error
}

func (r Report) Released() int {
	return r.Geometries + r.Materials + r.Extra
}

// Merge folds another sweep into r.
func (r Report) Merge(o Report) Report {
	return Report{
		Geometries: r.Geometries + o.Geometries,
		Materials:  r.Materials + o.Materials,
		Extra:      r.Extra + o.Extra,
		Failures:   r.Failures + o.Failures,
		Err:        errors.Join(r.Err, o.Err),
	}
}

// Dispose releases every geometry, material and tracked resource once. A
// failing release is logged and counted; the sweep always runs to the end.
// Calling Dispose again is a no-op.
func (s *Scene) Dispose() Report {
	var r Report
	if s.disposed {
		return r
	}
	s.disposed = true

	geoms, mats := s.Resources()
	var errs []error
	release := func(kind string, i int, d Disposer) bool {
		if err := d.Dispose(); err != nil {
			logger.Errorf("release %s #%d: %v", kind, i, err)
			errs = append(errs, fmt.Errorf("%s #%d: %w", kind, i, err))
			r.Failures++
			return false
		}
		return true
	}
	for i, g := range geoms {
		if release(GeometryKindStringMap[g.Kind], i, g) {
			r.Geometries++
		}
	}
	for i, m := range mats {
		if release("material", i, m) {
			r.Materials++
		}
	}
	for i, d := range s.extra {
		if release("resource", i, d) {
			r.Extra++
		}
	}
	s.extra = nil
	s.Root = NewGroup("root")
	s.Lights = nil

	r.Err = errors.Join(errs...)
	logger.Debugf("scene released: %d geometries, %d materials, %d extra, %d failures",
		r.Geometries, r.Materials, r.Extra, r.Failures)
	return r
}
