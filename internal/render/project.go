package render

import (
	"image/color"
	"landmark-flight/internal/scene"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

type ItemKind int

const (
	LineItem ItemKind = iota
	DiscItem
	LabelItem
)

var ItemKindStringMap = map[ItemKind]string{
	LineItem:  "LINE",
	DiscItem:  "DISC",
	LabelItem: "LABEL",
}

// Item is one projected primitive in viewport pixels.
type Item struct {
	Kind   ItemKind
	Depth  float64
	X0, Y0 float32
	X1, Y1 float32
	Radius float32
	Width  float32
	Color  color.RGBA
	Text   string
}

// Project flattens the visible scene into screen-space primitives sorted far
// to near, so painting them in order approximates depth testing.
func Project(sc *scene.Scene, cam *scene.Camera, width, height int) []Item {
	if sc == nil || cam == nil || width <= 0 || height <= 0 {
		return nil
	}
	cam.Refresh()
	ambient := sc.Ambient()

	var items []Item
	sc.Root.Walk(func(n *scene.Node, world mgl64.Mat4) {
		if !visible(n) || n.Material == nil || n.Material.Disposed() {
			return
		}
		centre := world.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
		depth := cam.Depth(centre)

		if n.Label != "" {
			if depth < cam.Near || depth > cam.Far {
				return
			}
			x, y, ok := cam.Project(centre, width, height)
			if !ok {
				return
			}
			items = append(items, Item{
				Kind:  LabelItem,
				Depth: depth,
				X0:    float32(x),
				Y0:    float32(y),
				Color: shade(sc, n.Material, ambient, depth),
				Text:  n.Label,
			})
			return
		}

		g := n.Geometry
		if g == nil || g.Disposed() {
			return
		}
		r := g.BoundingRadius() * maxScale(world)
		if depth+r < cam.Near || depth-r > cam.Far {
			return
		}
		c := shade(sc, n.Material, ambient, depth)
		if c.A == 0 {
			return
		}

		if g.Kind == scene.SphereGeometry {
			x, y, ok := cam.Project(centre, width, height)
			if !ok {
				return
			}
			items = append(items, Item{
				Kind:   DiscItem,
				Depth:  depth,
				X0:     float32(x),
				Y0:     float32(y),
				Radius: float32(math.Max(1, cam.ProjectRadius(r, depth, height))),
				Color:  c,
			})
			return
		}

		w := lineWidth(depth)
		for _, poly := range g.Outline() {
			for i := 1; i < len(poly); i++ {
				if n.Material.Dashed && i%2 == 0 {
					continue
				}
				a := world.Mul4x1(poly[i-1].Vec4(1)).Vec3()
				b := world.Mul4x1(poly[i].Vec4(1)).Vec3()
				x0, y0, x1, y1, ok := cam.ProjectSegment(a, b, width, height)
				if !ok {
					continue
				}
				items = append(items, Item{
					Kind:  LineItem,
					Depth: (cam.Depth(a) + cam.Depth(b)) / 2,
					X0:    float32(x0),
					Y0:    float32(y0),
					X1:    float32(x1),
					Y1:    float32(y1),
					Width: w,
					Color: c,
				})
			}
		}
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
	return items
}

func visible(n *scene.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		if !p.Visible {
			return false
		}
	}
	return true
}

func maxScale(m mgl64.Mat4) float64 {
	return math.Max(m.Col(0).Vec3().Len(), math.Max(m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()))
}

// lineWidth thins strokes with distance.
func lineWidth(depth float64) float32 {
	return float32(mgl64.Clamp(120/math.Max(depth, 1), 1, 3))
}

func shade(sc *scene.Scene, m *scene.Material, ambient, depth float64) color.RGBA {
	return Blend(m.Shade(ambient), sc.Fog.Color, sc.Fog.Factor(depth))
}

// Blend mixes c toward fog by f in [0, 1], keeping c's alpha.
func Blend(c, fog color.RGBA, f float64) color.RGBA {
	f = mgl64.Clamp(f, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-f) + float64(b)*f))
	}
	return color.RGBA{R: mix(c.R, fog.R), G: mix(c.G, fog.G), B: mix(c.B, fog.B), A: c.A}
}
