package airspace

import (
	"landmark-flight/internal/scene"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Landmark is a named ground structure the route flies past.
type Landmark struct {
	ID       string
	Name     string
	Position mgl64.Vec3
	Yaw      float64

	parts func(g *scene.Node, rng *rand.Rand)
}

// Build creates the landmark's node tree with fresh resources.
func (lm Landmark) Build(rng *rand.Rand) *scene.Node {
	g := scene.NewGroup(lm.ID).At(lm.Position.X(), lm.Position.Y(), lm.Position.Z())
	if lm.Yaw != 0 {
		g.Rotate(axisY, lm.Yaw)
	}
	lm.parts(g, rng)
	return g
}

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// Landmarks returns the structures in route order.
func Landmarks() []Landmark {
	return []Landmark{
		{ID: "gate-of-orient", Name: "Gate of the Orient", Position: mgl64.Vec3{0, 0, 90}, parts: gateOfOrient},
		{ID: "jinji-lake", Name: "Jinji Lake", Position: mgl64.Vec3{145, 0, 240}, parts: jinjiLake},
		{ID: "beisi-pagoda", Name: "Beisi Pagoda", Position: mgl64.Vec3{-126, 0, 262}, parts: beisiPagoda},
		{ID: "suzhou-museum", Name: "Suzhou Museum", Position: mgl64.Vec3{-222, 0, 150}, parts: suzhouMuseum},
		{ID: "tiger-hill", Name: "Tiger Hill Pagoda", Position: mgl64.Vec3{-292, 0, -8}, parts: tigerHill},
		{ID: "baodai-bridge", Name: "Baodai Bridge", Position: mgl64.Vec3{-72, 0, -188}, Yaw: 0.32, parts: baodaiBridge},
		{ID: "vitality-island", Name: "Vitality Island", Position: mgl64.Vec3{192, 0, -128}, parts: vitalityIsland},
	}
}

func mesh(g *scene.Node, name string, geo *scene.Geometry, m *scene.Material) *scene.Node {
	n := scene.NewMesh(name, geo, m)
	g.Add(n)
	return n
}

// flatTorus lays a ring on the horizontal plane at height y.
func flatTorus(g *scene.Node, name string, geo *scene.Geometry, m *scene.Material, y float64) *scene.Node {
	return mesh(g, name, geo, m).At(0, y, 0).Rotate(axisX, math.Pi/2)
}

func gateOfOrient(g *scene.Node, _ *rand.Rand) {
	glass := scene.NewMaterial(scene.Hex(0x7db8e0)).WithOpacity(0.88)
	frame := scene.NewMaterial(scene.Hex(0x8faabe))
	const height, segs = 130.0, 20
	segH := height / segs

	for _, side := range []float64{-1, 1} {
		for i := 0; i < segs; i++ {
			t := float64(i) / segs
			spread := 18 - t*14
			if t >= 0.75 {
				spread = 7.5 + (t-0.75)*6
			}
			w := 10 - t*1.5
			y := float64(i)*segH + segH/2
			mesh(g, "tower", scene.NewBox(w, segH, 9), glass).At(side*spread, y, 0)
			if i%4 == 0 {
				mesh(g, "frame", scene.NewBox(w+0.3, 0.4, 9.3), frame).At(side*spread, y+segH/2, 0)
			}
		}
	}

	bridgeY := height * 0.75
	mesh(g, "bridge", scene.NewBox(17, 12, 9), glass).At(0, bridgeY+6, 0)
	crown := []mgl64.Vec3{
		{-10, bridgeY + 12, 0}, {-5, height + 5, 0}, {0, height + 8, 0}, {5, height + 5, 0}, {10, bridgeY + 12, 0},
	}
	mesh(g, "crown", scene.NewLine(scene.CatmullRom(crown, 24)), glass)
	mesh(g, "podium", scene.NewBox(60, 6, 30), scene.NewMaterial(scene.Hex(0xd1d5db))).At(0, 3, 0)
	mesh(g, "pool", scene.NewCircle(40, 48), scene.NewMaterial(scene.Hex(0x60a5fa)).WithOpacity(0.35)).At(0, 0.1, 0)
}

func jinjiLake(g *scene.Node, _ *rand.Rand) {
	shore := make([]mgl64.Vec3, 0, 49)
	for i := 0; i <= 48; i++ {
		a := float64(i) / 48 * 2 * math.Pi
		rx, rz := 85+math.Sin(a*3)*8, 65+math.Cos(a*2)*6
		shore = append(shore, mgl64.Vec3{math.Cos(a) * rx, 0.15, math.Sin(a) * rz})
	}
	mesh(g, "lake", scene.NewLine(shore), scene.NewMaterial(scene.Hex(0x3a8fd4)).WithOpacity(0.8))
	mesh(g, "shore", scene.NewCircle(92, 48), scene.NewMaterial(scene.Hex(0x86efac))).At(0, 0.05, 0)

	wheel := scene.NewGroup("ferris-wheel").At(35, 0, -20)
	g.Add(wheel)
	const radius = 28.0
	hub := radius + 10

	legMat := scene.NewMaterial(scene.Hex(0x475569))
	for _, z := range []float64{-5, 5} {
		mesh(wheel, "leg", scene.NewCylinder(1, 1.8, hub, 8), legMat).At(0, hub/2, z).Rotate(axisZ, math.Copysign(0.06, z))
	}
	for h := 8.0; h < radius+6; h += 10 {
		mesh(wheel, "brace", scene.NewBox(0.5, 0.5, 12), legMat).At(0, h, 0)
	}

	rimMat := scene.NewGlowMaterial(scene.Hex(0xffffff), 0.2)
	rim := scene.NewTorus(radius, 0.5, 64)
	for _, dz := range []float64{-0.8, 0.8} {
		mesh(wheel, "rim", rim, rimMat).At(0, hub, dz).Rotate(axisY, math.Pi/2)
	}
	spokeMat := scene.NewMaterial(scene.Hex(0xd1d5db))
	capsuleMat := scene.NewGlowMaterial(scene.Hex(0x60a5fa), 0.15)
	capsule := scene.NewSphere(1.8, 8)
	for i := 0; i < 28; i++ {
		a := float64(i) / 28 * 2 * math.Pi
		tip := mgl64.Vec3{0, hub + math.Sin(a)*radius, math.Cos(a) * radius}
		mesh(wheel, "spoke", scene.NewLine([]mgl64.Vec3{{0, hub, 0}, tip}), spokeMat)
		mesh(wheel, "capsule", capsule, capsuleMat).At(tip.X(), tip.Y(), tip.Z()).Scaled(0.7, 1, 0.7)
	}

	mesh(g, "island", scene.NewCylinder(10, 14, 4, 24), scene.NewMaterial(scene.Hex(0x5eead4))).At(-20, 2, 15)
	tree := scene.NewSphere(2, 8)
	treeMat := scene.NewMaterial(scene.Hex(0x16a34a))
	for _, p := range around(5, 6, 6, 0) {
		mesh(g, "tree", tree, treeMat).At(p.X()-20, p.Y(), p.Z()+15)
	}
}

// pagoda stacks octagonal storeys with eaves. taper shrinks each storey.
func pagoda(g *scene.Node, storeys int, width, height, taper float64, body, eave *scene.Material) float64 {
	y := 0.0
	for i := 0; i < storeys; i++ {
		fi := float64(i)
		w, h := width-fi*taper, height-fi*0.2
		mesh(g, "storey", scene.NewCylinder(w*0.82, w, h, 8), body).At(0, y+h/2, 0)
		outer := w + 3 - fi*0.2
		mesh(g, "eave", scene.NewCylinder(w+0.4, outer, 1, 8), eave).At(0, y+h, 0)
		y += h + 1
	}
	return y
}

func beisiPagoda(g *scene.Node, _ *rand.Rand) {
	mesh(g, "platform", scene.NewCylinder(16, 18, 4, 8), scene.NewMaterial(scene.Hex(0xe5e7eb))).At(0, 2, 0)
	tower := scene.NewGroup("tower").At(0, 4, 0)
	g.Add(tower)

	top := pagoda(tower, 9, 12, 4.8, 0.95, scene.NewMaterial(scene.Hex(0xd4a76a)), scene.NewMaterial(scene.Hex(0x3f3f46)))

	rail := scene.NewMaterial(scene.Hex(0xfbbf24))
	for i := 0; i < 6; i++ {
		fi := float64(i)
		flatTorus(tower, "railing", scene.NewTorus(12-fi*0.95+0.2, 0.1, 8), rail, 4.5+fi*5.6)
	}
	gold := scene.NewGlowMaterial(scene.Hex(0xfbbf24), 0.3)
	mesh(tower, "finial", scene.NewSphere(1.2, 12), gold).At(0, top, 0)
	mesh(tower, "spire", scene.NewCone(0.8, 8, 8), gold).At(0, top+5, 0)
}

func suzhouMuseum(g *scene.Node, _ *rand.Rand) {
	white := scene.NewMaterial(scene.Hex(0xfafafa))
	dark := scene.NewMaterial(scene.Hex(0x1f2937))

	wing := func(name string, x, z, w, h, d, roof, roofH float64) {
		mesh(g, name, scene.NewBox(w, h, d), white).At(x, h/2, z)
		mesh(g, name+"-roof", scene.NewCone(roof, roofH, 4), dark).At(x, h+roofH/2, z).Rotate(axisY, math.Pi/4)
	}
	wing("main-hall", 0, 0, 48, 13, 34, 20, 12)
	wing("west-wing", -30, -3, 26, 10, 22, 14, 8)
	wing("east-wing", 30, -3, 26, 10, 22, 14, 8)
	wing("pavilion", -18, -20, 14, 8, 14, 9, 6)
	wing("pavilion", 18, -20, 14, 8, 14, 9, 6)

	mesh(g, "entrance", scene.NewLine([]mgl64.Vec3{{-7, 0, 17.2}, {0, 13, 17.2}, {7, 0, 17.2}, {-7, 0, 17.2}}),
		scene.NewMaterial(scene.Hex(0x93c5fd)).WithOpacity(0.55))
	mesh(g, "pond", scene.NewCircle(11, 32), scene.NewMaterial(scene.Hex(0x60a5fa)).WithOpacity(0.45)).At(0, 0.2, -34)

	rock := scene.NewMaterial(scene.Hex(0x78716c))
	for _, s := range []struct{ x, z, h, d float64 }{
		{-3, -33, 7, 3}, {0, -35, 9, 2.5}, {2, -32, 6, 2.8}, {4, -36, 8, 2}, {-1, -37, 5, 3.5},
	} {
		mesh(g, "rock-slab", scene.NewBox(0.4, s.h, s.d), rock).At(s.x, s.h/2+0.3, s.z)
	}
	mesh(g, "wall", scene.NewBox(90, 6, 0.5), white).At(0, 3, -42)
}

func tigerHill(g *scene.Node, _ *rand.Rand) {
	mesh(g, "hill", scene.NewCone(30, 20, 16), scene.NewMaterial(scene.Hex(0x6b8e4c))).At(0, 10, 0)

	tower := scene.NewGroup("leaning-tower").At(0, 18, 0).Rotate(axisZ, 0.06)
	g.Add(tower)
	mesh(tower, "base", scene.NewCylinder(11, 13, 5, 8), scene.NewMaterial(scene.Hex(0x9ca3af))).At(0, 2.5, 0)

	storeys := scene.NewGroup("storeys").At(0, 5, 0)
	tower.Add(storeys)
	top := pagoda(storeys, 7, 9.5, 5.8, 0.95, scene.NewMaterial(scene.Hex(0xbc8c5a)), scene.NewMaterial(scene.Hex(0x44403c)))
	mesh(storeys, "spire", scene.NewCone(0.7, 5, 8), scene.NewMaterial(scene.Hex(0x78716c))).At(0, top+2.5, 0)
}

func baodaiBridge(g *scene.Node, _ *rand.Rand) {
	const length, arches = 180.0, 26
	span := length / arches
	deckY := func(t float64) float64 { return 7 + math.Sin(t*math.Pi)*3.5 }

	deck := make([]mgl64.Vec3, 0, 61)
	for i := 0; i <= 60; i++ {
		t := float64(i) / 60
		deck = append(deck, mgl64.Vec3{-length/2 + t*length, deckY(t), 0})
	}
	stone := scene.NewMaterial(scene.Hex(0xe2e8f0))
	mesh(g, "deck", scene.NewLine(deck), stone)

	archMat := scene.NewMaterial(scene.Hex(0xd1d5db))
	small, large := scene.NewTorus(3, 0.5, 20), scene.NewTorus(4.5, 0.5, 20)
	for i := 0; i < arches; i++ {
		t := (float64(i) + 0.5) / arches
		geo, r := small, 3.0
		if math.Abs(float64(i)-arches/2) < 1.5 {
			geo, r = large, 4.5
		}
		mesh(g, "arch", geo, archMat).At(-length/2+span*(float64(i)+0.5), deckY(t)-r, 0)
	}

	post := scene.NewCylinder(0.12, 0.15, 2, 6)
	postMat := scene.NewMaterial(scene.Hex(0xf5f5f4))
	for i := 0; i < arches*2; i++ {
		t := (float64(i) + 0.5) / (arches * 2)
		x := -length/2 + length*t
		for _, z := range []float64{-1.8, 1.8} {
			mesh(g, "post", post, postMat).At(x, deckY(t)+1, z)
		}
	}

	lion := scene.NewMaterial(scene.Hex(0x9ca3af))
	for _, x := range []float64{-length / 2, length / 2} {
		for _, z := range []float64{-2, 2} {
			mesh(g, "lion", scene.NewBox(1.2, 2, 1.2), lion).At(x, 8.5, z)
			mesh(g, "lion-head", scene.NewSphere(0.6, 8), lion).At(x, 10, z)
		}
	}
	mesh(g, "tower", scene.NewCylinder(1, 1.3, 6, 8), scene.NewMaterial(scene.Hex(0xd6d3d1))).At(length/2+5, 10, 0)
	mesh(g, "water", scene.NewPlane(length+40, 40, 1), scene.NewMaterial(scene.Hex(0x4d9df5)).WithOpacity(0.4)).At(0, 0.1, 0)
}

func vitalityIsland(g *scene.Node, rng *rand.Rand) {
	mesh(g, "island", scene.NewCylinder(38, 42, 5, 32), scene.NewMaterial(scene.Hex(0x86efac))).At(0, 2.5, 0)
	mesh(g, "plaza", scene.NewCircle(30, 32), scene.NewMaterial(scene.Hex(0xd1d5db))).At(0, 5.1, 0)

	sail := make([]mgl64.Vec3, 0, 26)
	sail = append(sail, mgl64.Vec3{0, 5, 0})
	for a := -1.2; a <= 1.2001; a += 0.1 {
		sail = append(sail, mgl64.Vec3{math.Sin(a) * 25, 5 + math.Cos(a)*25 - 5, 0})
	}
	sail = append(sail, mgl64.Vec3{0, 5, 0})
	mesh(g, "stage", scene.NewLine(sail), scene.NewMaterial(scene.Hex(0xe2e8f0))).Rotate(axisX, -0.3)

	rib := scene.NewCylinder(0.15, 0.15, 26, 6)
	ribMat := scene.NewMaterial(scene.Hex(0x94a3b8))
	for i := -4; i <= 4; i++ {
		a := float64(i) / 5 * 1.2
		mesh(g, "rib", rib, ribMat).At(math.Sin(a)*12.5, 17, math.Cos(a)*12.5-2.5).Rotate(axisZ, a*0.5)
	}
	mesh(g, "fountain", scene.NewCircle(8, 24), scene.NewMaterial(scene.Hex(0x60a5fa)).WithOpacity(0.4)).At(0, 5.2, 20)

	star := scene.NewSphere(0.2, 4)
	starMat := scene.NewGlowMaterial(scene.Hex(0xfbbf24), 0.8)
	for i := 0; i < 30; i++ {
		a, r := rng.Float64()*2*math.Pi, 15+rng.Float64()*15
		mesh(g, "star", star, starMat).At(math.Cos(a)*r, 5.15, math.Sin(a)*r)
	}

	pole := scene.NewCylinder(0.15, 0.2, 15, 6)
	poleMat := scene.NewMaterial(scene.Hex(0x475569))
	lamp := scene.NewSphere(0.8, 8)
	lampMat := scene.NewGlowMaterial(scene.Hex(0xfef3c7), 0.5)
	for _, p := range around(8, 28, 0, 0) {
		mesh(g, "pole", pole, poleMat).At(p.X(), 12.5, p.Z())
		mesh(g, "lamp", lamp, lampMat).At(p.X(), 20.5, p.Z())
	}
	canopy := scene.NewSphere(1.8, 8)
	treeMat := scene.NewMaterial(scene.Hex(0x22c55e))
	for _, p := range around(10, 34, 8.5, 0) {
		mesh(g, "tree", canopy, treeMat).At(p.X(), p.Y(), p.Z())
	}
	mesh(g, "water", scene.NewCircle(65, 48), scene.NewMaterial(scene.Hex(0x38bdf8)).WithOpacity(0.35)).At(0, 0.1, 0)
}
