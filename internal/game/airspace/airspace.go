package airspace

import (
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	groundSize  = 2600
	cloudCount  = 22
	cloudSpread = 860
)

// DefaultVolume is the box the aircraft is kept inside: the city core
// horizontally, from treetop height to just under the cloud deck.
func DefaultVolume() types.Box {
	return types.NewBox(mgl64.Vec3{-420, 12, -420}, mgl64.Vec3{420, 160, 420})
}

type cluster struct {
	x, z float64
	n    int
}

var cityClusters = []cluster{
	{60, 50, 5}, {-60, 180, 4}, {100, 120, 4},
	{-160, 60, 4}, {80, -60, 3}, {-100, -100, 3},
	{240, 100, 3}, {-200, -80, 3}, {150, -200, 3},
}

// Build fills a fresh scene with the static world: sky, lights, ground,
// clouds, city blocks and landmark structures. Calling it twice on the same
// scene adds everything twice.
func Build(sc *scene.Scene, rng *rand.Rand) {
	sky := scene.Hex(0x9ed8ff)
	sc.Background = sky
	sc.Fog = scene.Fog{Color: sky, Near: 260, Far: 1200}

	sc.AddLight(scene.Light{
		Kind:      scene.HemisphereLight,
		Color:     scene.Hex(0xdbeafe),
		Ground:    scene.Hex(0x89a03e),
		Intensity: 0.9,
	})
	sc.AddLight(scene.Light{
		Kind:      scene.DirectionalLight,
		Color:     scene.Hex(0xffffff),
		Intensity: 1.05,
		Position:  mgl64.Vec3{120, 220, 90},
	})

	sc.Add(scene.NewMesh("ground", scene.NewPlane(groundSize, groundSize, 26), scene.NewMaterial(scene.Hex(0xb8e5b1))))
	sc.Add(scene.NewMesh("water", scene.NewCircle(160, 72),
		scene.NewMaterial(scene.Hex(0x4d9df5)).WithOpacity(0.5)).At(18, 0.05, 190))

	addClouds(sc, rng)
	addCityBlocks(sc, rng)
	for _, lm := range Landmarks() {
		sc.Add(lm.Build(rng))
	}
}

func addClouds(sc *scene.Scene, rng *rand.Rand) {
	mat := scene.NewMaterial(scene.Hex(0xffffff)).WithOpacity(0.72)
	for i := 0; i < cloudCount; i++ {
		puff := scene.NewMesh("cloud", scene.NewSphere(6+rng.Float64()*9, 12), mat)
		puff.At(
			(rng.Float64()-0.5)*cloudSpread,
			90+rng.Float64()*68,
			(rng.Float64()-0.5)*cloudSpread,
		).Scaled(2+rng.Float64()*1.8, 0.7+rng.Float64()*0.3, 1.2+rng.Float64()*0.8)
		sc.Add(puff)
	}
}

func addCityBlocks(sc *scene.Scene, rng *rand.Rand) {
	mats := []*scene.Material{
		scene.NewMaterial(scene.Hex(0xd1d5db)),
		scene.NewMaterial(scene.Hex(0xbfdbfe)),
		scene.NewMaterial(scene.Hex(0xe2e8f0)),
	}
	for _, c := range cityClusters {
		for i := 0; i < c.n; i++ {
			w, h, d := 4+rng.Float64()*7, 8+rng.Float64()*28, 4+rng.Float64()*7
			block := scene.NewMesh("block", scene.NewBox(w, h, d), mats[rng.Intn(len(mats))])
			block.At(c.x+(rng.Float64()-0.5)*40, h/2, c.z+(rng.Float64()-0.5)*40)
			sc.Add(block)
		}
	}
}

// around returns n points evenly spaced on a horizontal circle.
func around(n int, r, y, phase float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for i := range out {
		a := float64(i)/float64(n)*2*math.Pi + phase
		out[i] = mgl64.Vec3{math.Cos(a) * r, y, math.Sin(a) * r}
	}
	return out
}
