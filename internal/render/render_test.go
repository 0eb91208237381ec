package render

import (
	"image/color"
	"landmark-flight/internal/scene"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCamera() *scene.Camera {
	return scene.NewPerspectiveCamera(60, 4.0/3, 0.1, 1000)
}

func kinds(items []Item) map[ItemKind]int {
	out := map[ItemKind]int{}
	for _, it := range items {
		out[it.Kind]++
	}
	return out
}

func TestProjectPrimitives(t *testing.T) {
	white := scene.NewMaterial(scene.Hex(0xffffff))

	tests := []struct {
		name string
		node *scene.Node
		want map[ItemKind]int
	}{
		{"box in front", scene.NewMesh("box", scene.NewBox(2, 2, 2), white).At(0, 0, 20), map[ItemKind]int{LineItem: 12}},
		{"box behind", scene.NewMesh("box", scene.NewBox(2, 2, 2), white).At(0, 0, -20), map[ItemKind]int{}},
		{"box past far plane", scene.NewMesh("box", scene.NewBox(2, 2, 2), white).At(0, 0, 2000), map[ItemKind]int{}},
		{"sphere", scene.NewMesh("ball", scene.NewSphere(1, 8), white).At(0, 0, 10), map[ItemKind]int{DiscItem: 1}},
		{"label", scene.NewLabel("tag", "Pagoda", white).At(0, 3, 30), map[ItemKind]int{LabelItem: 1}},
		{"group", scene.NewGroup("empty").At(0, 0, 10), map[ItemKind]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := scene.New()
			sc.Add(tt.node)
			assert.Equal(t, tt.want, kinds(Project(sc, newCamera(), 800, 600)))
		})
	}
}

func TestProjectSkipsHiddenSubtrees(t *testing.T) {
	sc := scene.New()
	parent := scene.NewGroup("hidden")
	parent.Visible = false
	parent.Add(scene.NewMesh("box", scene.NewBox(2, 2, 2), scene.NewMaterial(scene.Hex(0xff0000))).At(0, 0, 20))
	sc.Add(parent)

	assert.Empty(t, Project(sc, newCamera(), 800, 600))
}

func TestProjectSkipsReleasedResources(t *testing.T) {
	sc := scene.New()
	geo := scene.NewBox(2, 2, 2)
	sc.Add(scene.NewMesh("box", geo, scene.NewMaterial(scene.Hex(0xff0000))).At(0, 0, 20))
	require.NotEmpty(t, Project(sc, newCamera(), 800, 600))

	require.NoError(t, geo.Dispose())
	assert.Empty(t, Project(sc, newCamera(), 800, 600))
}

func TestProjectSortsFarToNear(t *testing.T) {
	sc := scene.New()
	mat := scene.NewMaterial(scene.Hex(0x00ff00))
	sc.Add(
		scene.NewMesh("near", scene.NewBox(2, 2, 2), mat).At(0, 0, 10),
		scene.NewMesh("far", scene.NewBox(2, 2, 2), mat).At(0, 0, 80),
		scene.NewMesh("ball", scene.NewSphere(1, 8), mat).At(0, 0, 40),
	)

	items := Project(sc, newCamera(), 800, 600)
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Depth, items[i].Depth)
	}
}

func TestProjectDashedLinesSkipAlternateSegments(t *testing.T) {
	sc := scene.New()
	plain := scene.NewBox(2, 2, 2)
	dashed := scene.NewMaterial(scene.Hex(0xffffff))
	dashed.Dashed = true
	sc.Add(scene.NewMesh("box", plain, dashed).At(0, 0, 20))

	assert.Len(t, Project(sc, newCamera(), 800, 600), 8)
}

func TestProjectFadesIntoFog(t *testing.T) {
	sc := scene.New()
	sc.Fog = scene.Fog{Color: scene.Hex(0x0000ff), Near: 10, Far: 100}
	mat := scene.NewMaterial(scene.Hex(0xff0000))
	sc.Add(scene.NewMesh("ball", scene.NewSphere(1, 8), mat).At(0, 0, 500))

	items := Project(sc, scene.NewPerspectiveCamera(60, 1, 0.1, 1000), 600, 600)
	require.Len(t, items, 1)
	assert.Equal(t, uint8(0), items[0].Color.R)
	assert.Equal(t, uint8(255), items[0].Color.B)
}

func TestBlend(t *testing.T) {
	red := color.RGBA{255, 0, 0, 200}
	blue := color.RGBA{0, 0, 255, 255}

	assert.Equal(t, red, Blend(red, blue, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 200}, Blend(red, blue, 1))
	assert.Equal(t, color.RGBA{128, 0, 128, 200}, Blend(red, blue, 0.5))
	assert.Equal(t, red, Blend(red, blue, -3))
}

func TestNewSurfaceRejectsEmptyViewport(t *testing.T) {
	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		s, err := NewSurface(size[0], size[1])
		assert.Nil(t, s)
		assert.ErrorIs(t, err, scene.ErrEnvironmentUnavailable)
	}

	s, err := Factory(0, 0)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, scene.ErrEnvironmentUnavailable)
}
