package flightplan

import (
	"landmark-flight/internal/scene"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoute(t *testing.T) (*scene.Scene, *Route) {
	t.Helper()
	sc := scene.New()
	return sc, Build(sc, rand.New(rand.NewSource(42)))
}

func TestBuildKeepsDesignedOrder(t *testing.T) {
	_, r := newRoute(t)
	require.Equal(t, 7, r.Len())

	names := []string{
		"Gate of the Orient", "Jinji Lake", "Beisi Pagoda", "Suzhou Museum",
		"Tiger Hill Pagoda", "Baodai Bridge", "Vitality Island",
	}
	for i, cp := range r.Checkpoints() {
		assert.Equal(t, i, cp.Index)
		assert.Equal(t, names[i], cp.Name)
		assert.Equal(t, waypoints[i].radius+2, cp.Radius)
		assert.Equal(t, cp.Center, cp.Marker.WorldPosition())
		assert.GreaterOrEqual(t, cp.Phase, 0.0)
		assert.Less(t, cp.Phase, 2*math.Pi)
	}
	assert.Equal(t, "Xiangcheng", r.At(6).District)
}

func TestCheckpointsReturnsCopy(t *testing.T) {
	_, r := newRoute(t)
	cps := r.Checkpoints()
	cps[0], cps[1] = cps[1], cps[0]
	assert.Equal(t, 0, r.At(0).Index)
}

func TestActive(t *testing.T) {
	_, r := newRoute(t)

	cp, ok := r.Active(0)
	require.True(t, ok)
	assert.Equal(t, 0, cp.Index)

	cp, ok = r.Active(6)
	require.True(t, ok)
	assert.Equal(t, 6, cp.Index)

	_, ok = r.Active(7)
	assert.False(t, ok)
	_, ok = r.Active(-1)
	assert.False(t, ok)
}

func TestContainsUsesStrictRadius(t *testing.T) {
	_, r := newRoute(t)
	cp := r.At(0)
	assert.True(t, cp.Contains(cp.Center))
	assert.True(t, cp.Contains(cp.Center.Add(mgl64.Vec3{cp.Radius - 0.01, 0, 0})))
	assert.False(t, cp.Contains(cp.Center.Add(mgl64.Vec3{0, cp.Radius, 0})))
}

func TestRestyle(t *testing.T) {
	_, r := newRoute(t)
	r.Restyle(2, math.Pi/2)

	assert.Equal(t, Captured, r.At(0).CurrentStyle())
	assert.Equal(t, Captured, r.At(1).CurrentStyle())
	assert.Equal(t, Active, r.At(2).CurrentStyle())
	assert.Equal(t, Idle, r.At(3).CurrentStyle())

	assert.Equal(t, CapturedColor, r.At(0).RingMaterial().Color)
	assert.Equal(t, 0.5, r.At(0).RingMaterial().EmissiveIntensity)
	assert.Equal(t, 0.7, r.At(2).RingMaterial().EmissiveIntensity)
	assert.Equal(t, 0.3, r.At(3).RingMaterial().EmissiveIntensity)

	ring := r.At(2).Marker.Children()[0]
	assert.InDelta(t, 1.08, ring.Scale.X(), 1e-9)
}

func TestBuildAddsGuidePath(t *testing.T) {
	sc, r := newRoute(t)
	require.NotNil(t, r.Path)
	assert.Same(t, sc.Root, r.Path.Parent())

	path := r.Path.Children()[0]
	assert.True(t, path.Material.Dashed)
	require.Len(t, path.Geometry.Points, pathSamples+1)
	assert.Equal(t, r.At(0).Center, path.Geometry.Points[0])
	assert.InDelta(t, 0, path.Geometry.Points[pathSamples].Sub(r.At(6).Center).Len(), 1e-9)
}

func TestNamesMatchBuiltRoute(t *testing.T) {
	_, r := newRoute(t)
	names := Names()
	require.Len(t, names, r.Len())
	for i, cp := range r.Checkpoints() {
		assert.Equal(t, cp.ID, names[i])
	}
	assert.Equal(t, "Xiangcheng / Vitality Island", names[6])
}

func TestCapturedRingDropsPulseScale(t *testing.T) {
	_, r := newRoute(t)
	cp := r.At(0)
	ring := cp.Marker.Children()[0]

	cp.Style(Active, math.Pi/2)
	require.InDelta(t, 1.08, ring.Scale.X(), 1e-9)

	cp.Style(Captured, math.Pi/2)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, ring.Scale)
}
