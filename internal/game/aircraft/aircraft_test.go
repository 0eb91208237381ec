package aircraft

import (
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultPose(t *testing.T) {
	for _, kind := range types.VehicleKinds {
		t.Run(string(kind), func(t *testing.T) {
			ac := New(kind)
			assert.Equal(t, kind, ac.Kind)
			assert.Equal(t, SpawnPoint, ac.Position)
			assert.Equal(t, ProfileFor(kind).BaseSpeed, ac.Speed)
			assert.InDelta(t, 1, ac.Heading().Z(), 1e-9)
			assert.Equal(t, ac.Position, ac.Node.Position)
			assert.Greater(t, ac.Node.Count(), 5)
		})
	}
}

func TestNewReturnsIndependentInstances(t *testing.T) {
	a := New(types.Fighter)
	b := New(types.Fighter)

	sa, sb := scene.New(), scene.New()
	sa.Add(a.Node)
	sb.Add(b.Node)
	ga, ma := sa.Resources()
	gb, mb := sb.Resources()
	require.Equal(t, len(ga), len(gb))
	require.Equal(t, len(ma), len(mb))

	geoms := make(map[*scene.Geometry]struct{}, len(gb))
	for _, g := range gb {
		geoms[g] = struct{}{}
	}
	for _, g := range ga {
		_, shared := geoms[g]
		assert.False(t, shared, "geometry shared between instances")
	}
	mats := make(map[*scene.Material]struct{}, len(mb))
	for _, m := range mb {
		mats[m] = struct{}{}
	}
	for _, m := range ma {
		_, shared := mats[m]
		assert.False(t, shared, "material shared between instances")
	}

	a.Position = mgl64.Vec3{1, 2, 3}
	a.Speed = 99
	assert.Equal(t, SpawnPoint, b.Position)
	assert.Equal(t, 62.0, b.Speed)

	require.Zero(t, sa.Dispose().Failures)
	for _, g := range gb {
		assert.False(t, g.Disposed())
	}
}

func TestNewPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { New(types.VehicleKind("zeppelin")) })
	assert.Panics(t, func() { ProfileFor("") })
}

func TestProfiles(t *testing.T) {
	tests := []struct {
		kind  types.VehicleKind
		speed float64
		pitch float64
		yaw   float64
	}{
		{types.Jetliner, 54, 0.92, 0.88},
		{types.Fighter, 62, 1.12, 0.88},
		{types.Biplane, 48, 0.92, 0.74},
		{types.Helicopter, 44, 0.92, 1.05},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := ProfileFor(tt.kind)
			assert.Equal(t, tt.speed, p.BaseSpeed)
			assert.Equal(t, tt.pitch, p.PitchRate)
			assert.Equal(t, tt.yaw, p.YawRate)
		})
	}
}

func TestSpinAnimatesRotors(t *testing.T) {
	ac := New(types.Helicopter)
	require.Equal(t, 2, ac.Spinners())

	rotor := ac.spinners[0].node
	before := rotor.Rotation
	ac.Spin(0.1)
	assert.NotEqual(t, before, rotor.Rotation)

	assert.Zero(t, New(types.Fighter).Spinners())
}

func TestOptionsCoverEveryKind(t *testing.T) {
	opts := Options()
	require.Len(t, opts, len(types.VehicleKinds))
	for i, kind := range types.VehicleKinds {
		assert.Equal(t, kind, opts[i].Kind)
		o, ok := OptionFor(kind)
		assert.True(t, ok)
		assert.NotEmpty(t, o.Name)
	}
	_, ok := OptionFor("zeppelin")
	assert.False(t, ok)
}
