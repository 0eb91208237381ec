package types

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVehicleKind(t *testing.T) {
	tests := []struct {
		in   string
		want VehicleKind
		ok   bool
	}{
		{"jetliner", Jetliner, true},
		{" Fighter ", Fighter, true},
		{"BIPLANE", Biplane, true},
		{"helicopter", Helicopter, true},
		{"zeppelin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVehicleKind(tt.in)
			if !tt.ok {
				require.ErrorIs(t, err, ErrUnknownVehicle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVehicleKindsAreValid(t *testing.T) {
	for _, k := range VehicleKinds {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, VehicleKind("glider").Valid())
}

func TestBoxClamp(t *testing.T) {
	b := NewBox(mgl64.Vec3{-10, 0, -10}, mgl64.Vec3{10, 5, 10})

	assert.Equal(t, mgl64.Vec3{10, 0, -3}, b.Clamp(mgl64.Vec3{99, -4, -3}))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.Clamp(mgl64.Vec3{1, 2, 3}))
	assert.True(t, b.Contains(b.Clamp(mgl64.Vec3{-1e9, 1e9, 1e9})))
	assert.False(t, b.Contains(mgl64.Vec3{0, 6, 0}))
	assert.Equal(t, mgl64.Vec3{0, 2.5, 0}, b.Center())
}
