package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnknownVehicle = errors.New("unknown vehicle")

type VehicleKind string

const (
	Jetliner   VehicleKind = "jetliner"
	Fighter    VehicleKind = "fighter"
	Biplane    VehicleKind = "biplane"
	Helicopter VehicleKind = "helicopter"
)

// VehicleKinds lists every variant in menu order.
var VehicleKinds = []VehicleKind{Jetliner, Fighter, Biplane, Helicopter}

func (k VehicleKind) Valid() bool {
	switch k {
	case Jetliner, Fighter, Biplane, Helicopter:
		return true
	}
	return false
}

func ParseVehicleKind(s string) (VehicleKind, error) {
	k := VehicleKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVehicle, s)
	}
	return k, nil
}

// Box is an axis-aligned volume. Min must be component-wise <= Max.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func NewBox(min, max mgl64.Vec3) Box {
	return Box{Min: min, Max: max}
}

func (b Box) Clamp(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl64.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		mgl64.Clamp(p.Z(), b.Min.Z(), b.Max.Z()),
	}
}

func (b Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
