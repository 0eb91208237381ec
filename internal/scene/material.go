package scene

import (
	"image/color"
	"math"
)

// Material describes surface appearance. Like Geometry it models a GPU-side
// resource and must be released exactly once.
type Material struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float64
	Opacity           float64
	Dashed            bool

	disposed bool
}

func NewMaterial(c color.RGBA) *Material {
	return &Material{Color: c, Opacity: 1}
}

// NewGlowMaterial returns a material whose emissive colour equals its base colour.
func NewGlowMaterial(c color.RGBA, intensity float64) *Material {
	return &Material{Color: c, Emissive: c, EmissiveIntensity: intensity, Opacity: 1}
}

func (m *Material) WithOpacity(opacity float64) *Material {
	m.Opacity = opacity
	return m
}

func (m *Material) Dispose() error {
	if m.disposed {
		return ErrDisposed
	}
	m.disposed = true
	return nil
}

func (m *Material) Disposed() bool {
	return m.disposed
}

// Hex converts a 0xRRGGBB value into an opaque colour.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Shade returns the colour a material is drawn with under the given ambient
// light level, before fog.
func (m *Material) Shade(ambient float64) color.RGBA {
	ch := func(base, glow uint8) uint8 {
		v := float64(base)*ambient + float64(glow)*m.EmissiveIntensity*0.5
		return uint8(math.Min(255, math.Max(0, v)))
	}
	return color.RGBA{
		R: ch(m.Color.R, m.Emissive.R),
		G: ch(m.Color.G, m.Emissive.G),
		B: ch(m.Color.B, m.Emissive.B),
		A: uint8(math.Min(1, math.Max(0, m.Opacity)) * 255),
	}
}
