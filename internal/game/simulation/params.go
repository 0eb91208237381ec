package simulation

import (
	"landmark-flight/internal/game/airspace"
	"landmark-flight/pkg/types"
	"time"
)

type CameraParams struct {
	Height    float64
	Trail     float64
	LookAhead float64
	Smoothing float64 // lerp factor applied once per frame
	Fov       float64
	Near      float64
	Far       float64
}

// Params are the tuning constants shared by every variant.
type Params struct {
	MinSpeed        float64
	MaxSpeed        float64
	Acceleration    float64
	MaxFrameSeconds float64
	RollDamping     float64
	PitchDamping    float64
	Volume          types.Box
	Camera          CameraParams
	HUDInterval     time.Duration
}

func DefaultParams() Params {
	return Params{
		MinSpeed:        28,
		MaxSpeed:        100,
		Acceleration:    26,
		MaxFrameSeconds: 0.045,
		RollDamping:     0.986,
		PitchDamping:    0.996,
		Volume:          airspace.DefaultVolume(),
		Camera: CameraParams{
			Height:    11,
			Trail:     34,
			LookAhead: 28,
			Smoothing: 0.08,
			Fov:       60,
			Near:      0.1,
			Far:       4000,
		},
		HUDInterval: 120 * time.Millisecond,
	}
}

// ClampDt bounds a frame delta to [0, MaxFrameSeconds].
func (p Params) ClampDt(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if dt > p.MaxFrameSeconds {
		return p.MaxFrameSeconds
	}
	return dt
}
