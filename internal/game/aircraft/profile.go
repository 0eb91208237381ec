package aircraft

import (
	"fmt"
	"image/color"
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
)

// Profile holds the handling constants of one variant. Rates are in radians
// per second, speeds in world units per second.
type Profile struct {
	Kind      types.VehicleKind
	BaseSpeed float64
	PitchRate float64
	YawRate   float64
	BankRate  float64 // roll coupled into a yaw input
	RollRate  float64 // explicit roll input
}

// Option is the menu card shown for a variant.
type Option struct {
	Kind        types.VehicleKind
	Name        string
	Subtitle    string
	Description string
	Accent      color.RGBA
}

const (
	bankIntoTurn = 0.7
	explicitRoll = 1.5
)

var profiles = map[types.VehicleKind]Profile{
	types.Jetliner: {
		Kind:      types.Jetliner,
		BaseSpeed: 54,
		PitchRate: 0.92,
		YawRate:   0.88,
		BankRate:  bankIntoTurn,
		RollRate:  explicitRoll,
	},
	types.Fighter: {
		Kind:      types.Fighter,
		BaseSpeed: 62,
		PitchRate: 1.12,
		YawRate:   0.88,
		BankRate:  bankIntoTurn,
		RollRate:  explicitRoll,
	},
	types.Biplane: {
		Kind:      types.Biplane,
		BaseSpeed: 48,
		PitchRate: 0.92,
		YawRate:   0.74,
		BankRate:  bankIntoTurn,
		RollRate:  explicitRoll,
	},
	types.Helicopter: {
		Kind:      types.Helicopter,
		BaseSpeed: 44,
		PitchRate: 0.92,
		YawRate:   1.05,
		BankRate:  bankIntoTurn,
		RollRate:  explicitRoll,
	},
}

var options = []Option{
	{
		Kind:        types.Jetliner,
		Name:        "Cloudwing Airliner",
		Subtitle:    "Steady cruise",
		Description: "Wide body, moderate speed. A gentle first tour of the route.",
		Accent:      scene.Hex(0x3b82f6),
	},
	{
		Kind:        types.Fighter,
		Name:        "Thunder Fighter",
		Subtitle:    "Agile pitch",
		Description: "Swept delta wing and the quickest pitch response.",
		Accent:      scene.Hex(0xf97316),
	},
	{
		Kind:        types.Biplane,
		Name:        "Vintage Biplane",
		Subtitle:    "Sightseeing",
		Description: "Twin wings, slow and steady. Wide turns, good views.",
		Accent:      scene.Hex(0x16a34a),
	},
	{
		Kind:        types.Helicopter,
		Name:        "City Helicopter",
		Subtitle:    "Close look",
		Description: "Slowest cruise but the sharpest turns for tight landmarks.",
		Accent:      scene.Hex(0xef4444),
	},
}

// ProfileFor returns the handling profile of kind. An unknown kind is a
// programming error and panics.
func ProfileFor(kind types.VehicleKind) Profile {
	p, ok := profiles[kind]
	if !ok {
		panic(fmt.Sprintf("aircraft: unknown vehicle kind %q", kind))
	}
	return p
}

// Options returns the selection cards in menu order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

func OptionFor(kind types.VehicleKind) (Option, bool) {
	for _, o := range options {
		if o.Kind == kind {
			return o, true
		}
	}
	return Option{}, false
}
