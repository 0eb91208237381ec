package input

import (
	"strings"
	"sync/atomic"
)

// Control is one flight input. Controls combine as bit flags.
type Control uint32

const (
	PitchUp Control = 1 << iota
	PitchDown
	YawLeft
	YawRight
	RollLeft
	RollRight
	Accelerate
	Decelerate
)

var ControlStringMap = map[Control]string{
	PitchUp:    "PITCH_UP",
	PitchDown:  "PITCH_DOWN",
	YawLeft:    "YAW_LEFT",
	YawRight:   "YAW_RIGHT",
	RollLeft:   "ROLL_LEFT",
	RollRight:  "ROLL_RIGHT",
	Accelerate: "ACCELERATE",
	Decelerate: "DECELERATE",
}

// Controls lists every control in bit order.
var Controls = []Control{PitchUp, PitchDown, YawLeft, YawRight, RollLeft, RollRight, Accelerate, Decelerate}

// Set is an immutable snapshot of held controls.
type Set uint32

func NewSet(cs ...Control) Set {
	var s Set
	for _, c := range cs {
		s |= Set(c)
	}
	return s
}

func (s Set) Has(c Control) bool {
	return s&Set(c) != 0
}

func (s Set) With(c Control) Set {
	return s | Set(c)
}

func (s Set) Without(c Control) Set {
	return s &^ Set(c)
}

func (s Set) Empty() bool {
	return s == 0
}

func (s Set) String() string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	for _, c := range Controls {
		if s.Has(c) {
			parts = append(parts, ControlStringMap[c])
		}
	}
	return strings.Join(parts, "|")
}

// Held is the live set written by an input source and read by the frame
// step. The whole set lives in one word so a reader never sees half of a
// combined update. The zero value is an empty set.
type Held struct {
	bits atomic.Uint32
}

func (h *Held) Press(c Control) {
	h.bits.Or(uint32(c))
}

func (h *Held) Release(c Control) {
	h.bits.And(^uint32(c))
}

// Store replaces the whole set at once.
func (h *Held) Store(s Set) {
	h.bits.Store(uint32(s))
}

func (h *Held) Clear() {
	h.bits.Store(0)
}

func (h *Held) Snapshot() Set {
	return Set(h.bits.Load())
}

// Source feeds a Held set. Attach starts delivering, Detach stops it and
// leaves the set empty.
type Source interface {
	Attach(h *Held)
	Detach()
}
