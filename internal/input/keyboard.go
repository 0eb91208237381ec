package input

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBindings maps keys to controls. Pulling back on the stick (S or
// the down arrow) raises the nose.
var DefaultBindings = map[ebiten.Key]Control{
	ebiten.KeyW:            PitchDown,
	ebiten.KeyArrowUp:      PitchDown,
	ebiten.KeyS:            PitchUp,
	ebiten.KeyArrowDown:    PitchUp,
	ebiten.KeyA:            YawLeft,
	ebiten.KeyArrowLeft:    YawLeft,
	ebiten.KeyD:            YawRight,
	ebiten.KeyArrowRight:   YawRight,
	ebiten.KeyQ:            RollLeft,
	ebiten.KeyE:            RollRight,
	ebiten.KeyShiftLeft:    Accelerate,
	ebiten.KeyShiftRight:   Accelerate,
	ebiten.KeyControlLeft:  Decelerate,
	ebiten.KeyControlRight: Decelerate,
}

// Keyboard polls ebiten key state once per update and publishes it to the
// attached set. Polling while detached is a no-op.
type Keyboard struct {
	mu       sync.Mutex
	bindings map[ebiten.Key]Control
	target   *Held
	pressed  func(ebiten.Key) bool
}

func NewKeyboard(bindings map[ebiten.Key]Control) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings, pressed: ebiten.IsKeyPressed}
}

func (k *Keyboard) Attach(h *Held) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.target = h
}

func (k *Keyboard) Detach() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.target != nil {
		k.target.Clear()
	}
	k.target = nil
}

func (k *Keyboard) Attached() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.target != nil
}

// Poll reads the keyboard and stores the resulting set in one write.
func (k *Keyboard) Poll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.target == nil {
		return
	}
	var s Set
	for key, c := range k.bindings {
		if k.pressed(key) {
			s = s.With(c)
		}
	}
	k.target.Store(s)
}
