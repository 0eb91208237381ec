package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionChoose
)

var ActionStringMap = map[Action]string{
	ActionNone:    "NONE",
	ActionRestart: "RESTART",
	ActionChoose:  "CHOOSE",
}

var shadeColor = color.RGBA{2, 6, 23, 166}

const (
	overlayWidth  = 360
	overlayHeight = 170
)

// Finished is the route-complete dialog.
type Finished struct {
	X, Y   int
	Again  *Button
	Choose *Button
}

func NewFinished(width, height int) *Finished {
	f := &Finished{
		Again:  NewButton("Fly again", 0, 0, 160, 32, true),
		Choose: NewButton("Choose another aircraft", 0, 0, 160, 32, false),
	}
	f.Layout(width, height)
	return f
}

func (f *Finished) Layout(width, height int) {
	f.X = (width - overlayWidth) / 2
	f.Y = (height - overlayHeight) / 2
	f.Again.X, f.Again.Y = f.X+14, f.Y+overlayHeight-46
	f.Choose.X, f.Choose.Y = f.X+overlayWidth-14-f.Choose.Width, f.Y+overlayHeight-46
}

func (f *Finished) Update(p Pointer) Action {
	switch {
	case f.Again.Update(p):
		return ActionRestart
	case f.Choose.Update(p):
		return ActionChoose
	}
	return ActionNone
}

func (f *Finished) Draw(screen *ebiten.Image, elapsed float64, best float64) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shadeColor, false)
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), overlayWidth, overlayHeight, color.RGBA{15, 23, 42, 245}, false)

	ebitenutil.DebugPrintAt(screen, "MISSION COMPLETE", f.X+14, f.Y+14)
	ebitenutil.DebugPrintAt(screen, "All of Suzhou crossed!", f.X+14, f.Y+36)
	ebitenutil.DebugPrintAt(screen, "Time: "+FormatTime(elapsed), f.X+14, f.Y+62)
	ebitenutil.DebugPrintAt(screen, "Best: "+FormatTime(best), f.X+14, f.Y+80)

	f.Again.Draw(screen)
	f.Choose.Draw(screen)
}
