package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelColor     = color.RGBA{15, 23, 42, 180}
	primaryColor   = color.RGBA{37, 99, 235, 255}
	secondaryColor = color.RGBA{71, 85, 105, 255}
	hoverColor     = color.RGBA{255, 255, 255, 40}
	borderColor    = color.RGBA{226, 232, 240, 255}
)

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y    int
	Clicked bool
}

func ReadPointer() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{X: x, Y: y, Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)}
}

type Button struct {
	Label   string
	X, Y    int
	Width   int
	Height  int
	Primary bool
	Hover   bool
}

func NewButton(label string, x, y, width, height int, primary bool) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Primary: primary,
	}
}

// Contains reports whether the point is within the button bounds.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Update tracks hover and returns true when the button was clicked this frame.
func (b *Button) Update(p Pointer) bool {
	b.Hover = b.Contains(p.X, p.Y)
	return b.Hover && p.Clicked
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := secondaryColor
	if b.Primary {
		bg = primaryColor
	}
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	if b.Hover {
		vector.DrawFilledRect(screen, x, y, w, h, hoverColor, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	ebitenutil.DebugPrintAt(screen, b.Label, b.X+(b.Width-textWidth(b.Label))/2, b.Y+(b.Height-16)/2)
}

// textWidth is the pixel width of s in the debug font.
func textWidth(s string) int {
	return len([]rune(s)) * 6
}

// panel draws a translucent box with padding for a block of text lines.
func panel(screen *ebiten.Image, x, y int, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w+16), float32(len(lines)*16+12), panelColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+8, y+6+i*16)
	}
}
