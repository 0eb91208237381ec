package ui

import (
	"fmt"
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/pkg/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cardGap     = 16
	cardHeight  = 200
	cardTop     = 120
	cardButtonH = 30
)

type Card struct {
	Option aircraft.Option
	X, Y   int
	Width  int
	Height int
	Select *Button
}

// Menu is the vehicle selection screen.
type Menu struct {
	Cards []*Card
}

func NewMenu(width, height int) *Menu {
	m := &Menu{}
	for _, o := range aircraft.Options() {
		m.Cards = append(m.Cards, &Card{Option: o, Select: NewButton("Choose this aircraft", 0, 0, 0, cardButtonH, false)})
	}
	m.Layout(width, height)
	return m
}

// Layout places the cards in one row, or two when the window is narrow.
func (m *Menu) Layout(width, height int) {
	n := len(m.Cards)
	if n == 0 {
		return
	}
	cols := n
	if width < 900 {
		cols = 2
	}
	w := (width - cardGap*(cols+1)) / cols
	for i, c := range m.Cards {
		row, col := i/cols, i%cols
		c.X = cardGap + col*(w+cardGap)
		c.Y = cardTop + row*(cardHeight+cardGap)
		c.Width, c.Height = w, cardHeight
		c.Select.X = c.X + 12
		c.Select.Y = c.Y + c.Height - cardButtonH - 12
		c.Select.Width = w - 24
	}
}

// Update returns the chosen vehicle when a card was clicked or its number
// key pressed this frame.
func (m *Menu) Update(p Pointer, digit int) (types.VehicleKind, bool) {
	for i, c := range m.Cards {
		clicked := c.Select.Update(p)
		inside := p.Clicked && p.X >= c.X && p.X <= c.X+c.Width && p.Y >= c.Y && p.Y <= c.Y+c.Height
		if clicked || inside || digit == i+1 {
			return c.Option.Kind, true
		}
	}
	return "", false
}

// Draw renders the cards. best reports the fastest time per vehicle and
// errMsg, when set, is shown as a banner above the cards.
func (m *Menu) Draw(screen *ebiten.Image, best func(types.VehicleKind) (float64, bool), errMsg string) {
	ebitenutil.DebugPrintAt(screen, "SUZHOU LANDMARK FLIGHT", cardGap, 24)
	ebitenutil.DebugPrintAt(screen, "Fly from the Industrial Park to Xiangcheng through 7 landmark rings.", cardGap, 44)
	ebitenutil.DebugPrintAt(screen, "Pick an aircraft (click a card or press 1-4).", cardGap, 60)

	if errMsg != "" {
		DrawBanner(screen, errMsg, cardGap, 84)
	}

	for i, c := range m.Cards {
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), panelColor, false)
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.Width), 6, c.Option.Accent, false)
		vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), 1, borderColor, false)

		lines := []string{
			fmt.Sprintf("[%d] %s", i+1, c.Option.Name),
			c.Option.Subtitle,
			"",
		}
		lines = append(lines, wrap(c.Option.Description, (c.Width-24)/6)...)
		if best != nil {
			if secs, ok := best(c.Option.Kind); ok {
				lines = append(lines, "", "Best: "+FormatTime(secs))
			}
		}
		for j, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, c.X+12, c.Y+16+j*16)
		}
		c.Select.Draw(screen)
	}
}

// wrap breaks s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	line := ""
	word := ""
	flush := func() {
		switch {
		case word == "":
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
