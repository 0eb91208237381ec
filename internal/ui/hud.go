package ui

import (
	"fmt"
	"image/color"
	"landmark-flight/internal/game/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var bannerColor = color.RGBA{185, 28, 28, 220}

var legend = []string{
	"W/S  pitch",
	"A/D  turn",
	"Q/E  roll",
	"Shift/Ctrl  throttle",
}

// HUD is the in-flight overlay with the two run buttons on top.
type HUD struct {
	Choose  *Button
	Restart *Button
}

func NewHUD(width, height int) *HUD {
	h := &HUD{
		Choose:  NewButton("Choose aircraft", 0, 0, 140, 26, false),
		Restart: NewButton("Restart route", 0, 0, 120, 26, true),
	}
	h.Layout(width, height)
	return h
}

func (h *HUD) Layout(width, _ int) {
	h.Restart.X, h.Restart.Y = width-h.Restart.Width-12, 64
	h.Choose.X, h.Choose.Y = h.Restart.X-h.Choose.Width-8, 64
}

// Update returns the action of a clicked run button.
func (h *HUD) Update(p Pointer) Action {
	switch {
	case h.Restart.Update(p):
		return ActionRestart
	case h.Choose.Update(p):
		return ActionChoose
	}
	return ActionNone
}

// Lines returns the text of the HUD corners: target, timer and flight data.
// done swaps the target for the completion line.
func Lines(hud simulation.HUD, elapsed float64, done bool) (target, timer, data []string) {
	target = []string{"Target landmark", TargetLabel(hud.CheckpointIndex)}
	if done {
		target[1] = CompleteLabel
	}
	timer = []string{"Time", FormatTime(elapsed)}
	data = []string{
		fmt.Sprintf("Speed: %.0f km/h", hud.Speed),
		fmt.Sprintf("Altitude: %.0f m", hud.Altitude),
	}
	return target, timer, data
}

// EventLines formats the last n log entries as "[mm:ss] text".
func EventLines(msgs []simulation.Message, n int) []string {
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, fmt.Sprintf("[%s] %s", FormatTime(m.Elapsed), m.Text))
	}
	return out
}

// Draw renders the overlay. elapsed is the value the timer shows, the final
// time once a run has finished, and done marks that run as complete. events
// are drawn under the aircraft name.
func (h *HUD) Draw(screen *ebiten.Image, vehicle string, hud simulation.HUD, elapsed float64, done bool, events []string) {
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	target, timer, data := Lines(hud, elapsed, done)

	panel(screen, 12, 12, target...)
	panel(screen, w-textWidth("Time  ")-28, 12, timer...)
	panel(screen, 12, ht-len(data)*16-24, data...)
	panel(screen, w-textWidth(legend[3])-28, ht-len(legend)*16-24, legend...)

	ebitenutil.DebugPrintAt(screen, "Aircraft: "+vehicle, 12, 64)
	if len(events) > 0 {
		panel(screen, 12, 88, events...)
	}
	h.Choose.Draw(screen)
	h.Restart.Draw(screen)
}

// DrawBanner shows an error message on a red strip.
func DrawBanner(screen *ebiten.Image, msg string, x, y int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(textWidth(msg)+16), 24, bannerColor, false)
	ebitenutil.DebugPrintAt(screen, msg, x+8, y+4)
}
