package main

import (
	"fmt"
	"image/color"
	"landmark-flight/internal/config"
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/internal/game/session"
	"landmark-flight/internal/input"
	"landmark-flight/internal/logging"
	"landmark-flight/internal/render"
	"landmark-flight/internal/telemetry"
	"landmark-flight/internal/ui"
	"landmark-flight/pkg/types"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

var backdrop = color.RGBA{158, 216, 255, 255}

const eventLines = 3

var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

type Game struct {
	width, height int
	ctl           *session.Controller
	keyboard      *input.Keyboard

	menu     *ui.Menu
	hud      *ui.HUD
	finished *ui.Finished

	// startWith is flown as soon as the first frame runs.
	startWith  types.VehicleKind
	primitives int
}

func NewGame(cfg *config.Config, metrics session.Metrics) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	kb := input.NewKeyboard(nil)
	return &Game{
		width:    w,
		height:   h,
		keyboard: kb,
		ctl: session.NewController(session.ControllerConfig{
			Params:     cfg.Params(),
			Width:      w,
			Height:     h,
			Seed:       cfg.World.Seed,
			NewSurface: render.Factory,
			Input:      kb,
			Metrics:    metrics,
		}),
		menu:     ui.NewMenu(w, h),
		hud:      ui.NewHUD(w, h),
		finished: ui.NewFinished(w, h),
	}
}

func (g *Game) Update() error {
	g.keyboard.Poll()
	p := ui.ReadPointer()

	if g.startWith != "" {
		if err := g.ctl.Select(g.startWith); err != nil {
			log.Errorf("start %s: %v", g.startWith, err)
		}
		g.startWith = ""
	}

	switch g.ctl.Status() {
	case session.Selecting:
		digit := 0
		for i, k := range digitKeys {
			if inpututil.IsKeyJustPressed(k) {
				digit = i + 1
			}
		}
		if kind, ok := g.menu.Update(p, digit); ok {
			// Failure leaves the menu up with the error banner.
			_ = g.ctl.Select(kind)
		}

	case session.Running:
		g.handleRunKeys()
		g.apply(g.hud.Update(p))
		g.ctl.Tick(time.Now())

	case session.Finished:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.apply(ui.ActionRestart)
			break
		}
		g.apply(g.finished.Update(p))
	}
	return nil
}

func (g *Game) apply(a ui.Action) {
	switch a {
	case ui.ActionRestart:
		if err := g.ctl.Restart(); err != nil {
			log.Errorf("restart: %v", err)
		}
	case ui.ActionChoose:
		g.ctl.ReturnToMenu()
	}
}

func (g *Game) handleRunKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.apply(ui.ActionChoose)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.apply(ui.ActionRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		// Debug: jump into the active ring.
		h := g.ctl.Handle()
		if h == nil {
			return
		}
		if cp, ok := h.Route().Active(h.Loop().State().Index); ok {
			log.Debugf("teleport to %s", cp.ID)
			h.Loop().Teleport(cp.Center)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	switch g.ctl.Status() {
	case session.Selecting:
		g.menu.Draw(screen, g.ctl.Best, g.ctl.ErrMessage())

	case session.Running:
		g.ctl.Render()
		var events []string
		if h := g.ctl.Handle(); h != nil {
			if s, ok := h.Surface().(*render.Surface); ok && s.Image() != nil {
				screen.DrawImage(s.Image(), nil)
				g.primitives = s.Items()
			}
			events = ui.EventLines(h.Loop().Messages(), eventLines)
		}
		hud := g.ctl.HUD()
		g.hud.Draw(screen, g.vehicleName(), hud, hud.ElapsedSeconds, false, events)

	case session.Finished:
		result := g.ctl.Result()
		g.hud.Draw(screen, g.vehicleName(), g.ctl.HUD(), result.ElapsedSeconds, true, nil)
		best, _ := g.ctl.Best(g.ctl.Vehicle())
		g.finished.Draw(screen, result.ElapsedSeconds, best)
	}

	ebitenutil.DebugPrintAt(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64)+
		"  prims: "+strconv.Itoa(g.primitives), g.width/2-80, 12)
}

func (g *Game) vehicleName() string {
	kind := g.ctl.Vehicle()
	if o, ok := aircraft.OptionFor(kind); ok {
		return o.Name
	}
	return string(kind)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctl.Resize(g.width, g.height)
		g.menu.Layout(g.width, g.height)
		g.hud.Layout(g.width, g.height)
		g.finished.Layout(g.width, g.height)
	}
	return g.width, g.height
}

func main() {
	configDir := pflag.String("config", ".", "directory holding "+config.FileName)
	vehicle := pflag.String("vehicle", "", "start straight away with this aircraft")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("%v, using info", err)
	}
	logging.SetLevel(lvl)

	var metrics session.Metrics
	if cfg.Telemetry.Enabled {
		rec, err := telemetry.New()
		if err != nil {
			log.Fatal(fmt.Errorf("telemetry: %w", err))
		}
		metrics = rec
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(cfg, metrics)

	if *vehicle != "" {
		kind, err := types.ParseVehicleKind(*vehicle)
		if err != nil {
			log.Fatal(err)
		}
		game.startWith = kind
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.ctl.ReturnToMenu()
}
