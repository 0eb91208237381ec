package session

import (
	"fmt"
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/internal/game/airspace"
	"landmark-flight/internal/game/flightplan"
	"landmark-flight/internal/game/simulation"
	"landmark-flight/internal/input"
	"landmark-flight/internal/logging"
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
	"math/rand"
	"time"
)

var logger = logging.New("session")

// RunConfig is everything one run needs from its host.
type RunConfig struct {
	Vehicle    types.VehicleKind
	Params     simulation.Params
	Width      int
	Height     int
	Seed       int64
	NewSurface scene.SurfaceFactory
	Input      input.Source
	Clock      func() time.Time
	OnHUD      func(simulation.HUD)
	OnFinish   func(simulation.Result)
	OnCapture  func(checkpoint int)
}

// Handle owns every resource of one run. Stop is the only place they are
// released.
type Handle struct {
	kind    types.VehicleKind
	surface scene.Surface
	scene   *scene.Scene
	camera  *scene.Camera
	vehicle *aircraft.Aircraft
	route   *flightplan.Route
	loop    *simulation.Loop
	held    *input.Held
	input   input.Source

	stopped bool
	report  scene.Report
}

// Start builds a run. The surface is allocated first; if that fails nothing
// else is built and the error wraps scene.ErrEnvironmentUnavailable.
func Start(cfg RunConfig) (*Handle, error) {
	if !cfg.Vehicle.Valid() {
		panic(fmt.Sprintf("session: start with invalid vehicle %q", cfg.Vehicle))
	}
	if cfg.NewSurface == nil {
		return nil, fmt.Errorf("starting %s run: no surface factory: %w", cfg.Vehicle, scene.ErrEnvironmentUnavailable)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	surface, err := cfg.NewSurface(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("starting %s run: %w", cfg.Vehicle, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	h := &Handle{
		kind:    cfg.Vehicle,
		surface: surface,
		scene:   scene.New(),
		held:    &input.Held{},
		input:   cfg.Input,
	}

	airspace.Build(h.scene, rng)
	h.route = flightplan.Build(h.scene, rng)
	h.vehicle = aircraft.New(cfg.Vehicle)
	h.scene.Add(h.vehicle.Node)

	cam := cfg.Params.Camera
	h.camera = scene.NewPerspectiveCamera(cam.Fov, 1, cam.Near, cam.Far)
	h.camera.Fit(surface.Size())

	if h.input != nil {
		h.input.Attach(h.held)
	}

	h.loop = simulation.NewLoop(simulation.Config{
		Params:    cfg.Params,
		Vehicle:   h.vehicle,
		Route:     h.route,
		Camera:    h.camera,
		Held:      h.held,
		Clock:     cfg.Clock,
		OnHUD:     cfg.OnHUD,
		OnCapture: cfg.OnCapture,
		OnFinish:  cfg.OnFinish,
	})

	geoms, mats := h.scene.Resources()
	logger.Infof("run started: %s, %d checkpoints, %d geometries, %d materials, seed %d",
		cfg.Vehicle, h.route.Len(), len(geoms), len(mats), seed)
	return h, nil
}

// Frame advances the run to now.
func (h *Handle) Frame(now time.Time) {
	if h.stopped {
		return
	}
	h.loop.Tick(now)
}

// Render draws the current frame onto the surface.
func (h *Handle) Render() {
	if h.stopped {
		return
	}
	h.surface.Render(h.scene, h.camera)
}

// Resize refits the surface and the camera projection.
func (h *Handle) Resize(width, height int) {
	if h.stopped || width <= 0 || height <= 0 {
		return
	}
	h.surface.Resize(width, height)
	h.camera.Fit(width, height)
}

func (h *Handle) Surface() scene.Surface {
	return h.surface
}

func (h *Handle) Loop() *simulation.Loop {
	return h.loop
}

func (h *Handle) Route() *flightplan.Route {
	return h.route
}

func (h *Handle) Camera() *scene.Camera {
	return h.camera
}

func (h *Handle) Vehicle() types.VehicleKind {
	return h.kind
}

func (h *Handle) Stopped() bool {
	return h.stopped
}

// Stop ends the run: no further frames, input detached, every scene resource
// and the surface released. Failures are logged and counted without halting
// the sweep. Later calls return the first report and release nothing.
func (h *Handle) Stop() scene.Report {
	if h.stopped {
		return h.report
	}
	h.stopped = true

	h.loop.Stop()
	if h.input != nil {
		h.input.Detach()
	}
	h.held.Clear()

	r := h.scene.Dispose()
	var sr scene.Report
	if err := h.surface.Dispose(); err != nil {
		logger.Errorf("release surface: %v", err)
		sr.Failures++
		sr.Err = fmt.Errorf("surface: %w", err)
	} else {
		sr.Extra++
	}
	h.report = r.Merge(sr)

	logger.Infof("run stopped: %s, released %d resources, %d failures",
		h.kind, h.report.Released(), h.report.Failures)
	return h.report
}
