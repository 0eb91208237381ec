package session

import (
	"errors"
	"fmt"
	"landmark-flight/internal/game/simulation"
	"landmark-flight/internal/input"
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
	"time"
)

type Status int

const (
	Selecting Status = iota
	Running
	Finished
)

var StatusStringMap = map[Status]string{
	Selecting: "SELECTING",
	Running:   "RUNNING",
	Finished:  "FINISHED",
}

func (s Status) String() string {
	return StatusStringMap[s]
}

var ErrNoVehicle = errors.New("no vehicle selected")

// Metrics receives run lifecycle events.
type Metrics interface {
	RunStarted(kind types.VehicleKind)
	RunFinished(kind types.VehicleKind, seconds float64)
	RunAbandoned(kind types.VehicleKind, checkpoint int)
	CheckpointCaptured(kind types.VehicleKind, checkpoint int)
	DisposeFailures(n int)
}

type nopMetrics struct{}

func (nopMetrics) RunStarted(types.VehicleKind)              {}
func (nopMetrics) RunFinished(types.VehicleKind, float64)    {}
func (nopMetrics) RunAbandoned(types.VehicleKind, int)       {}
func (nopMetrics) CheckpointCaptured(types.VehicleKind, int) {}
func (nopMetrics) DisposeFailures(int)                       {}

type ControllerConfig struct {
	Params     simulation.Params
	Width      int
	Height     int
	Seed       int64
	NewSurface scene.SurfaceFactory
	Input      input.Source
	Clock      func() time.Time
	Metrics    Metrics
}

// Controller runs the selecting, running and finished states. Every path
// out of running goes through Handle.Stop before anything new is built.
type Controller struct {
	cfg ControllerConfig

	status Status
	kind   types.VehicleKind
	handle *Handle

	hud     simulation.HUD
	result  simulation.Result
	done    *simulation.Result
	err     error
	best    map[types.VehicleKind]float64
	reports []scene.Report
}

func NewController(cfg ControllerConfig) *Controller {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &Controller{
		cfg:    cfg,
		status: Selecting,
		best:   make(map[types.VehicleKind]float64),
	}
}

// Select tears down whatever is active and starts a run with kind. On
// failure the controller stays in selecting and Err reports why.
func (c *Controller) Select(kind types.VehicleKind) error {
	c.leave()
	c.kind = kind
	return c.start()
}

// Restart flies the current vehicle again from the start.
func (c *Controller) Restart() error {
	if c.kind == "" {
		return ErrNoVehicle
	}
	c.leave()
	return c.start()
}

// ReturnToMenu abandons any run and goes back to selecting.
func (c *Controller) ReturnToMenu() {
	c.leave()
	c.err = nil
}

func (c *Controller) start() error {
	c.err = nil
	c.done = nil
	c.result = simulation.Result{}
	kind := c.kind

	h, err := Start(RunConfig{
		Vehicle:    kind,
		Params:     c.cfg.Params,
		Width:      c.cfg.Width,
		Height:     c.cfg.Height,
		Seed:       c.cfg.Seed,
		NewSurface: c.cfg.NewSurface,
		Input:      c.cfg.Input,
		Clock:      c.cfg.Clock,
		OnHUD:      func(hud simulation.HUD) { c.hud = hud },
		OnCapture:  func(cp int) { c.cfg.Metrics.CheckpointCaptured(kind, cp) },
		OnFinish: func(r simulation.Result) {
			c.done = &r
		},
	})
	if err != nil {
		logger.Errorf("cannot start %s run: %v", kind, err)
		c.status = Selecting
		c.err = err
		return err
	}

	c.handle = h
	c.hud = h.Loop().HUD()
	c.status = Running
	c.cfg.Metrics.RunStarted(kind)
	logger.Infof("status %s -> %s (%s)", Selecting, Running, kind)
	return nil
}

// leave stops the active run, if any, and settles in selecting.
func (c *Controller) leave() {
	if c.status == Running && c.handle != nil {
		c.cfg.Metrics.RunAbandoned(c.kind, c.handle.Loop().State().Index)
		logger.Infof("run abandoned at checkpoint %d", c.handle.Loop().State().Index)
	}
	c.release()
	if c.status != Selecting {
		logger.Infof("status %s -> %s", c.status, Selecting)
	}
	c.status = Selecting
}

func (c *Controller) release() {
	if c.handle == nil {
		return
	}
	r := c.handle.Stop()
	c.reports = append(c.reports, r)
	c.cfg.Metrics.DisposeFailures(r.Failures)
	c.handle = nil
}

// Tick advances the active run to now. A run that completes during the
// tick is stopped and released before Tick returns.
func (c *Controller) Tick(now time.Time) {
	if c.status != Running || c.handle == nil {
		return
	}
	c.handle.Frame(now)
	if c.done == nil {
		return
	}

	c.result = *c.done
	c.done = nil
	secs := c.result.ElapsedSeconds
	if prev, ok := c.best[c.kind]; !ok || secs < prev {
		c.best[c.kind] = secs
	}
	c.cfg.Metrics.RunFinished(c.kind, secs)
	c.release()
	c.status = Finished
	logger.Infof("status %s -> %s (%s in %.2fs)", Running, Finished, c.kind, secs)
}

// Render draws the active run, if any.
func (c *Controller) Render() {
	if c.handle != nil {
		c.handle.Render()
	}
}

func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.cfg.Width, c.cfg.Height = width, height
	if c.handle != nil {
		c.handle.Resize(width, height)
	}
}

func (c *Controller) Status() Status {
	return c.status
}

func (c *Controller) Vehicle() types.VehicleKind {
	return c.kind
}

// HUD returns the last published snapshot of the current or last run.
func (c *Controller) HUD() simulation.HUD {
	return c.hud
}

// Result is the outcome of the last finished run.
func (c *Controller) Result() simulation.Result {
	return c.result
}

// Err is the reason the last start failed, nil otherwise.
func (c *Controller) Err() error {
	return c.err
}

// ErrMessage is the user-facing form of Err.
func (c *Controller) ErrMessage() string {
	if c.err == nil {
		return ""
	}
	if errors.Is(c.err, scene.ErrEnvironmentUnavailable) {
		return "3D view unavailable on this display. Try resizing the window or choose again."
	}
	return fmt.Sprintf("Could not start the flight: %v", c.err)
}

// Best returns the fastest completed time for kind in this process.
func (c *Controller) Best(kind types.VehicleKind) (float64, bool) {
	v, ok := c.best[kind]
	return v, ok
}

// Handle returns the active run, nil outside running.
func (c *Controller) Handle() *Handle {
	return c.handle
}

// Reports returns the release reports of every run so far.
func (c *Controller) Reports() []scene.Report {
	out := make([]scene.Report, len(c.reports))
	copy(out, c.reports)
	return out
}
