package simulation

import (
	"fmt"
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/internal/game/flightplan"
	"landmark-flight/internal/input"
	"landmark-flight/internal/logging"
	"landmark-flight/internal/scene"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

var logger = logging.New("simulation")

// HUD is the throttled view of a run handed to the UI by value.
type HUD struct {
	Speed           float64
	Altitude        float64
	CheckpointIndex int
	ElapsedSeconds  float64
}

type Result struct {
	ElapsedSeconds float64
}

type Config struct {
	Params  Params
	Vehicle *aircraft.Aircraft
	Route   *flightplan.Route
	Camera  *scene.Camera
	Held    *input.Held

	// Clock drives frame deltas and the HUD throttle. Defaults to time.Now.
	Clock     func() time.Time
	OnHUD     func(HUD)
	OnCapture func(checkpoint int)
	OnFinish  func(Result)
}

// Loop advances one run frame by frame. It is not safe for concurrent use;
// only the held-controls set may be written from elsewhere.
type Loop struct {
	params  Params
	env     Env
	state   RunState
	vehicle *aircraft.Aircraft
	route   *flightplan.Route
	camera  *scene.Camera
	rig     Rig
	held    *input.Held

	clock     func() time.Time
	lastTick  time.Time
	lastHUD   time.Time
	hud       HUD
	onHUD     func(HUD)
	onCapture func(int)
	onFinish  func(Result)

	frames      int
	stopped     bool
	finished    bool
	messages    []Message
	maxMessages int
}

func NewLoop(cfg Config) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Held == nil {
		cfg.Held = &input.Held{}
	}

	l := &Loop{
		params: cfg.Params,
		env: Env{
			Profile: cfg.Vehicle.Profile,
			Params:  cfg.Params,
			Route:   cfg.Route,
		},
		state:       NewRunState(cfg.Vehicle, cfg.Route),
		vehicle:     cfg.Vehicle,
		route:       cfg.Route,
		camera:      cfg.Camera,
		rig:         Rig{cfg.Params.Camera},
		held:        cfg.Held,
		clock:       cfg.Clock,
		onHUD:       cfg.OnHUD,
		onCapture:   cfg.OnCapture,
		onFinish:    cfg.OnFinish,
		maxMessages: 50,
	}

	now := l.clock()
	l.lastTick = now
	l.rig.Place(l.camera, l.state.Position)
	l.route.Restyle(l.state.Index, l.state.Pulse)
	l.addMessage(RunStarted, fmt.Sprintf("%s cleared for departure", l.vehicle.Kind))
	l.publishHUD(now)
	return l
}

// Tick runs one frame using the wall-clock time since the previous tick.
func (l *Loop) Tick(now time.Time) {
	if l.stopped {
		return
	}
	dt := now.Sub(l.lastTick).Seconds()
	l.lastTick = now
	l.Frame(dt)
}

// Frame runs one frame of dt seconds. It does nothing once the loop is
// stopped or the run is finished.
func (l *Loop) Frame(dt float64) {
	if l.stopped || l.finished {
		return
	}
	dt = l.params.ClampDt(dt)

	var out Outcome
	l.state, out = Step(l.state, l.held.Snapshot(), dt, l.env)
	l.frames++

	l.vehicle.Position = l.state.Position
	l.vehicle.Orientation = l.state.Orientation
	l.vehicle.Speed = l.state.Speed
	l.vehicle.SyncNode()
	l.vehicle.Spin(dt)

	l.rig.Follow(l.camera, l.state.Position, l.vehicle.Heading())
	l.route.Restyle(l.state.Index, l.state.Pulse)

	now := l.clock()
	switch {
	case out.Captured:
		cp := l.route.At(out.Checkpoint)
		logger.Infof("checkpoint %d/%d captured: %s at %.2fs", cp.Index+1, l.route.Len(), cp.Name, l.state.Elapsed)
		l.addMessage(CheckpointCaptured, fmt.Sprintf("%s passed", cp.Name))
		l.publishHUD(now)
		if l.onCapture != nil {
			l.onCapture(cp.Index)
		}
	case now.Sub(l.lastHUD) > l.params.HUDInterval:
		l.publishHUD(now)
	}

	if out.Finished {
		l.finished = true
		logger.Infof("route complete in %.2fs over %d frames", l.state.Elapsed, l.frames)
		l.addMessage(RunFinished, "all landmarks passed")
		if l.onFinish != nil {
			l.onFinish(Result{ElapsedSeconds: l.state.Elapsed})
		}
	}
}

func (l *Loop) publishHUD(now time.Time) {
	l.lastHUD = now
	l.hud = HUD{
		Speed:           l.state.Speed,
		Altitude:        l.state.Position.Y(),
		CheckpointIndex: l.state.Index,
		ElapsedSeconds:  l.state.Elapsed,
	}
	if l.onHUD != nil {
		l.onHUD(l.hud)
	}
}

// Stop halts the loop. After it returns no frame mutates anything.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	logger.Debugf("loop stopped after %d frames", l.frames)
}

func (l *Loop) Stopped() bool {
	return l.stopped
}

func (l *Loop) Finished() bool {
	return l.finished
}

// Teleport moves the aircraft, clamped to the flight volume. The capture test
// runs on the next frame.
func (l *Loop) Teleport(pos mgl64.Vec3) {
	l.state.Position = l.params.Volume.Clamp(pos)
	l.vehicle.Position = l.state.Position
	l.vehicle.SyncNode()
}

// State returns a copy of the run state.
func (l *Loop) State() RunState {
	return l.state
}

// HUD returns the last published snapshot.
func (l *Loop) HUD() HUD {
	return l.hud
}

func (l *Loop) Frames() int {
	return l.frames
}
