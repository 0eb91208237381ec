package simulation

import (
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/internal/game/flightplan"
	"landmark-flight/internal/input"
	"landmark-flight/internal/scene"
	"landmark-flight/pkg/types"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type harness struct {
	loop     *Loop
	route    *flightplan.Route
	vehicle  *aircraft.Aircraft
	camera   *scene.Camera
	held     *input.Held
	clock    *fakeClock
	huds     []HUD
	results  []Result
	hudTimes []time.Time
}

func newHarness(t *testing.T, kind types.VehicleKind) *harness {
	t.Helper()
	sc := scene.New()
	h := &harness{
		route:   flightplan.Build(sc, rand.New(rand.NewSource(1))),
		vehicle: aircraft.New(kind),
		camera:  scene.NewPerspectiveCamera(60, 16.0/9, 0.1, 4000),
		held:    &input.Held{},
		clock:   &fakeClock{now: time.Unix(1700000000, 0)},
	}
	sc.Add(h.vehicle.Node)
	h.loop = NewLoop(Config{
		Params:  DefaultParams(),
		Vehicle: h.vehicle,
		Route:   h.route,
		Camera:  h.camera,
		Held:    h.held,
		Clock:   h.clock.Now,
		OnHUD: func(hud HUD) {
			h.huds = append(h.huds, hud)
			h.hudTimes = append(h.hudTimes, h.clock.now)
		},
		OnFinish: func(r Result) { h.results = append(h.results, r) },
	})
	return h
}

func (h *harness) frame(dt float64) {
	h.clock.Advance(time.Duration(dt * float64(time.Second)))
	h.loop.Frame(dt)
}

func testEnv(kind types.VehicleKind) (Env, RunState) {
	sc := scene.New()
	route := flightplan.Build(sc, rand.New(rand.NewSource(1)))
	ac := aircraft.New(kind)
	return Env{Profile: ac.Profile, Params: DefaultParams(), Route: route}, NewRunState(ac, route)
}

func TestSpeedStaysClamped(t *testing.T) {
	env, st := testEnv(types.Jetliner)
	rng := rand.New(rand.NewSource(11))
	p := env.Params

	for i := 0; i < 5000; i++ {
		var held input.Set
		if rng.Intn(2) == 0 {
			held = held.With(input.Accelerate)
		}
		if rng.Intn(3) == 0 {
			held = held.With(input.Decelerate)
		}
		st, _ = Step(st, held, rng.Float64()*0.2, env)
		require.GreaterOrEqual(t, st.Speed, p.MinSpeed)
		require.LessOrEqual(t, st.Speed, p.MaxSpeed)
	}
}

func TestPositionStaysInsideVolume(t *testing.T) {
	env, st := testEnv(types.Fighter)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 20000; i++ {
		held := input.Set(rng.Uint32() & 0xff)
		st, _ = Step(st, held, rng.Float64()*0.05, env)
		require.True(t, env.Params.Volume.Contains(st.Position), "frame %d: %v", i, st.Position)
	}
}

func TestNoCaptureOutOfOrder(t *testing.T) {
	h := newHarness(t, types.Biplane)
	target := h.route.At(3)

	for i := 0; i < 10; i++ {
		h.loop.Teleport(target.Center)
		h.frame(1.0 / 60)
	}
	assert.Equal(t, 0, h.loop.State().Index)
	assert.Equal(t, flightplan.Idle, target.CurrentStyle())

	for k := 0; k < 3; k++ {
		h.loop.Teleport(h.route.At(k).Center)
		h.frame(1.0 / 60)
		require.Equal(t, k+1, h.loop.State().Index)
	}

	h.loop.Teleport(target.Center)
	h.frame(1.0 / 60)
	assert.Equal(t, 4, h.loop.State().Index)
	assert.Equal(t, flightplan.Captured, target.CurrentStyle())
}

func TestProgressIsMonotonic(t *testing.T) {
	h := newHarness(t, types.Helicopter)
	rng := rand.New(rand.NewSource(9))
	n := h.route.Len()
	last := 0

	for i := 0; i < 3000; i++ {
		if i%50 == 0 {
			k := rng.Intn(n)
			h.loop.Teleport(h.route.At(k).Center)
		}
		h.held.Store(input.Set(rng.Uint32() & 0xff))
		h.frame(rng.Float64() * 0.03)

		idx := h.loop.State().Index
		require.GreaterOrEqual(t, idx, last)
		require.LessOrEqual(t, idx, n)
		last = idx
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	h := newHarness(t, types.Jetliner)
	for _, cp := range h.route.Checkpoints() {
		h.loop.Teleport(cp.Center)
		h.frame(0.02)
	}
	require.True(t, h.loop.Finished())
	require.Len(t, h.results, 1)
	assert.GreaterOrEqual(t, h.results[0].ElapsedSeconds, 0.0)

	before := h.loop.State()
	for i := 0; i < 10; i++ {
		h.frame(0.02)
	}
	assert.Len(t, h.results, 1)
	assert.Equal(t, before, h.loop.State())
}

func TestSelfLevelingDecaysWithoutOvershoot(t *testing.T) {
	env, st := testEnv(types.Jetliner)
	st.Orientation = FromEuler(0.4, 0.5, -0.9)

	prevYaw, prevPitch, prevRoll := Euler(st.Orientation)
	for i := 0; i < 600; i++ {
		st, _ = Step(st, 0, 1.0/60, env)
		yaw, pitch, roll := Euler(st.Orientation)

		require.Less(t, math.Abs(pitch), math.Abs(prevPitch))
		require.Less(t, math.Abs(roll), math.Abs(prevRoll))
		require.Equal(t, math.Signbit(prevPitch), math.Signbit(pitch))
		require.Equal(t, math.Signbit(prevRoll), math.Signbit(roll))
		require.InDelta(t, prevYaw, yaw, 1e-9)
		prevYaw, prevPitch, prevRoll = yaw, pitch, roll
	}
	assert.Less(t, math.Abs(prevRoll), 0.01)
}

func TestEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float64
	}{
		{"level", 0, 0, 0},
		{"heading only", 1.2, 0, 0},
		{"climbing left bank", -0.7, -0.4, 0.6},
		{"steep dive", 2.5, 1.2, -1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch, roll := Euler(FromEuler(tt.yaw, tt.pitch, tt.roll))
			assert.InDelta(t, tt.yaw, yaw, 1e-9)
			assert.InDelta(t, tt.pitch, pitch, 1e-9)
			assert.InDelta(t, tt.roll, roll, 1e-9)
		})
	}
}

func TestControlsSteerTheExpectedWay(t *testing.T) {
	tests := []struct {
		name  string
		held  input.Set
		check func(t *testing.T, start, end RunState)
	}{
		{"pitch up climbs", input.NewSet(input.PitchUp), func(t *testing.T, s, e RunState) {
			assert.Greater(t, e.Position.Y(), s.Position.Y()+1)
		}},
		{"pitch down descends", input.NewSet(input.PitchDown), func(t *testing.T, s, e RunState) {
			assert.Less(t, e.Position.Y(), s.Position.Y()-1)
		}},
		{"yaw left turns toward +x", input.NewSet(input.YawLeft), func(t *testing.T, s, e RunState) {
			assert.Greater(t, e.Position.X(), s.Position.X()+1)
		}},
		{"yaw right turns toward -x", input.NewSet(input.YawRight), func(t *testing.T, s, e RunState) {
			assert.Less(t, e.Position.X(), s.Position.X()-1)
		}},
		{"roll left banks", input.NewSet(input.RollLeft), func(t *testing.T, _, e RunState) {
			_, _, roll := Euler(e.Orientation)
			assert.Greater(t, roll, 0.1)
		}},
		{"decelerate slows", input.NewSet(input.Decelerate), func(t *testing.T, s, e RunState) {
			assert.Less(t, e.Speed, s.Speed)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, st := testEnv(types.Biplane)
			start := st
			for i := 0; i < 60; i++ {
				st, _ = Step(st, tt.held, 1.0/60, env)
			}
			tt.check(t, start, st)
		})
	}
}

func TestFighterPitchesFasterThanJetliner(t *testing.T) {
	climb := func(kind types.VehicleKind) float64 {
		env, st := testEnv(kind)
		for i := 0; i < 30; i++ {
			st, _ = Step(st, input.NewSet(input.PitchUp), 1.0/60, env)
		}
		_, pitch, _ := Euler(st.Orientation)
		return -pitch
	}
	assert.Greater(t, climb(types.Fighter), climb(types.Jetliner))
}

func TestStepLeavesFinishedStateAlone(t *testing.T) {
	env, st := testEnv(types.Fighter)
	st.Index = env.Route.Len()
	next, out := Step(st, input.NewSet(input.Accelerate), 0.02, env)
	assert.Equal(t, st, next)
	assert.Equal(t, Outcome{}, out)
}

func TestTickClampsLongPauses(t *testing.T) {
	h := newHarness(t, types.Fighter)
	h.clock.Advance(5 * time.Second)
	h.loop.Tick(h.clock.now)
	assert.InDelta(t, 0.045, h.loop.State().Elapsed, 1e-12)

	h.clock.Advance(10 * time.Millisecond)
	h.loop.Tick(h.clock.now)
	assert.InDelta(t, 0.055, h.loop.State().Elapsed, 1e-9)

	h.loop.Tick(h.clock.now.Add(-time.Second))
	assert.InDelta(t, 0.055, h.loop.State().Elapsed, 1e-9)
}

func TestHUDIsThrottled(t *testing.T) {
	h := newHarness(t, types.Jetliner)
	require.Len(t, h.huds, 1)

	for i := 0; i < 120; i++ {
		h.frame(1.0 / 60)
	}

	assert.GreaterOrEqual(t, len(h.huds), 14)
	assert.LessOrEqual(t, len(h.huds), 17)
	for i := 1; i < len(h.hudTimes); i++ {
		assert.Greater(t, h.hudTimes[i].Sub(h.hudTimes[i-1]), 120*time.Millisecond)
	}
	last := h.huds[len(h.huds)-1]
	assert.Equal(t, h.vehicle.Position.Y(), last.Altitude)
}

func TestHUDIsACopy(t *testing.T) {
	h := newHarness(t, types.Jetliner)
	hud := h.loop.HUD()
	hud.Speed = -1
	assert.NotEqual(t, -1.0, h.loop.HUD().Speed)
}

func TestStopHaltsFrames(t *testing.T) {
	h := newHarness(t, types.Biplane)
	h.frame(0.02)
	h.loop.Stop()
	h.loop.Stop()
	require.True(t, h.loop.Stopped())

	st, frames, pos := h.loop.State(), h.loop.Frames(), h.camera.Position
	h.held.Store(input.NewSet(input.Accelerate, input.PitchUp))
	h.frame(0.02)
	h.loop.Tick(h.clock.now.Add(time.Second))

	assert.Equal(t, st, h.loop.State())
	assert.Equal(t, frames, h.loop.Frames())
	assert.Equal(t, pos, h.camera.Position)
}

func TestCameraTrailsAircraft(t *testing.T) {
	h := newHarness(t, types.Jetliner)
	assert.Equal(t, mgl64.Vec3{0, 46, -42}, h.camera.Position)

	for i := 0; i < 300; i++ {
		h.frame(1.0 / 60)
	}
	eye, target := h.loop.rig.Desired(h.vehicle.Position, h.vehicle.Heading())
	// A per-frame lerp chasing a moving point settles at a constant lag.
	lag := h.vehicle.Speed / 60 * (1 - 0.08) / 0.08
	assert.InDelta(t, lag, h.camera.Position.Sub(eye).Len(), 0.5)
	assert.Equal(t, target, h.camera.Target)
	assert.Less(t, h.camera.Position.Z(), h.vehicle.Position.Z())
}

func TestMessagesAreBounded(t *testing.T) {
	h := newHarness(t, types.Jetliner)
	for i := 0; i < 80; i++ {
		h.loop.addMessage(CheckpointCaptured, "x")
	}
	msgs := h.loop.Messages()
	assert.Len(t, msgs, 50)
	assert.Equal(t, CheckpointCaptured, msgs[0].Kind)
}

func TestFighterAcceleratesThenCapturesFirstCheckpoint(t *testing.T) {
	h := newHarness(t, types.Fighter)
	p := DefaultParams()
	h.held.Press(input.Accelerate)

	prev := h.loop.State().Speed
	require.Equal(t, 62.0, prev)
	for i := 0; i < 120; i++ {
		h.frame(1.0 / 60)
		speed := h.loop.State().Speed
		if prev < p.MaxSpeed {
			require.Greater(t, speed, prev, "frame %d", i)
		} else {
			require.Equal(t, p.MaxSpeed, speed)
		}
		prev = speed
	}
	assert.Equal(t, p.MaxSpeed, prev)
	require.Equal(t, 0, h.loop.State().Index)

	h.held.Clear()
	h.loop.Teleport(h.route.At(0).Center)
	h.frame(1.0 / 60)

	assert.Equal(t, 1, h.loop.State().Index)
	assert.Equal(t, flightplan.Captured, h.route.At(0).CurrentStyle())
	assert.Equal(t, flightplan.Active, h.route.At(1).CurrentStyle())
	assert.Equal(t, flightplan.CapturedColor, h.route.At(0).RingMaterial().Color)
	assert.Equal(t, 1, h.loop.HUD().CheckpointIndex)

	msgs := h.loop.Messages()
	assert.Equal(t, CheckpointCaptured, msgs[len(msgs)-1].Kind)
}

func TestFullRouteReportsSummedElapsed(t *testing.T) {
	h := newHarness(t, types.Fighter)
	rng := rand.New(rand.NewSource(3))
	n := h.route.Len()
	sum := 0.0

	feed := func(frames int) {
		for i := 0; i < frames; i++ {
			dt := 0.005 + rng.Float64()*0.04
			sum += dt
			h.frame(dt)
		}
	}

	for k := 0; k < n; k++ {
		feed(20)
		require.False(t, h.loop.Finished())
		h.loop.Teleport(h.route.At(k).Center)
		dt := 1.0 / 60
		sum += dt
		h.frame(dt)
		require.Equal(t, k+1, h.loop.State().Index)
	}

	require.True(t, h.loop.Finished())
	require.Len(t, h.results, 1)
	assert.InDelta(t, sum, h.results[0].ElapsedSeconds, 1e-9)
	assert.Equal(t, n, h.huds[len(h.huds)-1].CheckpointIndex)
	for _, cp := range h.route.Checkpoints() {
		assert.Equal(t, flightplan.Captured, cp.CurrentStyle())
	}
}
