package simulation

import (
	"landmark-flight/internal/game/aircraft"
	"landmark-flight/internal/game/flightplan"
	"landmark-flight/internal/input"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const PULSE_RATE = 3.5

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// RunState is everything one frame step reads and writes.
type RunState struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Speed       float64
	Index       int     // next checkpoint to capture, Len() when finished
	Elapsed     float64 // sum of clamped frame deltas
	Pulse       float64 // pulse angle of the active marker
}

// Env is the read-only context of a step.
type Env struct {
	Profile aircraft.Profile
	Params  Params
	Route   *flightplan.Route
}

type Outcome struct {
	Captured   bool
	Checkpoint int
	Finished   bool
}

// NewRunState returns the state at the start of a run for ac.
func NewRunState(ac *aircraft.Aircraft, route *flightplan.Route) RunState {
	st := RunState{
		Position:    ac.Position,
		Orientation: ac.Orientation,
		Speed:       ac.Speed,
	}
	if cp, ok := route.Active(0); ok {
		st.Pulse = cp.Phase
	}
	return st
}

// Finished reports whether every checkpoint has been captured.
func (st RunState) Finished(route *flightplan.Route) bool {
	return st.Index >= route.Len()
}

// Step advances st by dt seconds of held input. dt is clamped first. A
// finished state is returned unchanged.
func Step(st RunState, held input.Set, dt float64, env Env) (RunState, Outcome) {
	p := env.Params
	if st.Finished(env.Route) {
		return st, Outcome{}
	}
	dt = p.ClampDt(dt)
	st.Elapsed += dt

	st.Orientation = steer(st.Orientation, held, dt, env.Profile)
	st.Orientation = level(st.Orientation, p.PitchDamping, p.RollDamping)

	if held.Has(input.Accelerate) {
		st.Speed = math.Min(st.Speed+p.Acceleration*dt, p.MaxSpeed)
	}
	if held.Has(input.Decelerate) {
		st.Speed = math.Max(st.Speed-p.Acceleration*dt, p.MinSpeed)
	}
	st.Speed = mgl64.Clamp(st.Speed, p.MinSpeed, p.MaxSpeed)

	forward := st.Orientation.Rotate(aircraft.Forward).Normalize()
	st.Position = p.Volume.Clamp(st.Position.Add(forward.Mul(st.Speed * dt)))

	st.Pulse += dt * PULSE_RATE

	var out Outcome
	cp, hit := checkCapture(env.Route, st.Index, st.Position)
	if hit {
		st.Index++
		out.Captured = true
		out.Checkpoint = cp.Index
		if next, ok := env.Route.Active(st.Index); ok {
			st.Pulse = next.Phase
		} else {
			out.Finished = true
		}
	}
	return st, out
}

// steer applies the frame's local rotations: pitch about the wing axis, yaw
// about the vertical axis with some bank into the turn, then explicit roll.
func steer(q mgl64.Quat, held input.Set, dt float64, prof aircraft.Profile) mgl64.Quat {
	var pitch, yaw, roll float64
	if held.Has(input.PitchDown) {
		pitch += prof.PitchRate
	}
	if held.Has(input.PitchUp) {
		pitch -= prof.PitchRate
	}
	if held.Has(input.YawLeft) {
		yaw += prof.YawRate
		roll -= prof.BankRate
	}
	if held.Has(input.YawRight) {
		yaw -= prof.YawRate
		roll += prof.BankRate
	}
	if held.Has(input.RollLeft) {
		roll += prof.RollRate
	}
	if held.Has(input.RollRight) {
		roll -= prof.RollRate
	}

	if pitch != 0 {
		q = q.Mul(mgl64.QuatRotate(pitch*dt, axisX))
	}
	if yaw != 0 {
		q = q.Mul(mgl64.QuatRotate(yaw*dt, axisY))
	}
	if roll != 0 {
		q = q.Mul(mgl64.QuatRotate(roll*dt, axisZ))
	}
	return q.Normalize()
}

// level decays pitch and roll toward zero once per frame. Heading is kept.
func level(q mgl64.Quat, pitchDamping, rollDamping float64) mgl64.Quat {
	yaw, pitch, roll := Euler(q)
	return FromEuler(yaw, pitch*pitchDamping, roll*rollDamping)
}

// Euler decomposes q into heading, pitch and bank angles, applied in that
// order (yaw about Y, then pitch about X, then roll about Z).
func Euler(q mgl64.Quat) (yaw, pitch, roll float64) {
	m := q.Normalize().Mat4().Mat3()
	m13, m21, m22, m23, m31, m11, m33 := m.At(0, 2), m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(2, 0), m.At(0, 0), m.At(2, 2)

	pitch = math.Asin(-mgl64.Clamp(m23, -1, 1))
	if math.Abs(m23) < 0.9999999 {
		yaw = math.Atan2(m13, m33)
		roll = math.Atan2(m21, m22)
	} else {
		yaw = math.Atan2(-m31, m11)
	}
	return yaw, pitch, roll
}

func FromEuler(yaw, pitch, roll float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, axisY).
		Mul(mgl64.QuatRotate(pitch, axisX)).
		Mul(mgl64.QuatRotate(roll, axisZ)).
		Normalize()
}
