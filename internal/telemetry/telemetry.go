package telemetry

import (
	"context"
	"fmt"
	"landmark-flight/pkg/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "landmark-flight/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder counts run lifecycle events. It uses the global meter provider,
// which is a no-op until one is installed.
type Recorder struct {
	started   metric.Int64Counter
	finished  metric.Int64Counter
	abandoned metric.Int64Counter
	captured  metric.Int64Counter
	failures  metric.Int64Counter
	duration  metric.Float64Histogram
}

func New() (*Recorder, error) {
	return NewWithMeter(meter())
}

func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.started, err = m.Int64Counter(
		"flight.runs.started",
		metric.WithDescription("Runs started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating started counter: %w", err)
	}

	r.finished, err = m.Int64Counter(
		"flight.runs.finished",
		metric.WithDescription("Runs that captured every checkpoint"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating finished counter: %w", err)
	}

	r.abandoned, err = m.Int64Counter(
		"flight.runs.abandoned",
		metric.WithDescription("Runs left before the last checkpoint"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating abandoned counter: %w", err)
	}

	r.captured, err = m.Int64Counter(
		"flight.checkpoints.captured",
		metric.WithDescription("Checkpoints flown through"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating captured counter: %w", err)
	}

	r.failures, err = m.Int64Counter(
		"flight.dispose.failures",
		metric.WithDescription("Resources whose release failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dispose failure counter: %w", err)
	}

	r.duration, err = m.Float64Histogram(
		"flight.run.duration",
		metric.WithDescription("Time to complete the route"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return r, nil
}

func vehicle(kind types.VehicleKind) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("vehicle", string(kind)))
}

func (r *Recorder) RunStarted(kind types.VehicleKind) {
	r.started.Add(context.Background(), 1, vehicle(kind))
}

func (r *Recorder) RunFinished(kind types.VehicleKind, seconds float64) {
	ctx := context.Background()
	r.finished.Add(ctx, 1, vehicle(kind))
	r.duration.Record(ctx, seconds, vehicle(kind))
}

func (r *Recorder) RunAbandoned(kind types.VehicleKind, checkpoint int) {
	r.abandoned.Add(context.Background(), 1, vehicle(kind),
		metric.WithAttributes(attribute.Int("checkpoint", checkpoint)))
}

func (r *Recorder) CheckpointCaptured(kind types.VehicleKind, checkpoint int) {
	r.captured.Add(context.Background(), 1, vehicle(kind),
		metric.WithAttributes(attribute.Int("checkpoint", checkpoint)))
}

func (r *Recorder) DisposeFailures(n int) {
	if n <= 0 {
		return
	}
	r.failures.Add(context.Background(), int64(n))
}
