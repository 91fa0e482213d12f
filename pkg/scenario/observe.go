package scenario

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metrics counts scenario executions. Counters are registered against
// whichever meter the caller provides; NoopMetrics gives a meter that
// discards everything.
type Metrics struct {
	scenariosRun    metric.Int64Counter
	scenariosFailed metric.Int64Counter
	streamsCreated  metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	run, err := meter.Int64Counter("flowsim.scenarios.run")
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("flowsim.scenarios.failed")
	if err != nil {
		return nil, err
	}

	streams, err := meter.Int64Counter("flowsim.streams.created")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		scenariosRun:    run,
		scenariosFailed: failed,
		streamsCreated:  streams,
	}, nil
}

func NoopMetrics() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("flowsim"))
	if err != nil {
		// the noop meter never fails to register
		panic(err)
	}
	return m
}

func (m *Metrics) ScenarioRan(ctx context.Context) {
	m.scenariosRun.Add(ctx, 1)
}

func (m *Metrics) ScenarioFailed(ctx context.Context) {
	m.scenariosFailed.Add(ctx, 1)
}

func (m *Metrics) StreamsCreated(ctx context.Context, count int) {
	m.streamsCreated.Add(ctx, int64(count))
}
