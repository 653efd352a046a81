package match

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/vovakirdan/microarcade/internal/match"

// Recorder counts rounds and records their simulated length.
type Recorder struct {
	started metric.Int64Counter
	ended   metric.Int64Counter
	elapsed metric.Float64Histogram
}

// NewRecorder creates the round instruments on the global OTel meter provider,
// which is a no-op unless the process installs one.
func NewRecorder() (*Recorder, error) {
	return NewRecorderFor(otel.GetMeterProvider())
}

// NewRecorderFor creates the round instruments on mp.
func NewRecorderFor(mp metric.MeterProvider) (*Recorder, error) {
	m := mp.Meter(instrumentationName)
	r := &Recorder{}

	var err error
	r.started, err = m.Int64Counter(
		"match.rounds.started",
		metric.WithDescription("Total rounds started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating started counter: %w", err)
	}

	r.ended, err = m.Int64Counter(
		"match.rounds.ended",
		metric.WithDescription("Total rounds ended, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ended counter: %w", err)
	}

	r.elapsed, err = m.Float64Histogram(
		"match.round.duration",
		metric.WithDescription("Simulated round length"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return r, nil
}

func (r *Recorder) roundStarted(gameID string, tier string) {
	if r == nil {
		return
	}
	r.started.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("game", gameID),
		attribute.String("tier", tier),
	))
}

func (r *Recorder) roundEnded(res RoundResult) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("game", res.GameID),
		attribute.String("outcome", res.Outcome.String()),
		attribute.String("reason", res.Reason.String()),
	)
	r.ended.Add(context.Background(), 1, attrs)
	r.elapsed.Record(context.Background(), float64(res.Elapsed.Milliseconds()), attrs)
}
