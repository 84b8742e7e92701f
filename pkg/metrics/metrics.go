// Package metrics holds shared metric definitions.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets are histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Signup outcome labels.
const (
	OutcomeCreated   = "created"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeOrphan    = "orphan_recovered"
	OutcomeFailed    = "failed"
)

// Signup records signup attempts and their latency.
type Signup struct {
	attempts metric.Int64Counter
	duration metric.Float64Histogram
}

// NewSignup creates the signup instruments on meter. A nil meter yields no-op
// instruments.
func NewSignup(meter metric.Meter) (*Signup, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("podium")
	}

	attempts, err := meter.Int64Counter("podium_signup_attempts",
		metric.WithDescription("Signup attempts by user type and outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create signup counter: %w", err)
	}
	duration, err := meter.Float64Histogram("podium_signup_duration_seconds",
		metric.WithDescription("Signup latency including provider calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create signup histogram: %w", err)
	}

	return &Signup{attempts: attempts, duration: duration}, nil
}

// Record adds one attempt with the given outcome.
func (s *Signup) Record(ctx context.Context, userType, outcome string, seconds float64) {
	if s == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("user_type", userType),
		attribute.String("outcome", outcome),
	)
	s.attempts.Add(ctx, 1, attrs)
	s.duration.Record(ctx, seconds, attrs)
}
