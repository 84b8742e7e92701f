package metrics_test

import (
	"context"
	"podium/pkg/metrics"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSignup_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewSignup(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Record(ctx, "speaker", metrics.OutcomeCreated, 0.2)
	m.Record(ctx, "speaker", metrics.OutcomeCreated, 0.3)
	m.Record(ctx, "organization", metrics.OutcomeDuplicate, 0.1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}
	sum, ok := byName["podium_signup_attempts"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	require.EqualValues(t, 3, total)
	require.Len(t, sum.DataPoints, 2)

	hist, ok := byName["podium_signup_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 2)
}

func TestSignup_NilSafe(t *testing.T) {
	var m *metrics.Signup
	m.Record(context.Background(), "speaker", metrics.OutcomeFailed, 1)

	noop, err := metrics.NewSignup(nil)
	require.NoError(t, err)
	noop.Record(context.Background(), "speaker", metrics.OutcomeFailed, 1)
}
