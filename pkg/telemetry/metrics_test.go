package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_Registry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := InitMetrics(reg)
	require.NotNil(t, m)

	m.ClockRegressions.WithLabelValues("qpc").Inc()
	m.FrameRate.WithLabelValues("demo").Set(59.5)
	m.TripDuration.WithLabelValues("demo").Observe(0.02)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClockRegressions.WithLabelValues("qpc")))
	assert.Equal(t, 59.5, testutil.ToFloat64(m.FrameRate.WithLabelValues("demo")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["ticktime_clock_regressions_total"])
	assert.True(t, names["ticktime_frame_rate"])
	assert.True(t, names["ticktime_stopwatch_trip_duration_seconds"])
}

func TestInitMetrics_DuplicateRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitMetrics(reg)
	assert.Panics(t, func() { InitMetrics(reg) })
}

func TestDefault_ReturnsLastInit(t *testing.T) {
	m := InitMetrics(prometheus.NewRegistry())
	assert.Same(t, m, Default())
}
