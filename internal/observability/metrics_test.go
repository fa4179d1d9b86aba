package observability

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, activity string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, signupCounter.WithLabelValues(activity).Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordSignup(t *testing.T) {
	before := counterValue(t, "Chess Club")

	RecordSignup("Chess Club", 3)

	require.Equal(t, before+1, counterValue(t, "Chess Club"))

	var gauge dto.Metric
	require.NoError(t, rosterSizeGauge.WithLabelValues("Chess Club").Write(&gauge))
	require.Equal(t, float64(3), gauge.GetGauge().GetValue())
}

func TestRecordUnregistration(t *testing.T) {
	RecordUnregistration("Drama Club", 1)

	var counter dto.Metric
	require.NoError(t, unregisterCounter.WithLabelValues("Drama Club").Write(&counter))
	require.GreaterOrEqual(t, counter.GetCounter().GetValue(), float64(1))

	var gauge dto.Metric
	require.NoError(t, rosterSizeGauge.WithLabelValues("Drama Club").Write(&gauge))
	require.Equal(t, float64(1), gauge.GetGauge().GetValue())
}

func TestRecordRejection(t *testing.T) {
	RecordRejection("activity_not_found")

	var m dto.Metric
	require.NoError(t, rejectionCounter.WithLabelValues("activity_not_found").Write(&m))
	require.GreaterOrEqual(t, m.GetCounter().GetValue(), float64(1))
}
