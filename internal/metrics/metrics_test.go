package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPointOperation(t *testing.T) {
	PointOperationsTotal.Reset()
	PointAmountTotal.Reset()

	RecordPointOperation("charge", "accepted", 1000)
	RecordPointOperation("charge", "accepted", 2000)
	RecordPointOperation("use", "insufficient_balance", 5000)

	assert.Equal(t, float64(2), testutil.ToFloat64(PointOperationsTotal.WithLabelValues("charge", "accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PointOperationsTotal.WithLabelValues("use", "insufficient_balance")))
	assert.Equal(t, float64(3000), testutil.ToFloat64(PointAmountTotal.WithLabelValues("charge")))
	// rejected amounts are not counted
	assert.Equal(t, float64(0), testutil.ToFloat64(PointAmountTotal.WithLabelValues("use")))
}

func TestInit_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
