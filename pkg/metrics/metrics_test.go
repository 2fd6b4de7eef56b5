package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/encircleuk/civicrm.extendedreport/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBuild(t *testing.T) {
	before, err := testutil.GatherAndCount(metrics.Registry(), "report_builds_total")
	require.Nil(t, err)

	metrics.RecordBuild("metrics-test", nil, time.Millisecond, 3, 2)
	metrics.RecordBuild("metrics-test", errors.New("failed"), time.Millisecond, 0, 0)

	after, err := testutil.GatherAndCount(metrics.Registry(), "report_builds_total")
	require.Nil(t, err)

	// One series for success, one for failure
	assert.Equal(t, before+2, after)
}

func TestHandler(t *testing.T) {
	metrics.RecordBuild("handler-test", nil, time.Millisecond, 1, 1)

	w := httptest.NewRecorder()
	r, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	metrics.Handler().ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `report_synthesized_columns{report="handler-test"} 1`)
}
