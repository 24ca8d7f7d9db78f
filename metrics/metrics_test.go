package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "2xx", Outcome(http.StatusOK, nil))
	assert.Equal(t, "2xx", Outcome(http.StatusNoContent, nil))
	assert.Equal(t, "4xx", Outcome(http.StatusNotFound, nil))
	assert.Equal(t, "5xx", Outcome(http.StatusServiceUnavailable, nil))
	assert.Equal(t, "network_error", Outcome(0, errors.New("dial tcp: refused")))
}

func TestCollector_Records(t *testing.T) {
	c := NewCollector()

	c.ObserveBackendRequest("getAccountByIban", http.StatusNotFound, nil, 20*time.Millisecond)
	c.ObserveBackendRequest("getAccountByIban", http.StatusOK, nil, 10*time.Millisecond)
	c.RecordPageOperation("dashboard", "search", "error")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.backendRequests.WithLabelValues("getAccountByIban", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.backendRequests.WithLabelValues("getAccountByIban", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pageOperations.WithLabelValues("dashboard", "search", "error")))

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "accounts_backend_requests_total")
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveBackendRequest("healthCheck", http.StatusOK, nil, time.Millisecond)
		c.RecordPageOperation("dashboard", "health", "success")
	})
}
