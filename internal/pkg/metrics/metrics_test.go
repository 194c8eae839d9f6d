//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paintball-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.ObserveQuote(true)
	m.ObserveQuote(true)
	m.ObserveQuote(false)
	m.ObserveBooking("created")
	m.ObserveRequest("/api/quotes", http.MethodPost, http.StatusOK, 15*time.Millisecond)
	m.ObserveTxRetry("deadlock")

	count, err := testutil.GatherAndCount(m.Registry(), "paintball_quotes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per nocturne label value")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `paintball_quotes_total{nocturne="true"} 2`)
	assert.Contains(t, rec.Body.String(), `paintball_bookings_total{outcome="created"} 1`)
	assert.Contains(t, rec.Body.String(), `paintball_http_requests_total{method="POST",route="/api/quotes",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `paintball_tx_retries_total{reason="deadlock"} 1`)
}
