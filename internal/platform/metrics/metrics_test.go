package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Observe(t *testing.T) {
	m := NewHTTP("scout_market")

	m.Observe("GET /api/problems", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.Observe("GET /api/problems", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.Observe("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET /api/problems", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestHTTP_Handler(t *testing.T) {
	m := NewHTTP("scout_market")
	m.Observe("GET /api/users", http.MethodGet, http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "scout_market_http_requests_total"))
}

func TestHTTP_NilSafe(t *testing.T) {
	var m *HTTP
	assert.NotPanics(t, func() {
		m.Observe("x", http.MethodGet, http.StatusOK, time.Millisecond)
	})
}

type fakeCache struct{}

func (fakeCache) CacheCounters() (uint64, uint64, int) { return 7, 3, 2 }

func TestHTTP_RegisterCache(t *testing.T) {
	m := NewHTTP("scout_market")
	require.NoError(t, m.RegisterCache("repository", fakeCache{}))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `scout_market_cache_hits_total{cache="repository"} 7`)
	assert.Contains(t, body, `scout_market_cache_misses_total{cache="repository"} 3`)
	assert.Contains(t, body, `scout_market_cache_entries{cache="repository"} 2`)

	require.Error(t, m.RegisterCache("repository", fakeCache{}))
}
