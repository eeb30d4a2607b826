package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, r *Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}

func TestNew_RegistersRuntimeCollectors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	body := scrape(t, r)
	assert.Contains(t, body, "go_goroutines")
}

func TestCounterVec(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	opts := prometheus.CounterOpts{Name: "test_fetches_total", Help: "fetches"}
	c, err := r.NewCounterVec(opts, []string{"kind"})
	require.NoError(t, err)
	c.With(prometheus.Labels{"kind": "none"}).Inc()
	c.With(prometheus.Labels{"kind": "transport"}).Add(2)

	again, err := r.NewCounterVec(opts, []string{"kind"})
	require.NoError(t, err)
	again.With(prometheus.Labels{"kind": "none"}).Inc()

	body := scrape(t, r)
	assert.Contains(t, body, `test_fetches_total{kind="none"} 2`)
	assert.Contains(t, body, `test_fetches_total{kind="transport"} 2`)
}

func TestCounterVec_ConflictingLabels(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.NewCounterVec(prometheus.CounterOpts{Name: "dup_total", Help: "x"}, []string{"a"})
	require.NoError(t, err)
	_, err = r.NewCounterVec(prometheus.CounterOpts{Name: "dup_total", Help: "x"}, []string{"b"})
	assert.Error(t, err)
}

func TestHistogramVec(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	h, err := r.NewHistogramVec(prometheus.HistogramOpts{Name: "test_seconds", Help: "t", Buckets: []float64{1}}, []string{"route"})
	require.NoError(t, err)
	h.With(prometheus.Labels{"route": "/x"}).Observe(0.5)

	assert.Contains(t, scrape(t, r), `test_seconds_bucket{route="/x",le="1"} 1`)
}
