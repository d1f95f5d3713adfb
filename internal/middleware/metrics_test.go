package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	notFound := httpRequestsTotal.WithLabelValues(http.MethodGet, "/products/{id}", "404")
	ok := httpRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")
	unmatched := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")

	beforeNotFound := testutil.ToFloat64(notFound)
	beforeOK := testutil.ToFloat64(ok)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/products/tbill-91", "/products/ifb-2024", "/healthz", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeNotFound+2, testutil.ToFloat64(notFound))
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}
