package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/pkg/metrics"
)

func TestRecorder_ObserveDispatch(t *testing.T) {
	r := metrics.New("test")
	r.ObserveDispatch("GET", "/users/{target}", 200, time.Millisecond)
	r.ObserveDispatch("GET", "/users/{target}", 200, time.Millisecond)
	r.ObserveDispatch("GET", metrics.UnmatchedRoute, 404, time.Millisecond)

	expected := `
# HELP test_dispatch_total Requests dispatched, by method, route pattern and status
# TYPE test_dispatch_total counter
test_dispatch_total{method="GET",route="/users/{target}",status="200"} 2
test_dispatch_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "test_dispatch_total"))
}

func TestRecorder_ObserveComposition(t *testing.T) {
	r := metrics.New("test")
	r.ObserveComposition(nil, 94, 2048)
	r.ObserveComposition(errors.New("unknown tag"), 0, 0)

	expected := `
# HELP test_document_compositions_total Document compositions, by result
# TYPE test_document_compositions_total counter
test_document_compositions_total{result="error"} 1
test_document_compositions_total{result="ok"} 1
# HELP test_mounted_routes Operations in the live dispatch table
# TYPE test_mounted_routes gauge
test_mounted_routes 94
# HELP test_document_bytes Size of the published JSON document
# TYPE test_document_bytes gauge
test_document_bytes 2048
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"test_document_compositions_total", "test_mounted_routes", "test_document_bytes"))
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.New("test")
	r.ObserveComposition(nil, 3, 10)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_mounted_routes 3")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
