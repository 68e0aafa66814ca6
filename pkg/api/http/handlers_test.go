package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/taruntarz/Kubernetes-resources/internal/application/predictor"
	"github.com/taruntarz/Kubernetes-resources/internal/config"
	"github.com/taruntarz/Kubernetes-resources/pkg/adapters/metrics/prometheus"
)

func newTestServer(t *testing.T, version string) *Server {
	t.Helper()

	logger := zaptest.NewLogger(t)
	return NewServer(&Config{
		Port:      0,
		Version:   version,
		Predictor: predictor.New(&predictor.Config{Seed: 1, Logger: logger}),
		Metrics:   prometheus.NewCollector(),
		Logger:    logger,
	})
}

// newQuietServer builds a server with a no-op logger for high-volume tests.
func newQuietServer(version string) *Server {
	logger := zap.NewNop()
	return NewServer(&Config{
		Port:      0,
		Version:   version,
		Predictor: predictor.New(&predictor.Config{Seed: 42, Logger: logger}),
		Metrics:   prometheus.NewCollector(),
		Logger:    logger,
	})
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(t, "v1")

	w := doRequest(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp GreetingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello from Go ML GitOps v1!", resp.Message)
	assert.Equal(t, "running", resp.Status)
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer(t, "v2.3")

	w := doRequest(s, http.MethodGet, "/version")
	require.Equal(t, http.StatusOK, w.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v2.3", resp.Version)
	assert.Equal(t, "Go ML GitOps", resp.App)
}

func TestVersionEndpointDefault(t *testing.T) {
	s := newTestServer(t, config.DefaultAppVersion)

	w := doRequest(s, http.MethodGet, "/version")
	require.Equal(t, http.StatusOK, w.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.Version)
	assert.Equal(t, config.AppName, resp.App)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, "v2.3")

	w := doRequest(s, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "v2.3", resp.Version)
}

func TestPredictEndpointShape(t *testing.T) {
	s := newTestServer(t, "v1")

	w := doRequest(s, http.MethodGet, "/predict")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Len(t, raw, 4)
	for _, key := range []string{"prediction", "confidence", "model_version", "timestamp"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, predictor.ModelVersion, raw["model_version"])
}

func TestPredictEndpointBounds(t *testing.T) {
	s := newQuietServer("v1")

	labels := map[predictor.Label]int{}
	for i := 0; i < 1000; i++ {
		w := doRequest(s, http.MethodGet, "/predict")
		require.Equal(t, http.StatusOK, w.Code)

		var resp predictor.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Contains(t, []predictor.Label{
			predictor.LabelPositive,
			predictor.LabelNegative,
			predictor.LabelNeutral,
		}, resp.Prediction)

		assert.GreaterOrEqual(t, resp.Confidence, predictor.ConfidenceMin)
		assert.LessOrEqual(t, resp.Confidence, predictor.ConfidenceMax)

		// At most two decimal digits.
		scaled := resp.Confidence * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)

		_, err := time.Parse(time.RFC3339, resp.Timestamp)
		require.NoError(t, err)

		labels[resp.Prediction]++
	}

	assert.Len(t, labels, 3, "all three labels should occur over 1000 calls")
}

func TestStableEndpointsAreIdempotent(t *testing.T) {
	s := newTestServer(t, "v1.2.3")

	for _, path := range []string{"/", "/version", "/health"} {
		first := doRequest(s, http.MethodGet, path)
		second := doRequest(s, http.MethodGet, path)

		require.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, "v1")

	w := doRequest(s, http.MethodGet, "/nonexistent")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, "v1")

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/predict"},
		{http.MethodPut, "/health"},
		{http.MethodDelete, "/version"},
	} {
		w := doRequest(s, tt.method, tt.path)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tt.method, tt.path)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "METHOD_NOT_ALLOWED", resp.Error.Code)
	}
}

func TestPanicRecoveredAsInternalError(t *testing.T) {
	s := newTestServer(t, "v1")
	s.router.GET("/panic", func(c *gin.Context) {
		panic("handler failure")
	})

	w := doRequest(s, http.MethodGet, "/panic")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestRequestIDGenerated(t *testing.T) {
	s := newTestServer(t, "v1")

	w := doRequest(s, http.MethodGet, "/health")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t, "v1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "test-id-123")
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get(HeaderRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, "v1")

	doRequest(s, http.MethodGet, "/predict")

	w := doRequest(s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "mlgitops_http_requests_total")
	assert.Contains(t, body, "mlgitops_predictions_total")
}
