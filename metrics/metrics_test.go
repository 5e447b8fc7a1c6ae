package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullKeyIsDeterministic(t *testing.T) {
	require.Equal(t, "x", fullKey("x", nil))
	require.Equal(t, "x{a=1,b=2}", fullKey("x", map[string]string{"b": "2", "a": "1"}))
}

func TestRegistryInc(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	r.Inc(ctx, "outfit_generations_total", map[string]string{"result": "ok"}, 1)
	r.Inc(ctx, "outfit_generations_total", map[string]string{"result": "ok"}, 2)
	r.Inc(ctx, "outfit_generations_total", map[string]string{"result": "failed"}, 1)

	require.Equal(t, int64(3), r.Value("outfit_generations_total", map[string]string{"result": "ok"}))
	require.Equal(t, int64(1), r.Value("outfit_generations_total", map[string]string{"result": "failed"}))
	require.Equal(t, int64(0), r.Value("missing", nil))
}

func TestRegistryHandler(t *testing.T) {
	r := NewRegistry()
	r.Inc(context.Background(), "http_requests_total", map[string]string{"status": "2xx"}, 4)

	rec := httptest.NewRecorder()
	r.Handler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(4), body["http_requests_total{status=2xx}"])
}
