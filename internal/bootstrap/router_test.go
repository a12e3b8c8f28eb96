package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/memory"
)

func newTestRouter(t *testing.T, origins []string, rc *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	deps := RouterDeps{
		ServiceName: "portfolio-api",
		Version:     "test",
		CORSOrigins: origins,
		Logger:      zerolog.Nop(),
		Stores:      MemoryStores(memory.New()),
		Redis:       rc,
	}
	if rc != nil {
		deps.Cache = cache.NewRedis(rc, 0)
	}
	return BuildRouter(deps)
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpenStores_Memory(t *testing.T) {
	stores, err := OpenStores(context.Background(), &config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.True(t, stores.InMemory())
	assert.NoError(t, stores.Close())
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := OpenStores(context.Background(), &config.DatabaseConfig{Driver: "sqlite"})
	assert.ErrorContains(t, err, "unknown DB_DRIVER")
}

func TestRouter_RootAndAPIPrefix(t *testing.T) {
	r := newTestRouter(t, nil, nil)

	w := do(r, http.MethodPost, "/api/profile", `{"name":"Ada","title":"Engineer","bio":"Hi"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Ada", p["name"])

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/projects", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/experience", "", nil).Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil, nil)

	w := do(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var h map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "memory", h["db"])
	assert.Equal(t, "disabled", h["cache"])

	w = do(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio_http_requests_total")
}

func TestRouter_PanicsAreCountedAs500(t *testing.T) {
	r := newTestRouter(t, nil, nil)
	r.GET("/explode", func(*gin.Context) { panic("boom") })

	w := do(r, http.MethodGet, "/explode", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = do(r, http.MethodGet, "/metrics", "", nil)
	assert.Contains(t, w.Body.String(), `portfolio_http_requests_total{method="GET",route="/explode",status="500"} 1`)
}

func TestRouter_HealthReportsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rc.Close()

	r := newTestRouter(t, nil, rc)
	w := do(r, http.MethodGet, "/healthz", "", nil)
	var h map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "up", h["cache"])
}

func TestRouter_CORS(t *testing.T) {
	r := newTestRouter(t, []string{"https://portfolio.example"}, nil)

	w := do(r, http.MethodOptions, "/projects", "", map[string]string{
		"Origin":                        "https://portfolio.example",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/projects", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSConfig_Wildcard(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"http://localhost:3000"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
}
