package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/anoixa/photo-album/api/middleware"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFactory 基于临时文件库创建数据库工厂
func newTestFactory(t *testing.T) *database.Factory {
	cfg := &config.Config{
		DBType:     "sqlite",
		DBFilePath: filepath.Join(t.TempDir(), "photos.db"),
	}

	factory, err := database.NewFactory(cfg)
	require.NoError(t, err)
	require.NoError(t, factory.AutoMigrate())

	t.Cleanup(func() {
		_ = factory.Close()
	})
	return factory
}

// --- 测试数据库健康检查 ---

func TestCheckDatabaseHealth_NilProvider(t *testing.T) {
	assert.Equal(t, "not initialized", checkDatabaseHealth(nil))
}

func TestCheckDatabaseHealth(t *testing.T) {
	factory := newTestFactory(t)
	assert.Equal(t, "ok", checkDatabaseHealth(factory.GetProvider()))
}

func TestCheckDatabaseHealth_Closed(t *testing.T) {
	factory := newTestFactory(t)
	provider := factory.GetProvider()
	require.NoError(t, factory.Close())

	assert.Contains(t, checkDatabaseHealth(provider), "unavailable")
}

// --- 测试引擎组装 ---

func setupTestServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Get()
	cfg.RateLimitRPS = 100
	cfg.RateLimitBurst = 100
	cfg.RateLimitExpireTime = time.Minute
	cfg.UploadMaxMemoryMB = 32
	cfg.RequestBodyLimitMB = 100
	cfg.UploadMaxConcurrency = 1

	factory := newTestFactory(t)
	router, cleanup := setupRouter(&ServerDependencies{
		DatabaseProvider: factory.GetProvider(),
		PhotosRepo:       photos.NewRepository(factory.GetProvider()),
	})
	t.Cleanup(cleanup)

	return router
}

func TestSetupRouter_Health(t *testing.T) {
	router := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])

	checks := payload["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["database"])
}

func TestSetupRouter_Version(t *testing.T) {
	router := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "version")
	assert.Contains(t, w.Body.String(), "commit")
}

func TestSetupRouter_Metrics(t *testing.T) {
	router := setupTestServer(t)
	middleware.ResetMetrics()

	// 先产生一次请求，指标计数随之增长
	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(httptest.NewRecorder(), healthReq)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.GreaterOrEqual(t, payload["request_count"].(float64), float64(1))
	assert.Contains(t, payload, "memory")
}

func TestSetupRouter_GalleryRoute(t *testing.T) {
	router := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 空画廊也应正常返回
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "photos")
}

func TestSetupRouter_RequestIDHeader(t *testing.T) {
	router := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRouter_UnknownPhotoRedirects(t *testing.T) {
	router := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/detail/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestStartServer_Timeouts(t *testing.T) {
	cfg := config.Get()
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 18080
	cfg.ServerReadTimeout = 15 * time.Second
	cfg.ServerWriteTimeout = 30 * time.Second
	cfg.ServerIdleTimeout = 120 * time.Second
	cfg.RateLimitRPS = 100
	cfg.RateLimitBurst = 100
	cfg.RateLimitExpireTime = time.Minute

	factory := newTestFactory(t)
	srv, cleanup := StartServer(&ServerDependencies{
		DatabaseProvider: factory.GetProvider(),
		PhotosRepo:       photos.NewRepository(factory.GetProvider()),
	})
	t.Cleanup(cleanup)

	assert.Equal(t, "127.0.0.1:18080", srv.Addr)
	assert.Equal(t, 15*time.Second, srv.ReadTimeout)
	assert.Equal(t, 30*time.Second, srv.WriteTimeout)
	assert.Equal(t, 120*time.Second, srv.IdleTimeout)
	assert.NotNil(t, srv.Handler)
}
