package core

import (
	"net/http"
	"time"

	"github.com/anoixa/photo-album/api/middleware"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// ServerDependencies 服务器依赖项
type ServerDependencies struct {
	DatabaseProvider database.Provider
	PhotosRepo       *photos.Repository
}

// setupRouter 组装 gin 引擎
func setupRouter(deps *ServerDependencies) (*gin.Engine, func()) {
	cfg := config.Get()

	// 仅在开发版本时启用 gin 日志
	if config.CommitHash != "n/a" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if config.CommitHash == "n/a" {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.SetTrustedProxies(nil)

	// 限制上传文件解析内存
	router.MaxMultipartMemory = int64(cfg.UploadMaxMemoryMB) << 20

	// 请求体大小限制
	requestBodyLimit := int64(cfg.RequestBodyLimitMB) << 20
	if requestBodyLimit <= 0 {
		requestBodyLimit = 100 << 20
	}
	router.Use(middleware.MaxBytesReader(requestBodyLimit))

	// 请求ID追踪
	router.Use(middleware.RequestID())

	// 基础监控指标
	router.Use(middleware.Metrics())

	// 速率限制
	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitExpireTime)
	cleanup := func() {
		rateLimiter.StopCleanup()
	}

	RegisterRoutes(router, &RouterDependencies{
		DatabaseProvider: deps.DatabaseProvider,
		PhotosRepo:       deps.PhotosRepo,
		RateLimiter:      rateLimiter,
	})

	return router, cleanup
}

// StartServer 创建 http.Server
func StartServer(deps *ServerDependencies) (*http.Server, func()) {
	cfg := config.Get()
	router, clean := setupRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return srv, clean
}
