package core

import (
	"net/http"
	"time"

	"github.com/anoixa/photo-album/api/common"
	handlerPhotos "github.com/anoixa/photo-album/api/handler/photos"
	"github.com/anoixa/photo-album/api/middleware"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// RouterDependencies 路由注册依赖
type RouterDependencies struct {
	DatabaseProvider database.Provider
	PhotosRepo       *photos.Repository
	RateLimiter      *middleware.IPRateLimiter
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	// 基础路由
	registerBasicRoutes(router, deps)

	// 照片路由
	registerPhotoRoutes(router, deps)
}

// registerBasicRoutes 注册基础路由
func registerBasicRoutes(router *gin.Engine, deps *RouterDependencies) {
	router.GET("/health", func(c *gin.Context) {
		health := gin.H{
			"status":  "ok",
			"uptime":  time.Since(startTime).Round(time.Second).String(),
			"version": config.Version,
			"checks": gin.H{
				"database": checkDatabaseHealth(deps.DatabaseProvider),
			},
		}
		httpStatus := http.StatusOK
		for _, checkResult := range health["checks"].(gin.H) {
			if result, ok := checkResult.(string); ok && result != "ok" {
				httpStatus = http.StatusServiceUnavailable
				break
			}
		}
		c.JSON(httpStatus, health)
	})

	router.GET("/version", func(c *gin.Context) {
		common.RespondSuccess(c, gin.H{
			"version": config.Version,
			"commit":  config.CommitHash,
		})
	})

	router.GET("/metrics", func(c *gin.Context) {
		payload := middleware.GetMetrics()
		payload["memory"] = utils.GetMemoryStats()
		c.JSON(http.StatusOK, payload)
	})
}

// registerPhotoRoutes 注册照片路由
func registerPhotoRoutes(router *gin.Engine, deps *RouterDependencies) {
	photoHandler := handlerPhotos.NewHandler(deps.PhotosRepo)

	// 上传并发限制，避免批量照片写入耗尽内存
	uploadLimiter := middleware.NewConcurrencyLimiter(100)

	galleryGroup := router.Group("/")
	galleryGroup.Use(deps.RateLimiter.Middleware())
	{
		galleryGroup.GET("", photoHandler.ListPhotos)                    // GET /
		galleryGroup.GET("/photo/:id", photoHandler.GetPhoto)            // GET /photo/{id}
		galleryGroup.GET("/detail/:id", photoHandler.GetPhotoDetail)     // GET /detail/{id}
		galleryGroup.POST("/detail/:id/delete", photoHandler.DeletePhoto) // POST /detail/{id}/delete
	}

	uploadGroup := router.Group("/upload")
	uploadGroup.Use(deps.RateLimiter.Middleware())
	uploadGroup.Use(uploadLimiter.Middleware())
	{
		uploadGroup.POST("", photoHandler.UploadPhotos) // POST /upload
	}
}
