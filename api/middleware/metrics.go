package middleware

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	requestCount    atomic.Int64
	requestDuration atomic.Int64 // in milliseconds
)

// Metrics 基础监控指标中间件
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Writer.Header().Set("X-Request-Count", fmt.Sprintf("%d", requestCount.Load()))

		c.Next()

		// 计算请求耗时
		duration := time.Since(startTime)
		requestDuration.Add(duration.Milliseconds())
		requestCount.Add(1)
	}
}

// GetMetrics 获取当前指标
func GetMetrics() map[string]interface{} {
	count := requestCount.Load()
	durationMs := requestDuration.Load()

	avg := float64(0)
	if count > 0 {
		avg = float64(durationMs) / float64(count)
	}

	return map[string]interface{}{
		"request_count":       count,
		"request_duration_ms": durationMs,
		"avg_duration_ms":     avg,
	}
}

// ResetMetrics 重置指标（可选，用于测试或定期重置）
func ResetMetrics() {
	requestCount.Store(0)
	requestDuration.Store(0)
}
