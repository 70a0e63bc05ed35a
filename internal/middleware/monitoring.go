package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/monitoring"
)

// HTTPMetrics HTTP 指标中间件
func HTTPMetrics(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		statusCode := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), statusCode, duration)

		if c.Writer.Status() >= 400 {
			metrics.RecordError("http_error", "http")
		}
	}
}

// BusinessMetrics 业务指标中间件，按路径记录成功的写操作。
func BusinessMetrics(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "POST" || c.Writer.Status() >= 400 {
			return
		}

		switch c.FullPath() {
		case "/api/users":
			metrics.UsersRegistered.Inc()
		case "/api/conversations":
			metrics.ConversationsCreated.Inc()
		case "/api/messages":
			metrics.MessagesSent.Inc()
		case "/api/emails":
			metrics.EmailsSent.Inc()
		}
	}
}
