package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// RequestIDHeader 请求ID响应头
const RequestIDHeader = "X-Request-ID"

// slowRequestThreshold 超过这个耗时记录Warn
const slowRequestThreshold = 3 * time.Second

// RequestLogger 请求日志中间件
//
// 教学要点:
// 1. 每个请求生成request_id(客户端带了X-Request-ID就沿用),写回响应头
// 2. 带request_id/trace_id的Entry放进request context,
//    下游用logger.FromContext(ctx)取到同一个Entry
// 3. 请求结束记录方法、路由、状态码、耗时,5xx用Error级别
//
// 必须注册在Tracing之后,否则拿不到trace_id
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := c.Request.Context()
		fields := logrus.Fields{"request_id": requestID}
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			fields["trace_id"] = traceID
		}
		entry := log.WithFields(fields)
		c.Request = c.Request.WithContext(logger.WithEntry(ctx, entry))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		entry = entry.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"route":     c.FullPath(),
			"status":    status,
			"latency":   latency.String(),
			"client_ip": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("请求处理失败")
		case latency > slowRequestThreshold:
			entry.Warn("慢请求")
		default:
			entry.Info("请求完成")
		}
	}
}
