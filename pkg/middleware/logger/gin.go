package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
)

const RequestIDHeader = "X-Request-Id"

// LogWithWriter 记录每个请求的耗时和状态码，并透传/生成 X-Request-Id
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		reqID := ctx.GetHeader(RequestIDHeader)
		if reqID == "" {
			if id, err := uuid.NewV4(); err == nil {
				reqID = id.String()
			}
		}
		ctx.Set(RequestIDHeader, reqID)
		ctx.Header(RequestIDHeader, reqID)

		ctx.Next()

		status := ctx.Writer.Status()
		latency := time.Since(start)
		if len(ctx.Errors) > 0 || status >= 500 {
			Errorf(ctx, "request_id: %s %s %s status: %d latency: %s errors: %s",
				reqID, ctx.Request.Method, ctx.Request.URL.Path, status, latency, ctx.Errors.String())
			return
		}
		Infof(ctx, "request_id: %s %s %s status: %d latency: %s",
			reqID, ctx.Request.Method, ctx.Request.URL.Path, status, latency)
	}
}
