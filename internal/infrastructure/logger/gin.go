package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ginLoggerKey is the gin store key GetGinLogger reads.
const ginLoggerKey = "logger"

// GinMiddleware logs one line per request and seeds the request context with
// a request-scoped logger carrying request_id, trace_id and span_id.
// Downstream code retrieves it with FromContext; the GORM logger reads the
// request ID out of the same context for SQL log correlation.
func GinMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		ctx := c.Request.Context()
		reqLog := WithTraceContext(ctx, base)
		if rid := c.GetString("request_id"); rid != "" {
			ctx, reqLog = WithRequestID(ctx, reqLog, rid)
		} else {
			ctx = WithContext(ctx, reqLog)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set(ginLoggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if ua := c.Request.UserAgent(); ua != "" {
			fields = append(fields, zap.String("user_agent", ua))
		}
		// Statement confirmations and deletions are attributed to the bearer
		// token subject, so the access log carries the same identity. The auth
		// middleware stores it in the request context after this middleware
		// has run its pre-Next half.
		if userID := GetUserID(c.Request.Context()); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Error("HTTP Request", fields...)
		case status >= http.StatusBadRequest:
			reqLog.Warn("HTTP Request", fields...)
		default:
			reqLog.Info("HTTP Request", fields...)
		}
	}
}

// Recovery converts panics into 500 responses with a stack trace in the log.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := base
				if reqLog, ok := c.Request.Context().Value(LoggerKey).(*zap.Logger); ok {
					log = reqLog
				}
				log.Error("Panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", r),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// GetGinLogger returns the request-scoped logger for handlers that only have
// the gin context. Falls back to the one in the request context, then to a
// no-op logger.
func GetGinLogger(c *gin.Context) *zap.Logger {
	if log, exists := c.Get(ginLoggerKey); exists {
		if l, ok := log.(*zap.Logger); ok {
			return l
		}
	}
	return FromContext(c.Request.Context())
}
