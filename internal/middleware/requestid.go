package middleware

import (
	"time"

	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or mints one, echoes it on the
// response and logs the request once it completes.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Header(RequestIDHeader, id)
		ctx.Set(types.ContextRequestIDKey, id)

		start := time.Now()
		ctx.Next()

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
