package middleware

import (
	"staynest/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's X-Request-ID or mints one, echoes it
// back and stores a logger tagged with it on the context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set("requestID", id)
		c.Set(utils.LoggerKey, utils.GetLogger().With(
			zap.String("request_id", id),
			zap.String("path", c.FullPath()),
		))
		c.Next()
	}
}
