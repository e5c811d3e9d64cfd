package requestid

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerName = "X-Request-ID"

type requestIDKey struct{}

// SetRequestIDContext stores the request id into context
func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext retrieves the request id from context
func GetRequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return "unknown"
	}
	return id
}

// Middleware assigns each request an id, honoring one supplied by the caller.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(SetRequestIDContext(c.Request.Context(), id))
		c.Writer.Header().Set(headerName, id)
		c.Next()
	}
}
