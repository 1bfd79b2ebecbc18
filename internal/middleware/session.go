package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader is the HTTP header carrying the cart session identifier.
	SessionHeader = "X-Cart-Session"
)

const (
	// SessionIDKey is the context key for the cart session ID.
	SessionIDKey ContextKey = "session_id"
)

// Session returns a middleware that ensures each request carries a cart
// session identifier. If the client provides the X-Cart-Session header, it
// is used as-is. Otherwise a new UUID v4 is minted and echoed back so the
// client can persist it for subsequent requests.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the cart session ID from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionIDKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
