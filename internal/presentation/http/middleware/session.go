package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
)

const (
	sessionHeaderName = "X-Shelfwise-Session-ID"
	sessionIDKey      = "sessionId"
	userIDKey         = "userId"
)

// SessionMiddleware resolves the session header to a user ID and stores
// both in the gin context. A missing or unresolvable session leaves the
// request in guest mode; it is never rejected.
func SessionMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeaderName)
		c.Set(sessionIDKey, sessionID)
		c.Set(userIDKey, sessions.ResolveUser(c.Request.Context(), sessionID))
		c.Next()
	}
}

// GetSessionID returns the session ID stored by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// GetUserID returns the resolved user ID, or empty for guests.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
