package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/efeurhobobullish/SwiftBuy/utils"
)

// SessionMiddleware resolves the shopping session for cart and checkout
// routes. Guests are welcome: a valid bearer token wins, then the
// X-Session-Id header, and as a last resort a fresh session id is issued
// and echoed back so the client can carry it forward.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := utils.ValidateToken(parts[1]); err == nil {
					c.Set("session_id", claims.SessionID)
					c.Set("user_id", claims.UserID)
					c.Set("user_email", claims.Email)
					c.Next()
					return
				}
			}
		}

		sessionID := strings.TrimSpace(c.GetHeader("X-Session-Id"))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header("X-Session-Id", sessionID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
