package middleware

import (
	"strings"

	"bbdap/backend/internal/api/response"
	"bbdap/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key under which the authenticated
	// user's id is stored.
	ContextUserID = "user_id"
	// ContextUsername is the gin context key for the authenticated username.
	ContextUsername = "username"
)

// RequireAuth verifies the bearer token on every request before the handler
// runs. The Authorization header is accepted both with and without the
// "Bearer " prefix, since clients in the wild send either.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's id from the gin context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
