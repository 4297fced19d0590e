package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID on the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. The second return reports whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}
