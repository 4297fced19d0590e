package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
)

// RequireRole restricts a route to users whose role is in allowed. It must
// run after AuthMiddleware so the user ID is on the context.
func RequireRole(userSvc portssvc.UserReaderSvc, allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]bool, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = true
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Role check failed to load user", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
			return
		}

		if !allowedSet[user.Role] {
			logger.Warn("Role not permitted for route", "role", string(user.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
