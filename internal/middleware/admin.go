package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// RequireAdmin restricts a route to users whose role is admin. Must run after
// RequireAuth.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "No credentials provided")
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		admin, err := authService.IsAdmin(user)
		if err != nil {
			apierrors.InternalError(c, "Failed to resolve role")
			c.Abort()
			return
		}
		if !admin {
			apierrors.Forbidden(c, "Admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
