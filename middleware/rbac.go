package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin role names
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// RequireAdminRole checks that the authenticated admin holds one of the
// allowed roles. Must run after AdminAuthMiddleware, which stores the
// verified role in the context.
func RequireAdminRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("admin_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin role"})
			return
		}

		// Superadmin passes every role gate
		if role == RoleSuperAdmin {
			c.Next()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
