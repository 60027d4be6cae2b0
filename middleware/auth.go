package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eventgate/ticketing-backend/config"
)

// UserVerifier confirms the account behind a user token still exists.
// Satisfied by the auth service.
type UserVerifier interface {
	VerifyUser(ctx context.Context, userID uint) error
}

// AdminVerifier resolves the role and active flag for an admin token.
// Satisfied by the admin service.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, adminID uint) (role string, active bool, err error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func parseClaims(tokenStr, secret string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// AuthMiddleware validates user bearer tokens and stores the user id in
// the request context
func AuthMiddleware(cfg *config.Config, users UserVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed Authorization header"})
			return
		}

		claims, ok := parseClaims(tokenStr, cfg.JWTAccessSecret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Admin tokens are not valid on user routes
		if subject, _ := claims["subject"].(string); subject != "user" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id missing in token"})
			return
		}

		userID := uint(userIDFloat)
		if err := users.VerifyUser(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set("user_id", userID)
		c.Set("claims", claims)
		c.Next()
	}
}

// AdminAuthMiddleware validates admin bearer tokens. Admin accounts live in
// their own table, so this is a separate chain from AuthMiddleware.
func AdminAuthMiddleware(cfg *config.Config, admins AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed Authorization header"})
			return
		}

		claims, ok := parseClaims(tokenStr, cfg.JWTAccessSecret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if subject, _ := claims["subject"].(string); subject != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		adminIDFloat, ok := claims["admin_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin_id missing in token"})
			return
		}

		adminID := uint(adminIDFloat)
		role, active, err := admins.VerifyAdmin(c.Request.Context(), adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin account is deactivated"})
			return
		}

		c.Set("admin_id", adminID)
		c.Set("admin_role", role)
		c.Set("claims", claims)
		c.Next()
	}
}
