package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware resolves the real client IP once per request and stores
// it in the context for audit logging
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", clientIP(c))
		c.Next()
	}
}

// clientIP walks the usual proxy headers before falling back to RemoteAddr
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// first hop is the original client
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}

	for _, header := range []string{"X-Real-Ip", "CF-Connecting-IP"} {
		if v := c.GetHeader(header); v != "" && net.ParseIP(v) != nil {
			return v
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// GetIPFromContext retrieves the resolved IP for handlers that log audits
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get("client_ip"); exists {
		if ipStr, ok := ip.(string); ok {
			return ipStr
		}
	}
	return clientIP(c)
}
