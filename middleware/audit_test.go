package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuditContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/events", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIPForwardedForWins(t *testing.T) {
	c := newAuditContext(t, "10.0.0.1:52000", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"X-Real-Ip":       "198.51.100.2",
	})

	require.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIPRealIPFallback(t *testing.T) {
	c := newAuditContext(t, "10.0.0.1:52000", map[string]string{
		"X-Real-Ip": "198.51.100.2",
	})

	require.Equal(t, "198.51.100.2", clientIP(c))
}

func TestClientIPIgnoresGarbageHeader(t *testing.T) {
	c := newAuditContext(t, "10.0.0.1:52000", map[string]string{
		"X-Forwarded-For": "not-an-ip",
	})

	require.Equal(t, "10.0.0.1", clientIP(c))
}

func TestClientIPRemoteAddrFallback(t *testing.T) {
	c := newAuditContext(t, "192.0.2.44:40123", nil)

	require.Equal(t, "192.0.2.44", clientIP(c))
}

func TestAuditMiddlewareStoresIP(t *testing.T) {
	c := newAuditContext(t, "192.0.2.44:40123", nil)

	AuditMiddleware()(c)

	require.Equal(t, "192.0.2.44", GetIPFromContext(c))
}
