package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/eventgate/ticketing-backend/config"
)

type stubUserVerifier struct {
	err error
}

func (s *stubUserVerifier) VerifyUser(ctx context.Context, userID uint) error {
	return s.err
}

type stubAdminVerifier struct {
	role   string
	active bool
	err    error
}

func (s *stubAdminVerifier) VerifyAdmin(ctx context.Context, adminID uint) (string, bool, error) {
	return s.role, s.active, s.err
}

const testSecret = "access-secret"

func testAuthConfig() *config.Config {
	return &config.Config{JWTAccessSecret: testSecret}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, userID uint) string {
	return signToken(t, jwt.MapClaims{"user_id": userID, "subject": "user"})
}

func adminToken(t *testing.T, adminID uint) string {
	return signToken(t, jwt.MapClaims{"admin_id": adminID, "subject": "admin", "role": "admin"})
}

func serve(handlers []gin.HandlerFunc, token string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint("user_id"),
			"admin_id": c.GetUint("admin_id"),
		})
	})
	r.GET("/protected", chain...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsUserToken(t *testing.T) {
	mw := AuthMiddleware(testAuthConfig(), &stubUserVerifier{})

	w := serve([]gin.HandlerFunc{mw}, userToken(t, 7))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	mw := AuthMiddleware(testAuthConfig(), &stubUserVerifier{})

	w := serve([]gin.HandlerFunc{mw}, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsAdminToken(t *testing.T) {
	mw := AuthMiddleware(testAuthConfig(), &stubUserVerifier{})

	w := serve([]gin.HandlerFunc{mw}, adminToken(t, 1))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsDeletedUser(t *testing.T) {
	mw := AuthMiddleware(testAuthConfig(), &stubUserVerifier{err: errors.New("record not found")})

	w := serve([]gin.HandlerFunc{mw}, userToken(t, 7))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddlewareAcceptsAdminToken(t *testing.T) {
	mw := AdminAuthMiddleware(testAuthConfig(), &stubAdminVerifier{role: RoleAdmin, active: true})

	w := serve([]gin.HandlerFunc{mw}, adminToken(t, 3))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"admin_id":3`)
}

func TestAdminAuthMiddlewareRejectsUserToken(t *testing.T) {
	mw := AdminAuthMiddleware(testAuthConfig(), &stubAdminVerifier{role: RoleAdmin, active: true})

	w := serve([]gin.HandlerFunc{mw}, userToken(t, 7))

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuthMiddlewareRejectsDeactivated(t *testing.T) {
	mw := AdminAuthMiddleware(testAuthConfig(), &stubAdminVerifier{role: RoleAdmin, active: false})

	w := serve([]gin.HandlerFunc{mw}, adminToken(t, 3))

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRoleGatesOnStoredRole(t *testing.T) {
	auth := AdminAuthMiddleware(testAuthConfig(), &stubAdminVerifier{role: "support", active: true})

	w := serve([]gin.HandlerFunc{auth, RequireAdminRole(RoleAdmin)}, adminToken(t, 3))

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRoleSuperadminOverride(t *testing.T) {
	auth := AdminAuthMiddleware(testAuthConfig(), &stubAdminVerifier{role: RoleSuperAdmin, active: true})

	w := serve([]gin.HandlerFunc{auth, RequireAdminRole(RoleAdmin)}, adminToken(t, 3))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRoleWithoutAuth(t *testing.T) {
	w := serve([]gin.HandlerFunc{RequireAdminRole(RoleAdmin)}, adminToken(t, 3))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
