package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventgate/ticketing-backend/internal/auditlog"
	"github.com/eventgate/ticketing-backend/middleware"
)

type Handler struct {
	service Service
	audit   auditlog.Service
}

func NewHandler(s Service, audit auditlog.Service) *Handler {
	return &Handler{service: s, audit: audit}
}

func adminPayload(a *Admin) gin.H {
	return gin.H{
		"id":            a.ID,
		"admin_name":    a.AdminName,
		"email":         a.Email,
		"role":          a.Role,
		"last_login_at": a.LastLoginAt,
	}
}

// ===============================
// Admin Login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email" example:"admin@ticketing.com"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	token, adm, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		details := map[string]interface{}{"email": req.Email, "reason": err.Error()}
		_ = h.audit.LogAction(c.Request.Context(), nil, nil, auditlog.ActionAdminLogin, details, ip, "failure")

		if errors.Is(err, ErrAccountDisabled) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	details := map[string]interface{}{"email": adm.Email, "role": adm.Role}
	_ = h.audit.LogAction(c.Request.Context(), nil, &adm.ID, auditlog.ActionAdminLogin, details, ip, "success")

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"admin":       adminPayload(adm),
	})
}

// Me returns the authenticated admin's profile
func (h *Handler) Me(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	adm, err := h.service.GetAdminByID(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": adminPayload(adm)})
}

func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
