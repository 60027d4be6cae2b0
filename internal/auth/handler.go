package auth

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

func userPayload(u *User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"juandelacruz"`
	Email    string `json:"email" binding:"required,email" example:"juan@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
}

// Register godoc
// @Summary      Register a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "registration payload"
// @Success      201 {object} map[string]interface{}
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), RegisterInput(req))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	details := map[string]interface{}{"username": user.Username, "email": user.Email}
	_ = h.audit.LogAction(c.Request.Context(), &user.ID, nil, auditlog.ActionUserRegister, details, middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    userPayload(user),
	})
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email" example:"juan@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	tokens, user, err := h.service.Login(c.Request.Context(), LoginInput(req))
	if err != nil {
		details := map[string]interface{}{"email": req.Email}
		_ = h.audit.LogAction(c.Request.Context(), nil, nil, auditlog.ActionUserLogin, details, ip, "failure")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	details := map[string]interface{}{"email": user.Email}
	_ = h.audit.LogAction(c.Request.Context(), &user.ID, nil, auditlog.ActionUserLogin, details, ip, "success")

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         userPayload(user),
	})
}

// ===============================
// Refresh Token
// ===============================

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ===============================
// Logout
// ===============================

func (h *Handler) Logout(c *gin.Context) {
	_ = h.service.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ===============================
// Forgot / Reset Password
// ===============================

type forgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Do not leak whether the email exists
	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link was sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link was sent"})
}

type resetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// ===============================
// Profile
// ===============================

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

type updateProfileReq struct {
	Username        string `json:"username" binding:"omitempty,min=3,max=100"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	user, err := h.service.UpdateProfile(c.Request.Context(), userID, UpdateProfileInput(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    userPayload(user),
	})
}
