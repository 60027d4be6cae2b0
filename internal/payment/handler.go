package payment

import (
	"errors"
	"net/http"
	"strconv"

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

type createReq struct {
	TicketID      uint    `json:"ticket_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,min=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

// Create godoc
// @Summary      Record a payment for a ticket
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body createReq true "payment payload"
// @Success      201 {object} map[string]interface{}
// @Router       /payments [post]
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	ip := middleware.GetIPFromContext(c)

	p, err := h.service.Create(c.Request.Context(), userID, CreateInput(req))
	if err != nil {
		details := map[string]interface{}{"ticket_id": req.TicketID, "reason": err.Error()}
		_ = h.audit.LogAction(c.Request.Context(), &userID, nil, auditlog.ActionPaymentCreate, details, ip, "failure")

		switch {
		case errors.Is(err, ErrTicketNotOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDuplicatePayment), errors.Is(err, ErrInvalidMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		}
		return
	}

	details := map[string]interface{}{
		"ticket_id":  p.TicketID,
		"payment_id": p.ID,
		"amount":     p.Amount,
		"method":     p.PaymentMethod,
	}
	_ = h.audit.LogAction(c.Request.Context(), &userID, nil, auditlog.ActionPaymentCreate, details, ip, "success")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded",
		"payment": p,
	})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetUint("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	result, err := h.service.ListByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	userID := c.GetUint("user_id")
	p, err := h.service.Get(c.Request.Context(), uint(id), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrPaymentNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": p})
}

// ===============================
// Admin endpoints
// ===============================

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		}
		return
	}

	adminID := c.GetUint("admin_id")
	ip := middleware.GetIPFromContext(c)
	details := map[string]interface{}{"payment_id": p.ID, "status": p.Status}
	_ = h.audit.LogAction(c.Request.Context(), nil, &adminID, auditlog.ActionPaymentStatusChange, details, ip, "success")

	c.JSON(http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	result, err := h.service.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, result)
}
