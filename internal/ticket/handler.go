package ticket

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

type purchaseReq struct {
	EventID uint `json:"event_id" binding:"required"`
}

// Purchase godoc
// @Summary      Buy one ticket for an event
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request body purchaseReq true "event to purchase for"
// @Success      201 {object} map[string]interface{}
// @Router       /tickets [post]
func (h *Handler) Purchase(c *gin.Context) {
	var req purchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	ip := middleware.GetIPFromContext(c)

	t, err := h.service.Purchase(c.Request.Context(), userID, req.EventID)
	if err != nil {
		details := map[string]interface{}{"event_id": req.EventID, "reason": err.Error()}
		_ = h.audit.LogAction(c.Request.Context(), &userID, nil, auditlog.ActionTicketPurchase, details, ip, "failure")

		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPastEvent), errors.Is(err, ErrSoldOut):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		}
		return
	}

	details := map[string]interface{}{"event_id": req.EventID, "ticket_id": t.ID}
	_ = h.audit.LogAction(c.Request.Context(), &userID, nil, auditlog.ActionTicketPurchase, details, ip, "success")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket purchased",
		"ticket":  t,
	})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetUint("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	result, err := h.service.ListByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	userID := c.GetUint("user_id")
	t, err := h.service.Get(c.Request.Context(), uint(id), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrTicketNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": t})
}

// Update always rejects: tickets are immutable records of purchase
func (h *Handler) Update(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": ErrTicketImmutable.Error()})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	userID := c.GetUint("user_id")
	ip := middleware.GetIPFromContext(c)

	if err := h.service.Delete(c.Request.Context(), uint(id), userID); err != nil {
		switch {
		case errors.Is(err, ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrTicketHasPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ticket"})
		}
		return
	}

	ticketID := uint(id)
	details := map[string]interface{}{"ticket_id": ticketID}
	_ = h.audit.LogAction(c.Request.Context(), &userID, nil, auditlog.ActionTicketDelete, details, ip, "success")

	c.JSON(http.StatusOK, gin.H{"message": "Ticket deleted"})
}

// AdminList lets staff browse every ticket
func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	result, err := h.service.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, result)
}
