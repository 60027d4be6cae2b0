package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAuditLogs handles GET /admin/audit-logs
// @Summary Get audit logs
// @Description Retrieve audit logs with optional filters and pagination (admin only)
// @Tags AuditLog
// @Produce json
// @Param user_id query uint false "Filter by user ID"
// @Param admin_id query uint false "Filter by admin ID"
// @Param action query string false "Filter by action (partial match)"
// @Param status query string false "Filter by status"
// @Param from_date query string false "Filter from date (YYYY-MM-DD)"
// @Param to_date query string false "Filter to date (YYYY-MM-DD)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Records per page (default: 20)"
// @Success 200 {object} PaginatedAuditLogs
// @Router /api/v1/admin/audit-logs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter := AuditLogFilter{}

	if v := c.Query("user_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			uid := uint(id)
			filter.UserID = &uid
		}
	}
	if v := c.Query("admin_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			aid := uint(id)
			filter.AdminID = &aid
		}
	}
	filter.Action = c.Query("action")
	filter.Status = c.Query("status")

	if v := c.Query("from_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.FromDate = &t
		}
	}
	if v := c.Query("to_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// include the whole end day
			end := t.Add(24*time.Hour - time.Second)
			filter.ToDate = &end
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAuditLogByID handles GET /admin/audit-logs/:id
func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit log id"})
		return
	}

	entry, err := h.service.GetAuditLogByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audit log not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
