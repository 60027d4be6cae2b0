package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func rangeFromQuery(c *gin.Context) DateRange {
	var r DateRange
	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			r.From = t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			r.To = t.Add(24*time.Hour - time.Second)
		}
	}
	return r
}

// GetStats godoc
// @Summary      Dashboard headline numbers
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Stats
// @Router       /admin/dashboard/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetReports(c *gin.Context) {
	reports, err := h.service.GetReports(c.Request.Context(), rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	analytics, err := h.service.GetAnalytics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// ExportReports streams the ticket sales report as csv, excel or pdf
func (h *Handler) ExportReports(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	data, filename, contentType, err := h.service.ExportTicketSales(c.Request.Context(), format, rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
