package event

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventgate/ticketing-backend/config"
	"github.com/eventgate/ticketing-backend/internal/auditlog"
	"github.com/eventgate/ticketing-backend/middleware"
)

type Handler struct {
	service Service
	audit   auditlog.Service
	cfg     *config.Config
}

func NewHandler(s Service, audit auditlog.Service, cfg *config.Config) *Handler {
	return &Handler{service: s, audit: audit, cfg: cfg}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return uint(id), true
}

// filterFromQuery maps the public query surface onto the repository filter
func filterFromQuery(c *gin.Context) Filter {
	f := Filter{
		Search:      c.Query("search"),
		IncludePast: c.Query("include_past") == "true",
	}
	if v := c.Query("category_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			cid := uint(id)
			f.CategoryID = &cid
		}
	}
	if v := c.Query("venue_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			vid := uint(id)
			f.VenueID = &vid
		}
	}
	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.StartDate = &t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.EndDate = &t
		}
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "15"))
	return f
}

// ===============================
// Public endpoints
// ===============================

// List godoc
// @Summary      Browse upcoming events
// @Tags         events
// @Produce      json
// @Param        category_id query int false "Filter by category"
// @Param        venue_id query int false "Filter by venue"
// @Param        start_date query string false "From date (YYYY-MM-DD)"
// @Param        end_date query string false "To date (YYYY-MM-DD)"
// @Param        search query string false "Match name or description"
// @Param        include_past query bool false "Include past events"
// @Success      200 {object} PaginatedEvents
// @Router       /events [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrEventNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": e})
}

// ===============================
// Admin endpoints
// ===============================

func (h *Handler) AdminList(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	result, err := h.service.ListByAdmin(c.Request.Context(), adminID, filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID := c.GetUint("admin_id")
	e, err := h.service.Create(c.Request.Context(), adminID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	details := map[string]interface{}{"event_id": e.ID, "event_name": e.EventName}
	_ = h.audit.LogAction(c.Request.Context(), nil, &adminID, auditlog.ActionEventCreate, details, middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	adminID := c.GetUint("admin_id")
	details := map[string]interface{}{"event_id": e.ID}
	_ = h.audit.LogAction(c.Request.Context(), nil, &adminID, auditlog.ActionEventUpdate, details, middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEventHasTickets):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	adminID := c.GetUint("admin_id")
	details := map[string]interface{}{"event_id": id}
	_ = h.audit.LogAction(c.Request.Context(), nil, &adminID, auditlog.ActionEventDelete, details, middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// UploadImage stores a multipart event image under the public uploads dir
// and points the event at it. Max 5MB, common image extensions only.
func (h *Handler) UploadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	if file.Size > h.cfg.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must not exceed 5MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	uploadDir := filepath.Join(h.cfg.UploadDir, "events")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst := filepath.Join(uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	imageURL := fmt.Sprintf("%s/uploads/events/%s", config.BaseURL, filename)
	e, err := h.service.SetImageURL(c.Request.Context(), id, imageURL)
	if err != nil {
		_ = os.Remove(dst)
		c.JSON(http.StatusNotFound, gin.H{"error": ErrEventNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": e})
}
