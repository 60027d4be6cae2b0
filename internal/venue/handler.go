package venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

type venueReq struct {
	VenueName string `json:"venue_name" binding:"required,max=150" example:"Mall of Asia Arena"`
	Address   string `json:"address" binding:"required,max=255" example:"Pasay City, Metro Manila"`
	Capacity  int    `json:"capacity" binding:"omitempty,min=1" example:"15000"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) List(c *gin.Context) {
	venues, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": v})
}

func (h *Handler) Create(c *gin.Context) {
	var req venueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), Input(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"venue": v})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req venueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, Input(req))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": v})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		case errors.Is(err, ErrVenueInUse):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venue"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}
