package event

import (
	"time"

	"github.com/eventgate/ticketing-backend/internal/category"
	"github.com/eventgate/ticketing-backend/internal/venue"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AdminID      uint      `gorm:"not null;index" json:"admin_id"`
	EventName    string    `gorm:"type:varchar(255);not null" json:"event_name"`
	EventDate    time.Time `gorm:"type:date;not null;index" json:"event_date"`
	EventTime    string    `gorm:"type:varchar(8);not null;default:'00:00'" json:"event_time"` // "15:04"
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	VenueID      uint      `gorm:"not null;index" json:"venue_id"`
	Description  string    `gorm:"type:text" json:"description"`
	BasePrice    float64   `gorm:"type:numeric(10,2);not null;default:0" json:"base_price"`
	TotalTickets int       `gorm:"not null;default:100" json:"total_tickets"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category *category.Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Venue    *venue.Venue       `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	// TicketsSold is filled by the list/detail queries via a join;
	// AvailableTickets is derived from it on every read, never stored.
	TicketsSold      int `gorm:"->;-:migration" json:"-"`
	AvailableTickets int `gorm:"-" json:"available_tickets"`
}

func (Event) TableName() string {
	return "events"
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	EventName    string  `json:"event_name" binding:"required,max=255"`
	EventDate    string  `json:"event_date" binding:"required"` // "2006-01-02"
	EventTime    string  `json:"event_time"`                    // "15:04", defaults to 00:00
	CategoryID   uint    `json:"category_id" binding:"required"`
	VenueID      uint    `json:"venue_id" binding:"required"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price" binding:"omitempty,min=0"`
	TotalTickets int     `json:"total_tickets" binding:"omitempty,min=1"`
	ImageURL     string  `json:"image_url" binding:"omitempty,url"`
}

// ============================
// 🟠 Update Event Request (all fields optional)
type UpdateEventRequest struct {
	EventName    *string  `json:"event_name" binding:"omitempty,max=255"`
	EventDate    *string  `json:"event_date"`
	EventTime    *string  `json:"event_time"`
	CategoryID   *uint    `json:"category_id"`
	VenueID      *uint    `json:"venue_id"`
	Description  *string  `json:"description"`
	BasePrice    *float64 `json:"base_price" binding:"omitempty,min=0"`
	TotalTickets *int     `json:"total_tickets" binding:"omitempty,min=1"`
	ImageURL     *string  `json:"image_url" binding:"omitempty,url"`
}

// ============================
// Filters + pagination

type Filter struct {
	CategoryID  *uint
	VenueID     *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Search      string
	IncludePast bool
	Page        int
	Limit       int
}

type PaginatedEvents struct {
	Data       []Event `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
