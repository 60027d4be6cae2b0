package ticket

import (
	"time"

	"github.com/eventgate/ticketing-backend/internal/event"
	"github.com/eventgate/ticketing-backend/internal/payment"
)

// Ticket represents the tickets table. Tickets are immutable after
// purchase; the only mutation allowed is deletion while no payment exists.
type Ticket struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	EventID      uint      `gorm:"not null;index" json:"event_id"`
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Event   *event.Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Payment *payment.Payment `gorm:"foreignKey:TicketID" json:"payment,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// PurchaseEvent is the slice of the event row read under the purchase lock
type PurchaseEvent struct {
	ID           uint
	EventName    string
	EventDate    time.Time
	TotalTickets int
	BasePrice    float64
}

type PaginatedTickets struct {
	Data       []Ticket `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
