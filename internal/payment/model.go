package payment

import "time"

// Payment statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Canonical payment methods. Hyphenated client variants are normalized
// before validation.
var AllowedMethods = []string{
	"credit_card",
	"debit_card",
	"gcash",
	"paymaya",
	"paypal",
	"bank_transfer",
}

// Payment represents the payments table. One payment per ticket,
// enforced both by the unique index and the duplicate check in the
// service.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID      uint      `gorm:"not null;uniqueIndex" json:"ticket_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:30;not null" json:"payment_method"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	Status        string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}
