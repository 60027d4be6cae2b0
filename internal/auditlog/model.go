package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id"`  // nullable (admin actions, failed logins)
	AdminID   *uint          `gorm:"index" json:"admin_id"` // nullable (user actions)
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	Details   datatypes.JSON `gorm:"type:jsonb" json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Well-known audit actions
const (
	ActionUserRegister        = "USER_REGISTER"
	ActionUserLogin           = "USER_LOGIN"
	ActionAdminLogin          = "ADMIN_LOGIN"
	ActionTicketPurchase      = "TICKET_PURCHASE"
	ActionTicketDelete        = "TICKET_DELETE"
	ActionPaymentCreate       = "PAYMENT_CREATE"
	ActionPaymentStatusChange = "PAYMENT_STATUS_CHANGE"
	ActionEventCreate         = "EVENT_CREATE"
	ActionEventUpdate         = "EVENT_UPDATE"
	ActionEventDelete         = "EVENT_DELETE"
)

// AuditLogFilter represents filters for querying audit logs
type AuditLogFilter struct {
	UserID   *uint      `json:"user_id"`
	AdminID  *uint      `json:"admin_id"`
	Action   string     `json:"action"`
	Status   string     `json:"status"`
	FromDate *time.Time `json:"from_date"`
	ToDate   *time.Time `json:"to_date"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}

// PaginatedAuditLogs represents a paginated audit log response
type PaginatedAuditLogs struct {
	Data       []AuditLog `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}
