package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/eventgate/ticketing-backend/utils"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, adminID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records one audit entry. When Kafka is configured the event is
// published to the audit topic and persisted by the consumer; otherwise it
// is written straight to the table. Audit failures never fail the request.
func (s *service) LogAction(ctx context.Context, userID *uint, adminID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		UserID:    userID,
		AdminID:   adminID,
		Action:    action,
		Details:   detailsJSON,
		IPAddress: ip,
		Status:    status,
	}

	if utils.KafkaEnabled() {
		payload, err := json.Marshal(entry)
		if err == nil {
			if err := utils.PublishAuditEvent(ctx, action, payload); err == nil {
				return nil
			}
			log.Printf("⚠️ Audit publish failed, writing directly: %v", err)
		}
	}

	return s.repo.Create(ctx, entry)
}

// GetAuditLogs retrieves paginated audit logs with filters
func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetAuditLogByID retrieves a specific audit log by ID
func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit log not found: %w", err)
	}
	return entry, nil
}
