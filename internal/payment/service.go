package payment

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/eventgate/ticketing-backend/utils"
)

var (
	ErrTicketNotOwned   = errors.New("Ticket not found or does not belong to you")
	ErrDuplicatePayment = errors.New("Ticket already has a payment")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrPaymentNotFound  = errors.New("Payment not found")
)

const defaultPageSize = 15

type CreateInput struct {
	TicketID      uint
	Amount        float64
	PaymentMethod string
}

type PaginatedPayments struct {
	Data       []Payment `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

type Service interface {
	Create(ctx context.Context, userID uint, input CreateInput) (*Payment, error)
	ListByUser(ctx context.Context, userID uint, page, limit int) (*PaginatedPayments, error)
	Get(ctx context.Context, id, userID uint) (*Payment, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Payment, error)
	ListAll(ctx context.Context, page, limit int) (*PaginatedPayments, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// NormalizeMethod maps client spellings onto the canonical method set
// (hyphens become underscores, case-insensitive)
func NormalizeMethod(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
}

func methodAllowed(method string) bool {
	for _, m := range AllowedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Create records a completed payment for a ticket the caller owns. The
// model is recorded intent: there is no gateway round-trip, the payment is
// final at insert time.
func (s *service) Create(ctx context.Context, userID uint, in CreateInput) (*Payment, error) {
	method := NormalizeMethod(in.PaymentMethod)
	if !methodAllowed(method) {
		return nil, ErrInvalidMethod
	}

	ref, err := s.repo.FindTicketForUser(ctx, in.TicketID, userID)
	if err != nil {
		return nil, ErrTicketNotOwned
	}

	exists, err := s.repo.HasPayment(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePayment
	}

	now := time.Now()
	p := &Payment{
		TicketID:      ref.ID,
		Amount:        in.Amount,
		PaymentMethod: method,
		PaymentDate:   now,
		Status:        StatusCompleted,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Receipt mail is best-effort and must not block the response
	go func(email, eventName string, amount float64, method string, paidAt time.Time) {
		if err := utils.SendPaymentReceipt(email, eventName, amount, method, paidAt); err != nil {
			log.Printf("⚠️ Receipt email failed for payment %d: %v", p.ID, err)
		}
	}(ref.UserEmail, ref.EventName, p.Amount, p.PaymentMethod, now)

	return p, nil
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	return page, limit
}

func (s *service) ListByUser(ctx context.Context, userID uint, page, limit int) (*PaginatedPayments, error) {
	page, limit = normalizePage(page, limit)
	payments, total, err := s.repo.FindByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedPayments{
		Data:       payments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *service) Get(ctx context.Context, id, userID uint) (*Payment, error) {
	p, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

// UpdateStatus is the admin override. Any transition between the four
// statuses is allowed, there is no transition table.
func (s *service) UpdateStatus(ctx context.Context, id uint, status string) (*Payment, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	p.Status = status
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context, page, limit int) (*PaginatedPayments, error) {
	page, limit = normalizePage(page, limit)
	payments, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedPayments{
		Data:       payments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
