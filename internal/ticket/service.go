package ticket

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound    = errors.New("Event not found")
	ErrPastEvent        = errors.New("Cannot purchase tickets for past events")
	ErrSoldOut          = errors.New("No tickets available for this event")
	ErrTicketNotFound   = errors.New("Ticket not found")
	ErrTicketImmutable  = errors.New("Tickets cannot be updated after purchase")
	ErrTicketHasPayment = errors.New("Cannot delete ticket with existing payment")
)

const defaultPageSize = 15

type Service interface {
	Purchase(ctx context.Context, userID, eventID uint) (*Ticket, error)
	ListByUser(ctx context.Context, userID uint, page, limit int) (*PaginatedTickets, error)
	Get(ctx context.Context, id, userID uint) (*Ticket, error)
	Delete(ctx context.Context, id, userID uint) error
	ListAll(ctx context.Context, page, limit int) (*PaginatedTickets, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Purchase creates one ticket for the caller. Preconditions run in order
// inside a single transaction that holds a lock on the event row:
//
//  1. the event exists
//  2. the event date has not passed
//  3. at least one ticket remains
//
// Two simultaneous purchases for the last ticket serialize on the lock,
// so exactly one of them succeeds.
func (s *service) Purchase(ctx context.Context, userID, eventID uint) (*Ticket, error) {
	var created *Ticket

	err := s.repo.WithTx(ctx, func(tx Repository) error {
		ev, err := tx.LockEventForPurchase(ctx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		today := s.now().Truncate(24 * time.Hour)
		if ev.EventDate.Before(today) {
			return ErrPastEvent
		}

		sold, err := tx.CountSold(ctx, eventID)
		if err != nil {
			return err
		}
		if sold >= int64(ev.TotalTickets) {
			return ErrSoldOut
		}

		created = &Ticket{
			UserID:       userID,
			EventID:      eventID,
			PurchaseDate: s.now(),
		}
		return tx.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
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

func (s *service) ListByUser(ctx context.Context, userID uint, page, limit int) (*PaginatedTickets, error) {
	page, limit = normalizePage(page, limit)
	tickets, total, err := s.repo.FindByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedTickets{
		Data:       tickets,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *service) Get(ctx context.Context, id, userID uint) (*Ticket, error) {
	t, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// Delete removes a ticket only while it has no payment attached. Ownership
// is checked first so a foreign ticket reads as not found.
func (s *service) Delete(ctx context.Context, id, userID uint) error {
	t, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return ErrTicketNotFound
	}

	hasPayment, err := s.repo.HasPayment(ctx, t.ID)
	if err != nil {
		return err
	}
	if hasPayment {
		return ErrTicketHasPayment
	}

	return s.repo.Delete(ctx, t.ID)
}

func (s *service) ListAll(ctx context.Context, page, limit int) (*PaginatedTickets, error) {
	page, limit = normalizePage(page, limit)
	tickets, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedTickets{
		Data:       tickets,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
