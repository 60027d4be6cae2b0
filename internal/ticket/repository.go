package ticket

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// WithTx runs fn against a transaction-scoped copy of the repository.
	// The purchase flow depends on this so the event lock and the insert
	// commit together.
	WithTx(ctx context.Context, fn func(txRepo Repository) error) error

	LockEventForPurchase(ctx context.Context, eventID uint) (*PurchaseEvent, error)
	CountSold(ctx context.Context, eventID uint) (int64, error)
	Create(ctx context.Context, t *Ticket) error

	FindByUser(ctx context.Context, userID uint, page, limit int) ([]Ticket, int64, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Ticket, error)
	FindAll(ctx context.Context, page, limit int) ([]Ticket, int64, error)
	HasPayment(ctx context.Context, ticketID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) WithTx(ctx context.Context, fn func(txRepo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

// LockEventForPurchase reads the event row FOR UPDATE. Inside WithTx this
// serializes concurrent purchases of the same event; the availability
// recount that follows is therefore race-free.
func (r *repository) LockEventForPurchase(ctx context.Context, eventID uint) (*PurchaseEvent, error) {
	var ev PurchaseEvent
	err := r.db.WithContext(ctx).
		Table("events").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id, event_name, event_date, total_tickets, base_price").
		Where("id = ?", eventID).
		Take(&ev).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *repository) CountSold(ctx context.Context, eventID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Ticket{}).
		Where("event_id = ?", eventID).
		Count(&total).Error
	return total, err
}

func (r *repository) Create(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func withPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Event").
		Preload("Event.Category").
		Preload("Event.Venue").
		Preload("Payment")
}

func (r *repository) FindByUser(ctx context.Context, userID uint, page, limit int) ([]Ticket, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&Ticket{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []Ticket
	err := withPreloads(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *repository) FindByIDAndUser(ctx context.Context, id, userID uint) (*Ticket, error) {
	var t Ticket
	err := withPreloads(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll is the admin view across all users
func (r *repository) FindAll(ctx context.Context, page, limit int) ([]Ticket, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []Ticket
	err := withPreloads(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *repository) HasPayment(ctx context.Context, ticketID uint) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("payments").
		Where("ticket_id = ?", ticketID).
		Count(&total).Error
	return total > 0, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Ticket{}, id).Error
}
