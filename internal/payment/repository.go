package payment

import (
	"context"

	"gorm.io/gorm"
)

// TicketRef is the slice of ticket data the payment flow needs: ownership,
// the event name for the receipt and the buyer's email
type TicketRef struct {
	ID        uint
	EventID   uint
	EventName string
	UserEmail string
}

type Repository interface {
	FindTicketForUser(ctx context.Context, ticketID, userID uint) (*TicketRef, error)
	HasPayment(ctx context.Context, ticketID uint) (bool, error)
	Create(ctx context.Context, p *Payment) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Payment, error)
	FindByUser(ctx context.Context, userID uint, page, limit int) ([]Payment, int64, error)
	FindByID(ctx context.Context, id uint) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	FindAll(ctx context.Context, page, limit int) ([]Payment, int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// FindTicketForUser resolves the ticket only when it belongs to the caller
func (r *repository) FindTicketForUser(ctx context.Context, ticketID, userID uint) (*TicketRef, error) {
	var ref TicketRef
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.id, tickets.event_id, events.event_name, users.email AS user_email").
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN users ON users.id = tickets.user_id").
		Where("tickets.id = ? AND tickets.user_id = ?", ticketID, userID).
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) HasPayment(ctx context.Context, ticketID uint) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Payment{}).
		Where("ticket_id = ?", ticketID).
		Count(&total).Error
	return total > 0, err
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

func (r *repository) FindByIDAndUser(ctx context.Context, id, userID uint) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN tickets ON tickets.id = payments.ticket_id").
		Where("payments.id = ? AND tickets.user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByUser(ctx context.Context, userID uint, page, limit int) ([]Payment, int64, error) {
	base := r.db.WithContext(ctx).Model(&Payment{}).
		Joins("JOIN tickets ON tickets.id = payments.ticket_id").
		Where("tickets.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN tickets ON tickets.id = payments.ticket_id").
		Where("tickets.user_id = ?", userID).
		Order("payments.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&payments).Error
	return payments, total, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindAll(ctx context.Context, page, limit int) ([]Payment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&payments).Error
	return payments, total, err
}
