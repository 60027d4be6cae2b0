package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Event, error)
	FindPublic(ctx context.Context, f Filter) ([]Event, int64, error)
	FindByAdmin(ctx context.Context, adminID uint, f Filter) ([]Event, int64, error)
	CountTickets(ctx context.Context, eventID uint) (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

const soldJoin = "LEFT JOIN tickets ON tickets.event_id = events.id"

// baseQuery attaches the sold-ticket count so availability can be derived
// without an extra query per row
func (r *repository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Event{}).
		Select("events.*, COUNT(tickets.id) AS tickets_sold").
		Joins(soldJoin).
		Group("events.id").
		Preload("Category").
		Preload("Venue")
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Event{}, id).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	err := r.baseQuery(ctx).Where("events.id = ?", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func applyFilter(query *gorm.DB, f Filter) *gorm.DB {
	if f.CategoryID != nil {
		query = query.Where("events.category_id = ?", *f.CategoryID)
	}
	if f.VenueID != nil {
		query = query.Where("events.venue_id = ?", *f.VenueID)
	}
	if f.StartDate != nil {
		query = query.Where("events.event_date >= ?", f.StartDate.Format("2006-01-02"))
	}
	if f.EndDate != nil {
		query = query.Where("events.event_date <= ?", f.EndDate.Format("2006-01-02"))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("events.event_name ILIKE ? OR events.description ILIKE ?", like, like)
	}
	return query
}

// FindPublic lists upcoming events ascending by date. Past events are
// excluded unless the filter asks for them.
func (r *repository) FindPublic(ctx context.Context, f Filter) ([]Event, int64, error) {
	query := applyFilter(r.baseQuery(ctx), f)
	if !f.IncludePast {
		query = query.Where("events.event_date >= ?", time.Now().Format("2006-01-02"))
	}

	total, err := r.countFiltered(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	var events []Event
	err = query.Order("events.event_date ASC, events.event_time ASC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&events).Error
	return events, total, err
}

// FindByAdmin lists every event the admin manages, newest first
func (r *repository) FindByAdmin(ctx context.Context, adminID uint, f Filter) ([]Event, int64, error) {
	query := applyFilter(r.baseQuery(ctx), f).Where("events.admin_id = ?", adminID)

	var total int64
	countQ := applyFilter(r.db.WithContext(ctx).Model(&Event{}), f).Where("events.admin_id = ?", adminID)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := query.Order("events.created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&events).Error
	return events, total, err
}

// countFiltered counts without the group-by so pagination totals are exact
func (r *repository) countFiltered(ctx context.Context, f Filter) (int64, error) {
	var total int64
	query := applyFilter(r.db.WithContext(ctx).Model(&Event{}), f)
	if !f.IncludePast {
		query = query.Where("events.event_date >= ?", time.Now().Format("2006-01-02"))
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *repository) CountTickets(ctx context.Context, eventID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("tickets").
		Where("event_id = ?", eventID).
		Count(&total).Error
	return total, err
}
