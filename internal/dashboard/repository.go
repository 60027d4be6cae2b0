package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	EventsByCategory(ctx context.Context, r DateRange) ([]CategoryCount, error)
	EventsByVenue(ctx context.Context, r DateRange) ([]VenueCount, error)
	RevenueByMonth(ctx context.Context, r DateRange) ([]MonthlyRevenue, error)
	TicketSalesTrend(ctx context.Context, r DateRange) ([]DailyCount, error)
	TopEvents(ctx context.Context, limit int) ([]TopEvent, error)
	TopVenues(ctx context.Context, limit int) ([]VenueCount, error)
	UserRegistrationTrend(ctx context.Context, days int) ([]DailyCount, error)
	PaymentMethodBreakdown(ctx context.Context) ([]MethodBreakdown, error)
	TicketSaleRows(ctx context.Context, r DateRange) ([]TicketSaleRow, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	db := r.db.WithContext(ctx)
	var s Stats

	if err := db.Table("events").Count(&s.TotalEvents).Error; err != nil {
		return nil, err
	}
	if err := db.Table("users").Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("tickets").Count(&s.TotalTickets).Error; err != nil {
		return nil, err
	}
	if err := db.Table("payments").Count(&s.TotalPayments).Error; err != nil {
		return nil, err
	}

	// Revenue counts completed payments only
	if err := db.Table("payments").
		Where("status = ?", "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalRevenue).Error; err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if err := db.Table("events").
		Where("event_date >= ?", today).
		Count(&s.ActiveEvents).Error; err != nil {
		return nil, err
	}

	horizon := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	if err := db.Table("events").
		Where("event_date >= ? AND event_date <= ?", today, horizon).
		Count(&s.UpcomingEvents).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

func applyRange(q *gorm.DB, column string, r DateRange) *gorm.DB {
	if !r.From.IsZero() {
		q = q.Where(column+" >= ?", r.From)
	}
	if !r.To.IsZero() {
		q = q.Where(column+" <= ?", r.To)
	}
	return q
}

func (r *repository) EventsByCategory(ctx context.Context, dr DateRange) ([]CategoryCount, error) {
	var rows []CategoryCount
	q := r.db.WithContext(ctx).Table("events").
		Select("categories.category_name, COUNT(events.id) AS count").
		Joins("JOIN categories ON categories.id = events.category_id").
		Group("categories.category_name").
		Order("count DESC")
	err := applyRange(q, "events.event_date", dr).Scan(&rows).Error
	return rows, err
}

func (r *repository) EventsByVenue(ctx context.Context, dr DateRange) ([]VenueCount, error) {
	var rows []VenueCount
	q := r.db.WithContext(ctx).Table("events").
		Select("venues.venue_name, COUNT(events.id) AS count").
		Joins("JOIN venues ON venues.id = events.venue_id").
		Group("venues.venue_name").
		Order("count DESC")
	err := applyRange(q, "events.event_date", dr).Scan(&rows).Error
	return rows, err
}

func (r *repository) RevenueByMonth(ctx context.Context, dr DateRange) ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue
	q := r.db.WithContext(ctx).Table("payments").
		Select("TO_CHAR(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS revenue").
		Where("status = ?", "completed").
		Group("month").
		Order("month ASC")
	err := applyRange(q, "payment_date", dr).Scan(&rows).Error
	return rows, err
}

func (r *repository) TicketSalesTrend(ctx context.Context, dr DateRange) ([]DailyCount, error) {
	var rows []DailyCount
	q := r.db.WithContext(ctx).Table("tickets").
		Select("TO_CHAR(purchase_date, 'YYYY-MM-DD') AS date, COUNT(id) AS count").
		Group("date").
		Order("date ASC")
	err := applyRange(q, "purchase_date", dr).Scan(&rows).Error
	return rows, err
}

func (r *repository) TopEvents(ctx context.Context, limit int) ([]TopEvent, error) {
	var rows []TopEvent
	err := r.db.WithContext(ctx).Table("tickets").
		Select("events.id AS event_id, events.event_name, COUNT(tickets.id) AS tickets_sold").
		Joins("JOIN events ON events.id = tickets.event_id").
		Group("events.id, events.event_name").
		Order("tickets_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopVenues(ctx context.Context, limit int) ([]VenueCount, error) {
	var rows []VenueCount
	err := r.db.WithContext(ctx).Table("events").
		Select("venues.venue_name, COUNT(events.id) AS count").
		Joins("JOIN venues ON venues.id = events.venue_id").
		Group("venues.venue_name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UserRegistrationTrend(ctx context.Context, days int) ([]DailyCount, error) {
	var rows []DailyCount
	since := time.Now().AddDate(0, 0, -days)
	err := r.db.WithContext(ctx).Table("users").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COUNT(id) AS count").
		Where("created_at >= ?", since).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) PaymentMethodBreakdown(ctx context.Context) ([]MethodBreakdown, error) {
	var rows []MethodBreakdown
	err := r.db.WithContext(ctx).Table("payments").
		Select("payment_method, COUNT(id) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", "completed").
		Group("payment_method").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TicketSaleRows(ctx context.Context, dr DateRange) ([]TicketSaleRow, error) {
	var rows []TicketSaleRow
	q := r.db.WithContext(ctx).Table("tickets").
		Select(`tickets.id AS ticket_id, events.event_name, users.username,
			tickets.purchase_date,
			COALESCE(payments.amount, 0) AS amount,
			COALESCE(payments.payment_method, '') AS payment_method,
			COALESCE(payments.status, 'unpaid') AS payment_status`).
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN users ON users.id = tickets.user_id").
		Joins("LEFT JOIN payments ON payments.ticket_id = tickets.id").
		Order("tickets.purchase_date DESC")
	err := applyRange(q, "tickets.purchase_date", dr).Scan(&rows).Error
	return rows, err
}
