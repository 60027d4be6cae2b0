package event

import (
	"context"
	"errors"
	"math"
	"time"
)

var (
	ErrEventNotFound   = errors.New("Event not found")
	ErrEventHasTickets = errors.New("Cannot delete event with existing tickets")
	ErrInvalidDate     = errors.New("event_date must be in YYYY-MM-DD format")
	ErrInvalidTime     = errors.New("event_time must be in HH:MM format")
)

// Default card images per category, used when an event is created without
// an image
var defaultImages = map[string]string{
	"Music":      "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=800",
	"Conference": "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
	"Workshop":   "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
	"Festival":   "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800",
	"Theater":    "https://images.unsplash.com/photo-1507676184212-d03ab07a01bf?w=800",
	"Sports":     "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800",
}

const defaultImage = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800"

const defaultPageSize = 15

// CategoryLookup resolves a category name for default image selection.
// Satisfied by the category service.
type CategoryLookup interface {
	CategoryName(ctx context.Context, id uint) (string, error)
}

type Service interface {
	List(ctx context.Context, f Filter) (*PaginatedEvents, error)
	Get(ctx context.Context, id uint) (*Event, error)
	Create(ctx context.Context, adminID uint, req CreateEventRequest) (*Event, error)
	Update(ctx context.Context, id uint, req UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, id uint) error
	ListByAdmin(ctx context.Context, adminID uint, f Filter) (*PaginatedEvents, error)
	SetImageURL(ctx context.Context, id uint, imageURL string) (*Event, error)
}

type service struct {
	repo       Repository
	categories CategoryLookup
}

func NewService(repo Repository, categories CategoryLookup) Service {
	return &service{repo: repo, categories: categories}
}

// fillAvailability derives available_tickets from the joined sold count,
// clamped at zero
func fillAvailability(e *Event) {
	remaining := e.TotalTickets - e.TicketsSold
	if remaining < 0 {
		remaining = 0
	}
	e.AvailableTickets = remaining
}

func normalizeFilter(f *Filter) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = defaultPageSize
	}
}

func paginate(events []Event, total int64, f Filter) *PaginatedEvents {
	for i := range events {
		fillAvailability(&events[i])
	}
	return &PaginatedEvents{
		Data:       events,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}
}

func (s *service) List(ctx context.Context, f Filter) (*PaginatedEvents, error) {
	normalizeFilter(&f)
	events, total, err := s.repo.FindPublic(ctx, f)
	if err != nil {
		return nil, err
	}
	return paginate(events, total, f), nil
}

func (s *service) Get(ctx context.Context, id uint) (*Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	fillAvailability(e)
	return e, nil
}

func (s *service) ListByAdmin(ctx context.Context, adminID uint, f Filter) (*PaginatedEvents, error) {
	normalizeFilter(&f)
	events, total, err := s.repo.FindByAdmin(ctx, adminID, f)
	if err != nil {
		return nil, err
	}
	return paginate(events, total, f), nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func validTime(raw string) bool {
	_, err := time.Parse("15:04", raw)
	return err == nil
}

func (s *service) Create(ctx context.Context, adminID uint, req CreateEventRequest) (*Event, error) {
	date, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	eventTime := req.EventTime
	if eventTime == "" {
		eventTime = "00:00"
	} else if !validTime(eventTime) {
		return nil, ErrInvalidTime
	}

	totalTickets := req.TotalTickets
	if totalTickets == 0 {
		totalTickets = 100
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = defaultImage
		if name, err := s.categories.CategoryName(ctx, req.CategoryID); err == nil {
			if url, ok := defaultImages[name]; ok {
				imageURL = url
			}
		}
	}

	e := &Event{
		AdminID:      adminID,
		EventName:    req.EventName,
		EventDate:    date,
		EventTime:    eventTime,
		CategoryID:   req.CategoryID,
		VenueID:      req.VenueID,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		TotalTickets: totalTickets,
		ImageURL:     imageURL,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return s.Get(ctx, e.ID)
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEventRequest) (*Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if req.EventName != nil {
		e.EventName = *req.EventName
	}
	if req.EventDate != nil {
		date, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		e.EventDate = date
	}
	if req.EventTime != nil {
		if !validTime(*req.EventTime) {
			return nil, ErrInvalidTime
		}
		e.EventTime = *req.EventTime
	}
	if req.CategoryID != nil {
		e.CategoryID = *req.CategoryID
	}
	if req.VenueID != nil {
		e.VenueID = *req.VenueID
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.BasePrice != nil {
		e.BasePrice = *req.BasePrice
	}
	if req.TotalTickets != nil {
		e.TotalTickets = *req.TotalTickets
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}

	// Preloaded associations must not be written back
	e.Category = nil
	e.Venue = nil

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete refuses to remove an event that already sold tickets
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrEventNotFound
	}

	sold, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return err
	}
	if sold > 0 {
		return ErrEventHasTickets
	}

	return s.repo.Delete(ctx, id)
}

// SetImageURL updates just the image after an upload
func (s *service) SetImageURL(ctx context.Context, id uint, imageURL string) (*Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	e.ImageURL = imageURL
	e.Category = nil
	e.Venue = nil
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
