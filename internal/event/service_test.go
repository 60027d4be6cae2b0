package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, e *Event) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, e *Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepository) FindPublic(ctx context.Context, f Filter) ([]Event, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Event), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) FindByAdmin(ctx context.Context, adminID uint, f Filter) ([]Event, int64, error) {
	args := m.Called(ctx, adminID, f)
	return args.Get(0).([]Event), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) CountTickets(ctx context.Context, eventID uint) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategories struct {
	mock.Mock
}

func (m *mockCategories) CategoryName(ctx context.Context, id uint) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func TestListFillsAvailability(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindPublic", mock.Anything, mock.Anything).Return([]Event{
		{ID: 1, TotalTickets: 100, TicketsSold: 40},
		{ID: 2, TotalTickets: 10, TicketsSold: 10},
		// Sold can exceed total after an admin shrinks capacity; the
		// derived value clamps at zero rather than going negative
		{ID: 3, TotalTickets: 5, TicketsSold: 8},
	}, int64(3), nil)

	svc := NewService(repo, new(mockCategories))
	result, err := svc.List(context.Background(), Filter{})

	require.NoError(t, err)
	require.Equal(t, 60, result.Data[0].AvailableTickets)
	require.Equal(t, 0, result.Data[1].AvailableTickets)
	require.Equal(t, 0, result.Data[2].AvailableTickets)
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := new(mockRepository)
	cats := new(mockCategories)
	cats.On("CategoryName", mock.Anything, uint(2)).Return("Music", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Event) bool {
		return e.EventTime == "00:00" &&
			e.TotalTickets == 100 &&
			e.ImageURL == defaultImages["Music"] &&
			e.AdminID == 9
	})).Return(nil)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&Event{ID: 1, TotalTickets: 100}, nil)

	svc := NewService(repo, cats)
	_, err := svc.Create(context.Background(), 9, CreateEventRequest{
		EventName:  "Acoustic Night",
		EventDate:  "2026-12-01",
		CategoryID: 2,
		VenueID:    1,
		BasePrice:  350,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	repo := new(mockRepository)
	cats := new(mockCategories)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Event) bool {
		return e.EventTime == "19:30" &&
			e.TotalTickets == 250 &&
			e.ImageURL == "https://example.com/poster.png"
	})).Return(nil)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&Event{ID: 1}, nil)

	svc := NewService(repo, cats)
	_, err := svc.Create(context.Background(), 9, CreateEventRequest{
		EventName:    "Indie Fest",
		EventDate:    "2026-12-01",
		EventTime:    "19:30",
		CategoryID:   2,
		VenueID:      1,
		TotalTickets: 250,
		ImageURL:     "https://example.com/poster.png",
	})

	require.NoError(t, err)
	cats.AssertNotCalled(t, "CategoryName", mock.Anything, mock.Anything)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(new(mockRepository), new(mockCategories))

	_, err := svc.Create(context.Background(), 9, CreateEventRequest{
		EventName: "Bad Date",
		EventDate: "01/12/2026",
	})

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateRejectsBadTime(t *testing.T) {
	svc := NewService(new(mockRepository), new(mockCategories))

	_, err := svc.Create(context.Background(), 9, CreateEventRequest{
		EventName: "Bad Time",
		EventDate: "2026-12-01",
		EventTime: "7pm",
	})

	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestDeleteRejectedWithSoldTickets(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(3)).Return(&Event{ID: 3}, nil)
	repo.On("CountTickets", mock.Anything, uint(3)).Return(int64(2), nil)

	svc := NewService(repo, new(mockCategories))
	err := svc.Delete(context.Background(), 3)

	require.ErrorIs(t, err, ErrEventHasTickets)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteWithoutTickets(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(3)).Return(&Event{ID: 3}, nil)
	repo.On("CountTickets", mock.Anything, uint(3)).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, uint(3)).Return(nil)

	svc := NewService(repo, new(mockCategories))
	err := svc.Delete(context.Background(), 3)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetMissingEvent(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, new(mockCategories))
	_, err := svc.Get(context.Background(), 404)

	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdatePartial(t *testing.T) {
	repo := new(mockRepository)
	name := "Renamed"
	repo.On("FindByID", mock.Anything, uint(5)).Return(&Event{
		ID: 5, EventName: "Original", BasePrice: 100, TotalTickets: 50,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *Event) bool {
		return e.EventName == "Renamed" && e.BasePrice == 100 && e.TotalTickets == 50
	})).Return(nil)

	svc := NewService(repo, new(mockCategories))
	_, err := svc.Update(context.Background(), 5, UpdateEventRequest{EventName: &name})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
