package payment

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

func (m *mockRepository) FindTicketForUser(ctx context.Context, ticketID, userID uint) (*TicketRef, error) {
	args := m.Called(ctx, ticketID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TicketRef), args.Error(1)
}

func (m *mockRepository) HasPayment(ctx context.Context, ticketID uint) (bool, error) {
	args := m.Called(ctx, ticketID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*Payment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepository) FindByUser(ctx context.Context, userID uint, page, limit int) ([]Payment, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).([]Payment), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) FindAll(ctx context.Context, page, limit int) ([]Payment, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]Payment), args.Get(1).(int64), args.Error(2)
}

func TestNormalizeMethod(t *testing.T) {
	cases := map[string]string{
		"credit-card":   "credit_card",
		"Credit_Card":   "credit_card",
		"  GCash ":      "gcash",
		"bank-transfer": "bank_transfer",
		"PayMaya":       "paymaya",
	}
	for raw, want := range cases {
		require.Equal(t, want, NormalizeMethod(raw))
	}
}

func TestCreateRejectsUnknownMethod(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, CreateInput{
		TicketID:      1,
		Amount:        500,
		PaymentMethod: "bitcoin",
	})

	require.ErrorIs(t, err, ErrInvalidMethod)
	repo.AssertNotCalled(t, "FindTicketForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRejectsForeignTicket(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindTicketForUser", mock.Anything, uint(9), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), 2, CreateInput{
		TicketID:      9,
		Amount:        500,
		PaymentMethod: "gcash",
	})

	require.ErrorIs(t, err, ErrTicketNotOwned)
}

func TestCreateRejectsDuplicate(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindTicketForUser", mock.Anything, uint(9), uint(2)).Return(&TicketRef{ID: 9}, nil)
	repo.On("HasPayment", mock.Anything, uint(9)).Return(true, nil)

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), 2, CreateInput{
		TicketID:      9,
		Amount:        500,
		PaymentMethod: "gcash",
	})

	require.ErrorIs(t, err, ErrDuplicatePayment)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCompletedImmediately(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindTicketForUser", mock.Anything, uint(9), uint(2)).Return(&TicketRef{
		ID:        9,
		EventID:   3,
		EventName: "Summer Fest",
	}, nil)
	repo.On("HasPayment", mock.Anything, uint(9)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.Status == StatusCompleted && p.PaymentMethod == "credit_card" && !p.PaymentDate.IsZero()
	})).Return(nil)

	svc := NewService(repo)
	p, err := svc.Create(context.Background(), 2, CreateInput{
		TicketID:      9,
		Amount:        1500,
		PaymentMethod: "Credit-Card",
	})

	require.NoError(t, err)
	require.Equal(t, StatusCompleted, p.Status)
	require.Equal(t, "credit_card", p.PaymentMethod)
	require.Equal(t, 1500.0, p.Amount)
	repo.AssertExpectations(t)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, "cancelled")

	require.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(8)).Return(&Payment{ID: 8, Status: StatusCompleted}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.Status == StatusRefunded
	})).Return(nil)

	svc := NewService(repo)
	p, err := svc.UpdateStatus(context.Background(), 8, StatusRefunded)

	require.NoError(t, err)
	require.Equal(t, StatusRefunded, p.Status)
	repo.AssertExpectations(t)
}

func TestGetMapsMissingToNotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByIDAndUser", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.Get(context.Background(), 1, 5)

	require.ErrorIs(t, err, ErrPaymentNotFound)
}
