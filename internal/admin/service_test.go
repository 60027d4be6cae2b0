package admin

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eventgate/ticketing-backend/config"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, adminID uint) (*Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *mockRepository) TouchLastLogin(ctx context.Context, adminID uint, at time.Time) error {
	args := m.Called(ctx, adminID, at)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:   "access-secret",
		JWTAccessTTLHours: 24,
	}
}

func activeAdmin(t *testing.T) *Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &Admin{
		ID:           1,
		AdminName:    "Admin",
		Email:        "admin@ticketing.com",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
}

func TestAdminLoginIssuesAdminToken(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "admin@ticketing.com").Return(activeAdmin(t), nil)
	repo.On("TouchLastLogin", mock.Anything, uint(1), mock.Anything).Return(nil)

	svc := NewService(repo, testConfig())
	tokenStr, adm, err := svc.Login(context.Background(), "admin@ticketing.com", "admin123")

	require.NoError(t, err)
	require.NotNil(t, adm.LastLoginAt)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "admin", claims["subject"])
	require.Equal(t, "admin", claims["role"])
	require.Equal(t, float64(1), claims["admin_id"])
}

func TestAdminLoginDisabledAccount(t *testing.T) {
	adm := activeAdmin(t)
	adm.IsActive = false

	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "admin@ticketing.com").Return(adm, nil)

	svc := NewService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), "admin@ticketing.com", "admin123")

	require.ErrorIs(t, err, ErrAccountDisabled)
	repo.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "admin@ticketing.com").Return(activeAdmin(t), nil)

	svc := NewService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), "admin@ticketing.com", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "ghost@ticketing.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), "ghost@ticketing.com", "admin123")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}
