package auth

import (
	"context"
	"testing"

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

func (m *mockRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, userID uint) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:    "access-secret",
		JWTRefreshSecret:   "refresh-secret",
		JWTAccessTTLHours:  24,
		JWTRefreshTTLHours: 168,
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByUsername", mock.Anything, "newuser").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, testConfig())
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotEqual(t, "secret123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&User{ID: 2}, nil)

	svc := NewService(repo, testConfig())
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "someone",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	require.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByUsername", mock.Anything, "taken").Return(&User{ID: 2}, nil)

	svc := NewService(repo, testConfig())
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "taken",
		Email:    "new@example.com",
		Password: "secret123",
	})

	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginIssuesUserTokens(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID:           7,
		Email:        "user@example.com",
		PasswordHash: hashOf(t, "user1234"),
	}, nil)

	svc := NewService(repo, testConfig())
	pair, user, err := svc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "user1234",
	})

	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)

	token, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user", claims["subject"])
	require.Equal(t, float64(7), claims["user_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID:           7,
		PasswordHash: hashOf(t, "user1234"),
	}, nil)

	svc := NewService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID:           7,
		PasswordHash: hashOf(t, "user1234"),
	}, nil)
	repo.On("FindByID", mock.Anything, uint(7)).Return(&User{ID: 7}, nil)

	svc := NewService(repo, testConfig())
	pair, _, err := svc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "user1234",
	})
	require.NoError(t, err)

	access, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, access)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	// An access token is signed with a different secret and must not be
	// usable as a refresh token
	repo := new(mockRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID:           7,
		PasswordHash: hashOf(t, "user1234"),
	}, nil)

	svc := NewService(repo, testConfig())
	pair, _, err := svc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "user1234",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	require.Error(t, err)
}

func TestUpdateProfileRequiresCurrentPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(&User{
		ID:           7,
		Username:     "user",
		PasswordHash: hashOf(t, "user1234"),
	}, nil)

	svc := NewService(repo, testConfig())
	_, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileInput{
		CurrentPassword: "wrong",
		NewPassword:     "newpass99",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
