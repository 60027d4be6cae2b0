package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eventgate/ticketing-backend/config"
	"github.com/eventgate/ticketing-backend/utils"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (*TokenPair, *User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout() error
	GetUserByID(ctx context.Context, userID uint) (*User, error)
	VerifyUser(ctx context.Context, userID uint) error
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*User, error)

	// Password reset methods
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config) Service {
	return &service{
		repo:          r,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(ctx context.Context, in LoginInput) (*TokenPair, *User, error) {
	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}

func (s *service) generateAccessToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"subject": "user",
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"subject": "user",
		"exp":     time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.refreshSecret))
}

// =============================
// Refresh
// =============================

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return "", errors.New("invalid token claims")
	}

	userID := uint(claims["user_id"].(float64))
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", errors.New("user not found")
	}

	return s.generateAccessToken(user.ID)
}

// =============================
// Logout
// =============================

func (s *service) Logout() error {
	// JWT is stateless, clients just drop the token
	return nil
}

// =============================
// Profile
// =============================

type UpdateProfileInput struct {
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
}

func (s *service) GetUserByID(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

// VerifyUser backs the auth middleware: the token's account must still exist
func (s *service) VerifyUser(ctx context.Context, userID uint) error {
	_, err := s.repo.FindByID(ctx, userID)
	return err
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
			return nil, ErrUsernameTaken
		}
		user.Username = in.Username
	}
	if in.Email != "" && in.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = in.Email
	}

	// Password change requires the current password
	if in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, errors.New("current password is incorrect")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// =============================
// Forgot Password
// =============================

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return errors.New("user not found")
	}

	resetToken := generateSecureToken()
	ttl := 15 * time.Minute
	key := fmt.Sprintf("reset_token:%s", resetToken)

	// Store user ID as value
	if err := utils.SetToken(key, fmt.Sprint(user.ID), ttl); err != nil {
		return errors.New("could not save reset token")
	}

	if err := utils.SendResetLink(user.Email, resetToken); err != nil {
		return errors.New("failed to send email")
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, token string, newPassword string) error {
	key := fmt.Sprintf("reset_token:%s", token)
	val, err := utils.GetToken(key)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	var userID uint
	if _, err := fmt.Sscan(val, &userID); err != nil {
		return errors.New("invalid token data")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return errors.New("user not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.repo.Update(ctx, user); err != nil {
		return errors.New("failed to update password")
	}

	_ = utils.DeleteToken(key) // one-shot token

	return nil
}

// =============================
// Helpers (for reset tokens)
// =============================

func generateSecureToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
