package admin

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eventgate/ticketing-backend/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("this admin account has been deactivated")
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, *Admin, error)
	GetAdminByID(ctx context.Context, adminID uint) (*Admin, error)
	VerifyAdmin(ctx context.Context, adminID uint) (role string, active bool, err error)
}

type service struct {
	repo         Repository
	accessSecret string
	accessTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config) Service {
	return &service{
		repo:         r,
		accessSecret: cfg.JWTAccessSecret,
		accessTTL:    time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
	}
}

// Login authenticates against the admins table. Deactivated accounts are
// rejected even with the right password; successful logins stamp
// last_login_at.
func (s *service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	adm, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !adm.IsActive {
		return "", nil, ErrAccountDisabled
	}

	now := time.Now()
	if err := s.repo.TouchLastLogin(ctx, adm.ID, now); err == nil {
		adm.LastLoginAt = &now
	}

	token, err := s.generateToken(adm)
	if err != nil {
		return "", nil, err
	}
	return token, adm, nil
}

func (s *service) generateToken(adm *Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adm.ID,
		"subject":  "admin",
		"role":     adm.Role,
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) GetAdminByID(ctx context.Context, adminID uint) (*Admin, error) {
	return s.repo.FindByID(ctx, adminID)
}

// VerifyAdmin backs the admin middleware with the role and active flag
func (s *service) VerifyAdmin(ctx context.Context, adminID uint) (string, bool, error) {
	adm, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return "", false, err
	}
	return adm.Role, adm.IsActive, nil
}
