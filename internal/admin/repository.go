package admin

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByID(ctx context.Context, adminID uint) (*Admin, error)
	TouchLastLogin(ctx context.Context, adminID uint, at time.Time) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, adminID uint) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).First(&a, adminID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) TouchLastLogin(ctx context.Context, adminID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", adminID).
		Update("last_login_at", at).Error
}
