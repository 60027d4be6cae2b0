package venue

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	FindAll(ctx context.Context) ([]Venue, error)
	FindByID(ctx context.Context, id uint) (*Venue, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id uint) error
	CountEvents(ctx context.Context, venueID uint) (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, v *Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).Order("venue_name ASC").Find(&venues).Error
	return venues, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Venue, error) {
	var v Venue
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) Update(ctx context.Context, v *Venue) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Venue{}, id).Error
}

func (r *repository) CountEvents(ctx context.Context, venueID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("events").
		Where("venue_id = ?", venueID).
		Count(&total).Error
	return total, err
}
