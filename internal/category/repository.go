package category

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, cat *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id uint) error
	CountEvents(ctx context.Context, categoryID uint) (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, cat *Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Category, error) {
	var cats []Category
	err := r.db.WithContext(ctx).Order("category_name ASC").Find(&cats).Error
	return cats, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Category, error) {
	var cat Category
	err := r.db.WithContext(ctx).First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *repository) Update(ctx context.Context, cat *Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Category{}, id).Error
}

// CountEvents counts events still referencing the category
func (r *repository) CountEvents(ctx context.Context, categoryID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("events").
		Where("category_id = ?", categoryID).
		Count(&total).Error
	return total, err
}
