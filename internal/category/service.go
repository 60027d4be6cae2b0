package category

import (
	"context"
	"errors"
)

var ErrCategoryInUse = errors.New("Cannot delete category with existing events")

type Service interface {
	Create(ctx context.Context, input Input) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, id uint, input Input) (*Category, error)
	Delete(ctx context.Context, id uint) error
	CategoryName(ctx context.Context, id uint) (string, error)
}

type Input struct {
	CategoryName string
	Icon         string
	Description  string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in Input) (*Category, error) {
	cat := &Category{
		CategoryName: in.CategoryName,
		Icon:         in.Icon,
		Description:  in.Description,
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, in Input) (*Category, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryName != "" {
		cat.CategoryName = in.CategoryName
	}
	if in.Icon != "" {
		cat.Icon = in.Icon
	}
	if in.Description != "" {
		cat.Description = in.Description
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// CategoryName resolves just the display name (used for event defaults)
func (s *service) CategoryName(ctx context.Context, id uint) (string, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return cat.CategoryName, nil
}

// Delete refuses to remove a category that events still reference
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountEvents(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.repo.Delete(ctx, id)
}
