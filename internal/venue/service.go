package venue

import (
	"context"
	"errors"
)

var ErrVenueInUse = errors.New("Cannot delete venue with existing events")

type Input struct {
	VenueName string
	Address   string
	Capacity  int
}

type Service interface {
	Create(ctx context.Context, input Input) (*Venue, error)
	List(ctx context.Context) ([]Venue, error)
	Get(ctx context.Context, id uint) (*Venue, error)
	Update(ctx context.Context, id uint, input Input) (*Venue, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in Input) (*Venue, error) {
	v := &Venue{
		VenueName: in.VenueName,
		Address:   in.Address,
		Capacity:  in.Capacity,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) List(ctx context.Context) ([]Venue, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, in Input) (*Venue, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.VenueName != "" {
		v.VenueName = in.VenueName
	}
	if in.Address != "" {
		v.Address = in.Address
	}
	if in.Capacity > 0 {
		v.Capacity = in.Capacity
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountEvents(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVenueInUse
	}

	return s.repo.Delete(ctx, id)
}
