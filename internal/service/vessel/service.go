package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type VesselRepository interface {
	First(ctx context.Context) (*model.Vessel, error)
	VesselByID(ctx context.Context, id string) (*model.Vessel, error)
	Create(ctx context.Context, v *model.Vessel) error
	Update(ctx context.Context, id string, v *model.Vessel) error
}

type service struct {
	repo VesselRepository
	now  func() time.Time
}

func NewVesselService(repo VesselRepository) *service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, v *model.Vessel) (*model.Vessel, error) {
	const op = "vessel.service.Create"

	if v.Identifier == "" || v.Model == "" {
		return nil, fmt.Errorf("%s: identifier and model are required: %w", op, model.ErrValidation)
	}

	// One chamber per installation; a second create must go through Update.
	_, err := s.repo.First(ctx)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: a vessel already exists, update it instead: %w", op, model.ErrValidation)
	case !errors.Is(err, model.ErrVesselNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.ID = uuid.NewString()
	v.CreatedAt = lo.ToPtr(s.now())

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// Vessel returns the site's chamber; there is one per installation.
func (s *service) Vessel(ctx context.Context) (*model.Vessel, error) {
	const op = "vessel.service.Vessel"

	v, err := s.repo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s *service) Update(ctx context.Context, id string, v *model.Vessel) (*model.Vessel, error) {
	const op = "vessel.service.Update"

	if err := s.repo.Update(ctx, id, v); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.VesselByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}
