package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/schedule"
)

type InspectionRepository interface {
	InspectionByID(ctx context.Context, id string) (*model.Inspection, error)
	List(ctx context.Context) ([]*model.Inspection, error)
	Create(ctx context.Context, i *model.Inspection) error
	Update(ctx context.Context, id string, i *model.Inspection) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo InspectionRepository
	calc *schedule.Calculator
	now  func() time.Time
}

func NewInspectionService(repo InspectionRepository, calc *schedule.Calculator) *service {
	return &service{repo: repo, calc: calc, now: time.Now}
}

// Create stores a regulatory control. The validity date is always
// derived here from the completion date and periodicity; a caller-set
// value is discarded.
func (s *service) Create(ctx context.Context, insp *model.Inspection) (*model.Inspection, error) {
	const op = "inspection.service.Create"

	if insp.Title == "" {
		return nil, fmt.Errorf("%s: title is required: %w", op, model.ErrValidation)
	}
	if insp.Periodicity == "" {
		insp.Periodicity = schedule.PeriodicityAnnual
	}

	validity, err := s.calc.ComputeValidity(insp.CompletionDate, insp.Periodicity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	insp.ValidityDate = validity

	insp.ID = uuid.NewString()
	insp.CreatedAt = lo.ToPtr(s.now())

	if err := s.repo.Create(ctx, insp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return insp, nil
}

func (s *service) Inspection(ctx context.Context, id string) (*model.Inspection, error) {
	const op = "inspection.service.Inspection"

	out, err := s.repo.InspectionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) List(ctx context.Context) ([]*model.Inspection, error) {
	const op = "inspection.service.List"

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Update rewrites the control and recomputes the validity date. The
// recompute is unconditional: any write that touches the completion
// date or periodicity refreshes it, and writes that touch neither are
// idempotent on it.
func (s *service) Update(ctx context.Context, id string, insp *model.Inspection) (*model.Inspection, error) {
	const op = "inspection.service.Update"

	if insp.Periodicity == "" {
		insp.Periodicity = schedule.PeriodicityAnnual
	}

	validity, err := s.calc.ComputeValidity(insp.CompletionDate, insp.Periodicity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	insp.ValidityDate = validity

	if err := s.repo.Update(ctx, id, insp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.InspectionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "inspection.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
