package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type SparePartRepository interface {
	SparePartByID(ctx context.Context, id string) (*model.SparePart, error)
	List(ctx context.Context, filter model.SparePartFilter) ([]*model.SparePart, error)
	Create(ctx context.Context, p *model.SparePart) error
	Update(ctx context.Context, id string, upd model.SparePartUpdate) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo SparePartRepository
	now  func() time.Time
}

func NewSparePartService(repo SparePartRepository) *service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, p *model.SparePart) (*model.SparePart, error) {
	const op = "sparepart.service.Create"

	if p.Name == "" || p.ManufacturerRef == "" {
		return nil, fmt.Errorf("%s: name and manufacturer ref are required: %w", op, model.ErrValidation)
	}
	if p.MinimumThreshold <= 0 {
		p.MinimumThreshold = 1
	}

	p.ID = uuid.NewString()
	p.CreatedAt = lo.ToPtr(s.now())

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) SparePart(ctx context.Context, id string) (*model.SparePart, error) {
	const op = "sparepart.service.SparePart"

	out, err := s.repo.SparePartByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// List returns parts, optionally narrowed to an equipment type and to
// parts at or under their reorder threshold.
func (s *service) List(ctx context.Context, filter model.SparePartFilter, lowStockOnly bool) ([]*model.SparePart, error) {
	const op = "sparepart.service.List"

	parts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !lowStockOnly {
		return parts, nil
	}

	low := make([]*model.SparePart, 0, len(parts))
	for _, p := range parts {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (s *service) Update(ctx context.Context, id string, upd model.SparePartUpdate) (*model.SparePart, error) {
	const op = "sparepart.service.Update"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrNothingToUpdate)
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.SparePartByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "sparepart.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
