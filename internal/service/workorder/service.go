package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type WorkOrderRepository interface {
	WorkOrderByID(ctx context.Context, id string) (*model.WorkOrder, error)
	List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error)
	Create(ctx context.Context, w *model.WorkOrder) error
	Update(ctx context.Context, id string, w *model.WorkOrder) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo WorkOrderRepository
	now  func() time.Time
}

func NewWorkOrderService(repo WorkOrderRepository) *service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, wo *model.WorkOrder) (*model.WorkOrder, error) {
	const op = "workorder.service.Create"

	if err := validate(wo); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if wo.Priority == "" {
		wo.Priority = model.PriorityNormal
	}
	if wo.Status == "" {
		wo.Status = model.WorkOrderStatusScheduled
	}

	wo.ID = uuid.NewString()
	wo.CreatedAt = lo.ToPtr(s.now())

	if err := s.repo.Create(ctx, wo); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wo, nil
}

func (s *service) WorkOrder(ctx context.Context, id string) (*model.WorkOrder, error) {
	const op = "workorder.service.WorkOrder"

	out, err := s.repo.WorkOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error) {
	const op = "workorder.service.List"

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, wo *model.WorkOrder) (*model.WorkOrder, error) {
	const op = "workorder.service.Update"

	if err := validate(wo); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Update(ctx, id, wo); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.WorkOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "workorder.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// validate enforces the single-recurrence-mode invariant: a work order
// recurs by calendar or by run-hours, never both, and an hour-based one
// must say at which counter value it comes due.
func validate(wo *model.WorkOrder) error {
	if wo.Title == "" || wo.PlannedDate == "" {
		return fmt.Errorf("title and planned date are required: %w", model.ErrValidation)
	}
	if _, err := time.Parse(model.DateLayout, wo.PlannedDate); err != nil {
		return fmt.Errorf("planned date %q: %w", wo.PlannedDate, model.ErrValidation)
	}
	if wo.MaintenanceType != model.MaintenancePreventive && wo.MaintenanceType != model.MaintenanceCorrective {
		return fmt.Errorf("unknown maintenance type %q: %w", wo.MaintenanceType, model.ErrValidation)
	}
	if wo.PeriodicityDays != nil && wo.PeriodicityHours != nil {
		return fmt.Errorf("calendar and hour recurrence are exclusive: %w", model.ErrValidation)
	}
	if wo.PeriodicityHours != nil && wo.TriggerRunHours == nil {
		return fmt.Errorf("hour recurrence requires a trigger value: %w", model.ErrValidation)
	}
	return nil
}
