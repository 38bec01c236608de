package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type EquipmentRepository interface {
	EquipmentByID(ctx context.Context, id string) (*model.Equipment, error)
	List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
	Create(ctx context.Context, eq *model.Equipment) error
	Update(ctx context.Context, id string, eq *model.Equipment) error
	AppendRunHours(ctx context.Context, id string, value float64, entry model.RunHourEntry) error
	Delete(ctx context.Context, id string) error
}

type WorkOrderRepository interface {
	List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error)
}

type UserRepository interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}

type Notifier interface {
	WorkOrderTriggered(ctx context.Context, recipient string, wo *model.WorkOrder, currentHours float64) bool
}

// DefaultTrackedTypes lists the equipment types whose maintenance cadence
// is measured in operating hours.
func DefaultTrackedTypes() map[string]bool {
	return map[string]bool{
		model.EquipmentTypeCompressor: true,
	}
}

type service struct {
	repo       EquipmentRepository
	workOrders WorkOrderRepository
	users      UserRepository
	notifier   Notifier
	tracked    map[string]bool
	now        func() time.Time
}

func NewEquipmentService(
	repo EquipmentRepository,
	workOrders WorkOrderRepository,
	users UserRepository,
	notifier Notifier,
	tracked map[string]bool,
) *service {
	return &service{
		repo:       repo,
		workOrders: workOrders,
		users:      users,
		notifier:   notifier,
		tracked:    tracked,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, eq *model.Equipment) (*model.Equipment, error) {
	const op = "equipment.service.Create"

	if eq.Type == "" || eq.Reference == "" || eq.SerialNumber == "" || eq.VesselID == "" {
		return nil, fmt.Errorf("%s: type, reference, serial number and vessel are required: %w",
			op, model.ErrValidation)
	}
	if eq.Criticality == "" {
		eq.Criticality = model.PriorityNormal
	}
	if eq.Status == "" {
		eq.Status = model.EquipmentStatusInService
	}

	eq.ID = uuid.NewString()
	eq.CreatedAt = lo.ToPtr(s.now())

	if err := s.repo.Create(ctx, eq); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return eq, nil
}

func (s *service) Equipment(ctx context.Context, id string) (*model.Equipment, error) {
	const op = "equipment.service.Equipment"

	eq, err := s.repo.EquipmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return eq, nil
}

func (s *service) List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error) {
	const op = "equipment.service.List"

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, eq *model.Equipment) (*model.Equipment, error) {
	const op = "equipment.service.Update"

	if err := s.repo.Update(ctx, id, eq); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.EquipmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "equipment.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RecordRunHours appends a reading to the equipment's history, moves the
// counter, and reports every scheduled hour-based work order whose
// trigger the new counter value reaches. Reported work orders are not
// transitioned; the alerts are informational.
//
// Readings below the current counter are accepted: the history keeps the
// previous value, so corrections stay auditable.
func (s *service) RecordRunHours(ctx context.Context, equipmentID string, value float64, recordedBy string) (*model.Equipment, []model.Alert, error) {
	const op = "equipment.service.RecordRunHours"
	log := logger.With(
		logger.String("equipment_id", equipmentID),
		logger.Float64("value", value),
	)

	eq, err := s.repo.EquipmentByID(ctx, equipmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !s.tracked[eq.Type] {
		log.Warn(ctx, "equipment type is not hour-tracked", logger.String("type", eq.Type))
		return nil, nil, fmt.Errorf("%s: equipment type %q: %w", op, eq.Type, model.ErrNotApplicable)
	}

	var previous float64
	if eq.RunHours != nil {
		previous = *eq.RunHours
	}

	entry := model.RunHourEntry{
		Timestamp:     s.now().UTC(),
		Value:         value,
		RecordedBy:    recordedBy,
		PreviousValue: previous,
	}
	if err := s.repo.AppendRunHours(ctx, equipmentID, value, entry); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	eq.RunHours = &value
	eq.RunHourHistory = append(eq.RunHourHistory, entry)

	alerts, err := s.scanHourTriggers(ctx, eq, value)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return eq, alerts, nil
}

func (s *service) scanHourTriggers(ctx context.Context, eq *model.Equipment, value float64) ([]model.Alert, error) {
	open, err := s.workOrders.List(ctx, model.WorkOrderFilter{
		Statuses:    []model.WorkOrderStatus{model.WorkOrderStatusScheduled},
		EquipmentID: eq.ID,
	})
	if err != nil {
		return nil, err
	}

	alerts := make([]model.Alert, 0)
	for _, wo := range open {
		if wo.PeriodicityHours == nil || wo.TriggerRunHours == nil {
			continue
		}
		if *wo.TriggerRunHours > value {
			continue
		}

		alerts = append(alerts, model.Alert{
			Kind:     model.AlertRunHoursTriggered,
			Severity: model.SeverityInfo,
			Title:    fmt.Sprintf("Maintenance due: %s", wo.Title),
			Description: fmt.Sprintf("Trigger at %.1f h, counter now %.1f h",
				*wo.TriggerRunHours, value),
			ItemID:   wo.ID,
			ItemType: "work_order",
		})

		s.notifyAssignee(ctx, wo, value)
	}

	return alerts, nil
}

// notifyAssignee mails the assigned technician, best-effort. An unknown
// assignee or a failed send never surfaces to the caller.
func (s *service) notifyAssignee(ctx context.Context, wo *model.WorkOrder, value float64) {
	if wo.AssignedTo == "" {
		return
	}

	u, err := s.users.UserByID(ctx, wo.AssignedTo)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			logger.Error(ctx, "resolve assignee", logger.ErrorF(err))
		}
		return
	}

	s.notifier.WorkOrderTriggered(ctx, u.Email, wo, value)
}
