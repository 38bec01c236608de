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
	"github.com/Radek987976/hyperbare-manager/internal/schedule"
)

type InterventionRepository interface {
	InterventionByID(ctx context.Context, id string) (*model.Intervention, error)
	List(ctx context.Context, filter model.InterventionFilter) ([]*model.Intervention, error)
	Create(ctx context.Context, i *model.Intervention) error
}

type WorkOrderRepository interface {
	WorkOrderByID(ctx context.Context, id string) (*model.WorkOrder, error)
	Create(ctx context.Context, w *model.WorkOrder) error
	SetStatus(ctx context.Context, id string, status model.WorkOrderStatus) error
}

type InspectionRepository interface {
	InspectionByID(ctx context.Context, id string) (*model.Inspection, error)
	SetCompletion(ctx context.Context, id, completionDate, validityDate, result string) error
}

type SparePartRepository interface {
	SparePartByID(ctx context.Context, id string) (*model.SparePart, error)
	SetStock(ctx context.Context, id string, quantity int) error
}

type EquipmentRepository interface {
	EquipmentByID(ctx context.Context, id string) (*model.Equipment, error)
}

// RunHourRecorder applies a run-hour reading with its history append and
// trigger scan; implemented by the equipment service.
type RunHourRecorder interface {
	RecordRunHours(ctx context.Context, equipmentID string, value float64, recordedBy string) (*model.Equipment, []model.Alert, error)
}

type service struct {
	repo        InterventionRepository
	workOrders  WorkOrderRepository
	inspections InspectionRepository
	spareParts  SparePartRepository
	equipments  EquipmentRepository
	runHours    RunHourRecorder
	calc        *schedule.Calculator
	now         func() time.Time
}

func NewInterventionService(
	repo InterventionRepository,
	workOrders WorkOrderRepository,
	inspections InspectionRepository,
	spareParts SparePartRepository,
	equipments EquipmentRepository,
	runHours RunHourRecorder,
	calc *schedule.Calculator,
) *service {
	return &service{
		repo:        repo,
		workOrders:  workOrders,
		inspections: inspections,
		spareParts:  spareParts,
		equipments:  equipments,
		runHours:    runHours,
		calc:        calc,
		now:         time.Now,
	}
}

// Record runs the full intervention workflow: resolve the target
// equipment, apply an optional run-hour reading, decrement consumed
// stock, persist the record, complete the linked work order and spawn
// the next occurrence of a recurring one.
//
// Dangling references are tolerated on purpose: the intervention log is
// an audit trail, and a missing work order or spare part must not block
// the record. Each tolerated miss is an explicit branch below, never a
// swallowed lookup error.
func (s *service) Record(ctx context.Context, in *model.Intervention) (*model.Intervention, error) {
	const op = "intervention.service.Record"
	log := logger.With(
		logger.String("type", string(in.Type)),
		logger.String("work_order_id", in.WorkOrderID),
		logger.String("inspection_id", in.InspectionID),
	)

	if in.Type != model.InterventionCurative && in.Type != model.InterventionPreventive {
		return nil, fmt.Errorf("%s: unknown intervention type %q: %w", op, in.Type, model.ErrValidation)
	}
	interventionDate, err := time.Parse(model.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: intervention date %q: %w", op, in.Date, model.ErrValidation)
	}

	wo, insp, err := s.resolveLinks(ctx, in, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Run-hour reading first: a later hour-based successor must see the
	// updated counter.
	equipment, err := s.applyRunHours(ctx, in, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.consumeParts(ctx, in.PartsUsed, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in.ID = uuid.NewString()
	in.CreatedAt = lo.ToPtr(s.now())
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch in.Type {
	case model.InterventionCurative:
		if wo != nil {
			if err := s.workOrders.SetStatus(ctx, wo.ID, model.WorkOrderStatusDone); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	case model.InterventionPreventive:
		if wo != nil {
			if err := s.completePreventive(ctx, wo, in, interventionDate, equipment); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		if insp != nil {
			if err := s.completeInspection(ctx, insp, in.Date); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return in, nil
}

func (s *service) Intervention(ctx context.Context, id string) (*model.Intervention, error) {
	const op = "intervention.service.Intervention"

	out, err := s.repo.InterventionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) List(ctx context.Context, filter model.InterventionFilter) ([]*model.Intervention, error) {
	const op = "intervention.service.List"

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// resolveLinks loads the referenced work order and inspection and fills
// in the equipment id when it was not given explicitly. Missing records
// resolve to nil; only storage failures abort.
func (s *service) resolveLinks(ctx context.Context, in *model.Intervention, log *logger.Logger) (*model.WorkOrder, *model.Inspection, error) {
	var wo *model.WorkOrder
	if in.WorkOrderID != "" {
		loaded, err := s.workOrders.WorkOrderByID(ctx, in.WorkOrderID)
		switch {
		case err == nil:
			wo = loaded
		case errors.Is(err, model.ErrWorkOrderNotFound):
			log.Warn(ctx, "linked work order missing, recording anyway")
		default:
			return nil, nil, err
		}
	}

	var insp *model.Inspection
	if in.InspectionID != "" {
		loaded, err := s.inspections.InspectionByID(ctx, in.InspectionID)
		switch {
		case err == nil:
			insp = loaded
		case errors.Is(err, model.ErrInspectionNotFound):
			log.Warn(ctx, "linked inspection missing, recording anyway")
		default:
			return nil, nil, err
		}
	}

	if in.EquipmentID == "" {
		switch {
		case wo != nil && wo.EquipmentID != "":
			in.EquipmentID = wo.EquipmentID
		case insp != nil && insp.EquipmentID != "":
			in.EquipmentID = insp.EquipmentID
		}
	}

	return wo, insp, nil
}

// applyRunHours forwards the optional reading to the run-hour counter.
// Equipment that is missing or not hour-tracked is skipped; the reading
// stays on the intervention record either way.
func (s *service) applyRunHours(ctx context.Context, in *model.Intervention, log *logger.Logger) (*model.Equipment, error) {
	if in.RunHours == nil || in.EquipmentID == "" {
		return nil, nil
	}

	eq, _, err := s.runHours.RecordRunHours(ctx, in.EquipmentID, *in.RunHours, in.Technician)
	switch {
	case err == nil:
		return eq, nil
	case errors.Is(err, model.ErrNotApplicable):
		log.Warn(ctx, "run-hour reading for untracked equipment, skipping",
			logger.String("equipment_id", in.EquipmentID))
		return nil, nil
	case errors.Is(err, model.ErrEquipmentNotFound):
		log.Warn(ctx, "run-hour reading for missing equipment, skipping",
			logger.String("equipment_id", in.EquipmentID))
		return nil, nil
	default:
		return nil, err
	}
}

// consumeParts decrements stock for every consumed part, flooring at
// zero. Unknown part ids are skipped: the consumption entry is kept on
// the record even when the referenced part no longer exists.
func (s *service) consumeParts(ctx context.Context, usages []model.PartUsage, log *logger.Logger) error {
	for _, usage := range usages {
		part, err := s.spareParts.SparePartByID(ctx, usage.SparePartID)
		if err != nil {
			if errors.Is(err, model.ErrSparePartNotFound) {
				log.Warn(ctx, "consumed spare part missing, skipping",
					logger.String("spare_part_id", usage.SparePartID))
				continue
			}
			return err
		}

		newStock := part.StockQuantity - usage.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.spareParts.SetStock(ctx, usage.SparePartID, newStock); err != nil {
			return err
		}
	}
	return nil
}

// completePreventive marks the work order done and, when it is
// recurring, spawns its successor.
func (s *service) completePreventive(ctx context.Context, wo *model.WorkOrder, in *model.Intervention, interventionDate time.Time, equipment *model.Equipment) error {
	if err := s.workOrders.SetStatus(ctx, wo.ID, model.WorkOrderStatusDone); err != nil {
		return err
	}
	if !wo.Recurring() {
		return nil
	}

	next := &model.WorkOrder{
		ID:               uuid.NewString(),
		Title:            wo.Title,
		Description:      wo.Description,
		MaintenanceType:  wo.MaintenanceType,
		Priority:         wo.Priority,
		Status:           model.WorkOrderStatusScheduled,
		VesselID:         wo.VesselID,
		EquipmentID:      wo.EquipmentID,
		PlannedDate:      in.Date,
		PeriodicityDays:  wo.PeriodicityDays,
		PeriodicityHours: wo.PeriodicityHours,
		AssignedTo:       wo.AssignedTo,
		CreatedAt:        lo.ToPtr(s.now()),
	}

	switch {
	case wo.PeriodicityDays != nil:
		next.PlannedDate = interventionDate.AddDate(0, 0, *wo.PeriodicityDays).Format(model.DateLayout)
	case wo.PeriodicityHours != nil:
		// Hour-based due dates are not calendar-anchored: the planned
		// date stays at the intervention date and only the trigger moves,
		// based on the counter as of this intervention.
		current, err := s.currentRunHours(ctx, wo.EquipmentID, equipment)
		if err != nil {
			return err
		}
		next.TriggerRunHours = lo.ToPtr(current + *wo.PeriodicityHours)
	}

	return s.workOrders.Create(ctx, next)
}

// currentRunHours reads the counter as of successor synthesis, i.e.
// after any reading supplied with the intervention has been applied.
func (s *service) currentRunHours(ctx context.Context, equipmentID string, updated *model.Equipment) (float64, error) {
	if updated != nil && updated.RunHours != nil {
		return *updated.RunHours, nil
	}
	if equipmentID == "" {
		return 0, nil
	}

	eq, err := s.equipments.EquipmentByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, model.ErrEquipmentNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if eq.RunHours == nil {
		return 0, nil
	}
	return *eq.RunHours, nil
}

// completeInspection is the legacy preventive path: stamp the completion
// date, recompute the validity date and mark the control conforming.
func (s *service) completeInspection(ctx context.Context, insp *model.Inspection, date string) error {
	validity, err := s.calc.ComputeValidity(date, insp.Periodicity)
	if err != nil {
		return err
	}
	return s.inspections.SetCompletion(ctx, insp.ID, date, validity, model.InspectionResultConforming)
}
