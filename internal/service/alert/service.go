package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/model"
)

// inspectionWarningWindow is how many days before expiry a control
// starts warning.
const inspectionWarningWindow = 30

// overdueCriticalAfter is how many days late a work order turns
// critical.
const overdueCriticalAfter = 7

// upcomingLimit caps the upcoming-maintenance view.
const upcomingLimit = 10

type SparePartRepository interface {
	List(ctx context.Context, filter model.SparePartFilter) ([]*model.SparePart, error)
}

type InspectionRepository interface {
	List(ctx context.Context) ([]*model.Inspection, error)
}

type WorkOrderRepository interface {
	List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error)
}

type EquipmentRepository interface {
	List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
}

type service struct {
	spareParts  SparePartRepository
	inspections InspectionRepository
	workOrders  WorkOrderRepository
	equipments  EquipmentRepository
	now         func() time.Time
}

func NewAlertService(
	spareParts SparePartRepository,
	inspections InspectionRepository,
	workOrders WorkOrderRepository,
	equipments EquipmentRepository,
) *service {
	return &service{
		spareParts:  spareParts,
		inspections: inspections,
		workOrders:  workOrders,
		equipments:  equipments,
		now:         time.Now,
	}
}

// Compute re-derives the full alert list from live state. Nothing is
// cached or persisted; each call scans spare parts, inspections, open
// work orders and equipment, in that order, then sorts by severity.
// Records whose dates do not parse are skipped, never fatal.
func (s *service) Compute(ctx context.Context) ([]model.Alert, error) {
	const op = "alert.service.Compute"

	today := dateOnly(s.now().UTC())
	alerts := make([]model.Alert, 0)

	parts, err := s.spareParts.List(ctx, model.SparePartFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range parts {
		if !p.LowStock() {
			continue
		}
		alerts = append(alerts, model.Alert{
			Kind:     model.AlertLowStock,
			Severity: model.SeverityWarning,
			Title:    fmt.Sprintf("Low stock: %s", p.Name),
			Description: fmt.Sprintf("Quantity: %d / Threshold: %d",
				p.StockQuantity, p.MinimumThreshold),
			ItemID:   p.ID,
			ItemType: "spare_part",
		})
	}

	inspections, err := s.inspections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, insp := range inspections {
		expiry, err := time.Parse(model.DateLayout, insp.ValidityDate)
		if err != nil {
			logger.Debug(ctx, "skipping inspection with unreadable validity date",
				logger.String("inspection_id", insp.ID))
			continue
		}

		days := daysBetween(today, expiry)
		switch {
		case days < 0:
			alerts = append(alerts, model.Alert{
				Kind:        model.AlertInspectionExpired,
				Severity:    model.SeverityCritical,
				Title:       fmt.Sprintf("Control expired: %s", insp.Title),
				Description: fmt.Sprintf("Expired %d days ago", -days),
				ItemID:      insp.ID,
				ItemType:    "inspection",
			})
		case days <= inspectionWarningWindow:
			alerts = append(alerts, model.Alert{
				Kind:        model.AlertInspectionDue,
				Severity:    model.SeverityWarning,
				Title:       fmt.Sprintf("Control to renew: %s", insp.Title),
				Description: fmt.Sprintf("Expires in %d days", days),
				ItemID:      insp.ID,
				ItemType:    "inspection",
			})
		}
	}

	open, err := s.workOrders.List(ctx, model.WorkOrderFilter{
		Statuses: []model.WorkOrderStatus{
			model.WorkOrderStatusScheduled,
			model.WorkOrderStatusInProgress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, wo := range open {
		planned, err := time.Parse(model.DateLayout, wo.PlannedDate)
		if err != nil {
			logger.Debug(ctx, "skipping work order with unreadable planned date",
				logger.String("work_order_id", wo.ID))
			continue
		}
		if !planned.Before(today) {
			continue
		}

		overdue := daysBetween(planned, today)
		severity := model.SeverityWarning
		if overdue > overdueCriticalAfter {
			severity = model.SeverityCritical
		}
		alerts = append(alerts, model.Alert{
			Kind:        model.AlertMaintenanceOverdue,
			Severity:    severity,
			Title:       fmt.Sprintf("Maintenance overdue: %s", wo.Title),
			Description: fmt.Sprintf("%d days late", overdue),
			ItemID:      wo.ID,
			ItemType:    "work_order",
		})
	}

	out, err := s.equipments.List(ctx, model.EquipmentFilter{
		Status: model.EquipmentStatusOutOfService,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, eq := range out {
		alerts = append(alerts, model.Alert{
			Kind:        model.AlertEquipmentOut,
			Severity:    model.SeverityCritical,
			Title:       fmt.Sprintf("Equipment out of service: %s", eq.Type),
			Description: fmt.Sprintf("Ref: %s - S/N: %s", eq.Reference, eq.SerialNumber),
			ItemID:      eq.ID,
			ItemType:    "equipment",
		})
	}

	// Stable: ties keep the scan order above.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	return alerts, nil
}

// Upcoming lists open work orders decorated with their distance from
// today, nearest first, capped at ten entries.
func (s *service) Upcoming(ctx context.Context) ([]model.UpcomingWorkOrder, error) {
	const op = "alert.service.Upcoming"

	today := dateOnly(s.now().UTC())

	open, err := s.workOrders.List(ctx, model.WorkOrderFilter{
		Statuses: []model.WorkOrderStatus{
			model.WorkOrderStatusScheduled,
			model.WorkOrderStatusInProgress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	upcoming := make([]model.UpcomingWorkOrder, 0, len(open))
	for _, wo := range open {
		planned, err := time.Parse(model.DateLayout, wo.PlannedDate)
		if err != nil {
			continue
		}
		days := daysBetween(today, planned)
		upcoming = append(upcoming, model.UpcomingWorkOrder{
			WorkOrder: wo,
			DaysUntil: days,
			IsOverdue: days < 0,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})

	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return upcoming, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
