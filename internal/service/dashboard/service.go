package service

import (
	"context"
	"fmt"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type EquipmentRepository interface {
	List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
}

type WorkOrderRepository interface {
	List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error)
}

type SparePartRepository interface {
	List(ctx context.Context, filter model.SparePartFilter) ([]*model.SparePart, error)
}

type service struct {
	equipments EquipmentRepository
	workOrders WorkOrderRepository
	spareParts SparePartRepository
	tracked    map[string]bool
}

func NewDashboardService(
	equipments EquipmentRepository,
	workOrders WorkOrderRepository,
	spareParts SparePartRepository,
	tracked map[string]bool,
) *service {
	return &service{
		equipments: equipments,
		workOrders: workOrders,
		spareParts: spareParts,
		tracked:    tracked,
	}
}

// Stats is a read-only snapshot: counts by status, low-stock parts and
// the run-hour counters of tracked equipment. Recomputed on every call.
func (s *service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	const op = "dashboard.service.Stats"

	equipments, err := s.equipments.List(ctx, model.EquipmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	workOrders, err := s.workOrders.List(ctx, model.WorkOrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.spareParts.List(ctx, model.SparePartFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &model.DashboardStats{
		TotalSpareParts: len(parts),
		LowStockParts:   make([]*model.SparePart, 0),
		RunHours:        make([]model.RunHourSnapshot, 0),
	}

	stats.Equipment.Total = len(equipments)
	for _, eq := range equipments {
		switch eq.Status {
		case model.EquipmentStatusInService:
			stats.Equipment.InService++
		case model.EquipmentStatusMaintenance:
			stats.Equipment.Maintenance++
		case model.EquipmentStatusOutOfService:
			stats.Equipment.OutOfService++
		}

		if s.tracked[eq.Type] {
			var hours float64
			if eq.RunHours != nil {
				hours = *eq.RunHours
			}
			stats.RunHours = append(stats.RunHours, model.RunHourSnapshot{
				EquipmentID:  eq.ID,
				Reference:    eq.Reference,
				SerialNumber: eq.SerialNumber,
				RunHours:     hours,
				Status:       eq.Status,
			})
		}
	}

	stats.WorkOrders.Total = len(workOrders)
	for _, wo := range workOrders {
		switch wo.Status {
		case model.WorkOrderStatusScheduled:
			stats.WorkOrders.Scheduled++
		case model.WorkOrderStatusInProgress:
			stats.WorkOrders.InProgress++
		case model.WorkOrderStatusDone:
			stats.WorkOrders.Done++
		}
	}

	for _, p := range parts {
		if p.LowStock() {
			stats.LowStockParts = append(stats.LowStockParts, p)
		}
	}
	stats.LowStockCount = len(stats.LowStockParts)

	return stats, nil
}
