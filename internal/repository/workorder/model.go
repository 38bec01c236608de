package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type WorkOrderEntity struct {
	ID               string     `bson:"_id"`
	Title            string     `bson:"title"`
	Description      string     `bson:"description,omitempty"`
	MaintenanceType  string     `bson:"maintenance_type"`
	Priority         string     `bson:"priority"`
	Status           string     `bson:"status"`
	VesselID         string     `bson:"vessel_id,omitempty"`
	EquipmentID      string     `bson:"equipment_id,omitempty"`
	PlannedDate      string     `bson:"planned_date"`
	PeriodicityDays  *int       `bson:"periodicity_days,omitempty"`
	PeriodicityHours *float64   `bson:"periodicity_hours,omitempty"`
	TriggerRunHours  *float64   `bson:"trigger_run_hours,omitempty"`
	AssignedTo       string     `bson:"assigned_to,omitempty"`
	CreatedAt        *time.Time `bson:"created_at,omitempty"`
}

func EntityToModel(e *WorkOrderEntity) *model.WorkOrder {
	if e == nil {
		return nil
	}

	return &model.WorkOrder{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		MaintenanceType:  model.MaintenanceType(e.MaintenanceType),
		Priority:         e.Priority,
		Status:           model.WorkOrderStatus(e.Status),
		VesselID:         e.VesselID,
		EquipmentID:      e.EquipmentID,
		PlannedDate:      e.PlannedDate,
		PeriodicityDays:  e.PeriodicityDays,
		PeriodicityHours: e.PeriodicityHours,
		TriggerRunHours:  e.TriggerRunHours,
		AssignedTo:       e.AssignedTo,
		CreatedAt:        e.CreatedAt,
	}
}

func EntityFromModel(w *model.WorkOrder) *WorkOrderEntity {
	if w == nil {
		return nil
	}

	return &WorkOrderEntity{
		ID:               w.ID,
		Title:            w.Title,
		Description:      w.Description,
		MaintenanceType:  string(w.MaintenanceType),
		Priority:         w.Priority,
		Status:           string(w.Status),
		VesselID:         w.VesselID,
		EquipmentID:      w.EquipmentID,
		PlannedDate:      w.PlannedDate,
		PeriodicityDays:  w.PeriodicityDays,
		PeriodicityHours: w.PeriodicityHours,
		TriggerRunHours:  w.TriggerRunHours,
		AssignedTo:       w.AssignedTo,
		CreatedAt:        w.CreatedAt,
	}
}
