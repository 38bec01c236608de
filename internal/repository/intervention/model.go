package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type InterventionEntity struct {
	ID              string            `bson:"_id"`
	Type            string            `bson:"type"`
	WorkOrderID     string            `bson:"work_order_id,omitempty"`
	InspectionID    string            `bson:"inspection_id,omitempty"`
	EquipmentID     string            `bson:"equipment_id,omitempty"`
	Date            string            `bson:"date"`
	Technician      string            `bson:"technician"`
	Actions         string            `bson:"actions"`
	Observations    string            `bson:"observations,omitempty"`
	PartsUsed       []PartUsageEntity `bson:"parts_used,omitempty"`
	RunHours        *float64          `bson:"run_hours,omitempty"`
	DurationMinutes *int              `bson:"duration_minutes,omitempty"`
	CreatedAt       *time.Time        `bson:"created_at,omitempty"`
}

type PartUsageEntity struct {
	SparePartID string `bson:"spare_part_id"`
	Quantity    int    `bson:"quantity"`
}

func EntityToModel(e *InterventionEntity) *model.Intervention {
	if e == nil {
		return nil
	}

	out := &model.Intervention{
		ID:              e.ID,
		Type:            model.InterventionType(e.Type),
		WorkOrderID:     e.WorkOrderID,
		InspectionID:    e.InspectionID,
		EquipmentID:     e.EquipmentID,
		Date:            e.Date,
		Technician:      e.Technician,
		Actions:         e.Actions,
		Observations:    e.Observations,
		RunHours:        e.RunHours,
		DurationMinutes: e.DurationMinutes,
		CreatedAt:       e.CreatedAt,
	}

	for _, p := range e.PartsUsed {
		out.PartsUsed = append(out.PartsUsed, model.PartUsage{
			SparePartID: p.SparePartID,
			Quantity:    p.Quantity,
		})
	}

	return out
}

func EntityFromModel(i *model.Intervention) *InterventionEntity {
	if i == nil {
		return nil
	}

	out := &InterventionEntity{
		ID:              i.ID,
		Type:            string(i.Type),
		WorkOrderID:     i.WorkOrderID,
		InspectionID:    i.InspectionID,
		EquipmentID:     i.EquipmentID,
		Date:            i.Date,
		Technician:      i.Technician,
		Actions:         i.Actions,
		Observations:    i.Observations,
		RunHours:        i.RunHours,
		DurationMinutes: i.DurationMinutes,
		CreatedAt:       i.CreatedAt,
	}

	for _, p := range i.PartsUsed {
		out.PartsUsed = append(out.PartsUsed, PartUsageEntity{
			SparePartID: p.SparePartID,
			Quantity:    p.Quantity,
		})
	}

	return out
}
