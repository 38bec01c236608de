package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type EquipmentEntity struct {
	ID             string           `bson:"_id"`
	Type           string           `bson:"type"`
	Reference      string           `bson:"reference"`
	SerialNumber   string           `bson:"serial_number"`
	Criticality    string           `bson:"criticality"`
	Status         string           `bson:"status"`
	VesselID       string           `bson:"vessel_id"`
	Description    string           `bson:"description,omitempty"`
	InstallDate    string           `bson:"install_date,omitempty"`
	RunHours       *float64         `bson:"run_hours,omitempty"`
	RunHourHistory []RunHourEntryEntity `bson:"run_hour_history,omitempty"`
	CreatedAt      *time.Time       `bson:"created_at,omitempty"`
}

type RunHourEntryEntity struct {
	Timestamp     time.Time `bson:"timestamp"`
	Value         float64   `bson:"value"`
	RecordedBy    string    `bson:"recorded_by"`
	PreviousValue float64   `bson:"previous_value"`
}

func EntityToModel(e *EquipmentEntity) *model.Equipment {
	if e == nil {
		return nil
	}

	out := &model.Equipment{
		ID:           e.ID,
		Type:         e.Type,
		Reference:    e.Reference,
		SerialNumber: e.SerialNumber,
		Criticality:  e.Criticality,
		Status:       model.EquipmentStatus(e.Status),
		VesselID:     e.VesselID,
		Description:  e.Description,
		InstallDate:  e.InstallDate,
		RunHours:     e.RunHours,
		CreatedAt:    e.CreatedAt,
	}

	for _, h := range e.RunHourHistory {
		out.RunHourHistory = append(out.RunHourHistory, model.RunHourEntry{
			Timestamp:     h.Timestamp,
			Value:         h.Value,
			RecordedBy:    h.RecordedBy,
			PreviousValue: h.PreviousValue,
		})
	}

	return out
}

func EntityFromModel(eq *model.Equipment) *EquipmentEntity {
	if eq == nil {
		return nil
	}

	out := &EquipmentEntity{
		ID:           eq.ID,
		Type:         eq.Type,
		Reference:    eq.Reference,
		SerialNumber: eq.SerialNumber,
		Criticality:  eq.Criticality,
		Status:       string(eq.Status),
		VesselID:     eq.VesselID,
		Description:  eq.Description,
		InstallDate:  eq.InstallDate,
		RunHours:     eq.RunHours,
		CreatedAt:    eq.CreatedAt,
	}

	for _, h := range eq.RunHourHistory {
		out.RunHourHistory = append(out.RunHourHistory, RunHourEntryEntity{
			Timestamp:     h.Timestamp,
			Value:         h.Value,
			RecordedBy:    h.RecordedBy,
			PreviousValue: h.PreviousValue,
		})
	}

	return out
}
