package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type InspectionEntity struct {
	ID             string     `bson:"_id"`
	Title          string     `bson:"title"`
	ControlType    string     `bson:"control_type"`
	Periodicity    string     `bson:"periodicity"`
	VesselID       string     `bson:"vessel_id,omitempty"`
	EquipmentID    string     `bson:"equipment_id,omitempty"`
	CompletionDate string     `bson:"completion_date,omitempty"`
	ValidityDate   string     `bson:"validity_date,omitempty"`
	CertifyingBody string     `bson:"certifying_body,omitempty"`
	Result         string     `bson:"result,omitempty"`
	Observations   string     `bson:"observations,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
}

func EntityToModel(e *InspectionEntity) *model.Inspection {
	if e == nil {
		return nil
	}

	return &model.Inspection{
		ID:             e.ID,
		Title:          e.Title,
		ControlType:    e.ControlType,
		Periodicity:    e.Periodicity,
		VesselID:       e.VesselID,
		EquipmentID:    e.EquipmentID,
		CompletionDate: e.CompletionDate,
		ValidityDate:   e.ValidityDate,
		CertifyingBody: e.CertifyingBody,
		Result:         e.Result,
		Observations:   e.Observations,
		CreatedAt:      e.CreatedAt,
	}
}

func EntityFromModel(i *model.Inspection) *InspectionEntity {
	if i == nil {
		return nil
	}

	return &InspectionEntity{
		ID:             i.ID,
		Title:          i.Title,
		ControlType:    i.ControlType,
		Periodicity:    i.Periodicity,
		VesselID:       i.VesselID,
		EquipmentID:    i.EquipmentID,
		CompletionDate: i.CompletionDate,
		ValidityDate:   i.ValidityDate,
		CertifyingBody: i.CertifyingBody,
		Result:         i.Result,
		Observations:   i.Observations,
		CreatedAt:      i.CreatedAt,
	}
}
