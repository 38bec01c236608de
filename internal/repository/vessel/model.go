package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type VesselEntity struct {
	ID             string     `bson:"_id"`
	Identifier     string     `bson:"identifier"`
	Model          string     `bson:"model"`
	Manufacturer   string     `bson:"manufacturer"`
	CommissionDate string     `bson:"commission_date"`
	MaxPressureBar float64    `bson:"max_pressure_bar"`
	Standards      []string   `bson:"standards,omitempty"`
	Description    string     `bson:"description,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
}

func EntityToModel(e *VesselEntity) *model.Vessel {
	if e == nil {
		return nil
	}

	return &model.Vessel{
		ID:             e.ID,
		Identifier:     e.Identifier,
		Model:          e.Model,
		Manufacturer:   e.Manufacturer,
		CommissionDate: e.CommissionDate,
		MaxPressureBar: e.MaxPressureBar,
		Standards:      e.Standards,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
	}
}

func EntityFromModel(v *model.Vessel) *VesselEntity {
	if v == nil {
		return nil
	}

	return &VesselEntity{
		ID:             v.ID,
		Identifier:     v.Identifier,
		Model:          v.Model,
		Manufacturer:   v.Manufacturer,
		CommissionDate: v.CommissionDate,
		MaxPressureBar: v.MaxPressureBar,
		Standards:      v.Standards,
		Description:    v.Description,
		CreatedAt:      v.CreatedAt,
	}
}
