package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type SparePartEntity struct {
	ID               string     `bson:"_id"`
	Name             string     `bson:"name"`
	ManufacturerRef  string     `bson:"manufacturer_ref"`
	EquipmentType    string     `bson:"equipment_type"`
	StockQuantity    int        `bson:"stock_quantity"`
	MinimumThreshold int        `bson:"minimum_threshold"`
	Location         string     `bson:"location,omitempty"`
	Supplier         string     `bson:"supplier,omitempty"`
	UnitPrice        *float64   `bson:"unit_price,omitempty"`
	CreatedAt        *time.Time `bson:"created_at,omitempty"`
}

func EntityToModel(e *SparePartEntity) *model.SparePart {
	if e == nil {
		return nil
	}

	return &model.SparePart{
		ID:               e.ID,
		Name:             e.Name,
		ManufacturerRef:  e.ManufacturerRef,
		EquipmentType:    e.EquipmentType,
		StockQuantity:    e.StockQuantity,
		MinimumThreshold: e.MinimumThreshold,
		Location:         e.Location,
		Supplier:         e.Supplier,
		UnitPrice:        e.UnitPrice,
		CreatedAt:        e.CreatedAt,
	}
}

func EntityFromModel(p *model.SparePart) *SparePartEntity {
	if p == nil {
		return nil
	}

	return &SparePartEntity{
		ID:               p.ID,
		Name:             p.Name,
		ManufacturerRef:  p.ManufacturerRef,
		EquipmentType:    p.EquipmentType,
		StockQuantity:    p.StockQuantity,
		MinimumThreshold: p.MinimumThreshold,
		Location:         p.Location,
		Supplier:         p.Supplier,
		UnitPrice:        p.UnitPrice,
		CreatedAt:        p.CreatedAt,
	}
}
