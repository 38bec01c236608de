package model

import "time"

type SparePart struct {
	ID              string
	Name            string
	ManufacturerRef string
	// Equipment type this part fits; one of the EquipmentType constants.
	EquipmentType    string
	StockQuantity    int
	MinimumThreshold int
	Location         string
	Supplier         string
	UnitPrice        *float64
	CreatedAt        *time.Time
}

// LowStock is a derived predicate, never a stored flag.
func (p *SparePart) LowStock() bool {
	return p.StockQuantity <= p.MinimumThreshold
}

type SparePartFilter struct {
	EquipmentType string
}

type SparePartUpdate struct {
	StockQuantity    *int
	MinimumThreshold *int
	Location         *string
	Supplier         *string
	UnitPrice        *float64
}

func (u SparePartUpdate) Empty() bool {
	return u.StockQuantity == nil &&
		u.MinimumThreshold == nil &&
		u.Location == nil &&
		u.Supplier == nil &&
		u.UnitPrice == nil
}
