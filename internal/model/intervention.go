package model

import "time"

type InterventionType string

const (
	InterventionCurative   InterventionType = "curative"
	InterventionPreventive InterventionType = "preventive"
)

// Intervention is an immutable log record of maintenance work performed.
// References to work orders, inspections and equipment are best-effort:
// a dangling id does not invalidate the record.
type Intervention struct {
	ID   string
	Type InterventionType
	// Linked work order (curative, or preventive on a recurring order).
	WorkOrderID string
	// Linked regulatory control (legacy preventive path).
	InspectionID string
	EquipmentID  string
	// Intervention date, YYYY-MM-DD.
	Date         string
	Technician   string
	Actions      string
	Observations string
	PartsUsed    []PartUsage
	// Optional run-hour reading taken during the intervention.
	RunHours        *float64
	DurationMinutes *int
	CreatedAt       *time.Time
}

type PartUsage struct {
	SparePartID string
	Quantity    int
}

type InterventionFilter struct {
	WorkOrderID string
	EquipmentID string
}
