package model

import "time"

// DateLayout is the calendar-date form used everywhere at the model
// boundary (planned dates, completion dates, validity dates).
const DateLayout = "2006-01-02"

type EquipmentStatus string

const (
	EquipmentStatusInService    EquipmentStatus = "in_service"
	EquipmentStatusMaintenance  EquipmentStatus = "maintenance"
	EquipmentStatusOutOfService EquipmentStatus = "out_of_service"
)

const (
	EquipmentTypeDoor         = "door"
	EquipmentTypeSeal         = "seal"
	EquipmentTypeValve        = "valve"
	EquipmentTypeCompressor   = "compressor"
	EquipmentTypeSensor       = "sensor"
	EquipmentTypeSafetySystem = "safety_system"
)

type Equipment struct {
	ID string
	// Type tag; one of the EquipmentType constants.
	Type         string
	Reference    string
	SerialNumber string
	// Criticality: critical, high, normal, low.
	Criticality string
	Status      EquipmentStatus
	VesselID    string
	Description string
	// Installation date, YYYY-MM-DD. Empty when unknown.
	InstallDate string
	// Cumulative operating hours. Only meaningful for hour-tracked
	// equipment types (compressors); nil otherwise.
	RunHours *float64
	// Append-only reading log; entries are immutable once recorded.
	RunHourHistory []RunHourEntry
	CreatedAt      *time.Time
}

type RunHourEntry struct {
	Timestamp     time.Time
	Value         float64
	RecordedBy    string
	PreviousValue float64
}

type EquipmentFilter struct {
	VesselID string
	Type     string
	Status   EquipmentStatus
}
