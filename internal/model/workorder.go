package model

import "time"

type WorkOrderStatus string

const (
	WorkOrderStatusScheduled  WorkOrderStatus = "scheduled"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusDone       WorkOrderStatus = "done"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
)

const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

type WorkOrder struct {
	ID              string
	Title           string
	Description     string
	MaintenanceType MaintenanceType
	Priority        string
	Status          WorkOrderStatus
	VesselID        string
	EquipmentID     string
	// Planned date, YYYY-MM-DD.
	PlannedDate string
	// Calendar recurrence: days between occurrences. Exclusive with the
	// hour-based pair below.
	PeriodicityDays *int
	// Usage recurrence: hours between occurrences, and the absolute
	// run-hour value at which this occurrence becomes due.
	PeriodicityHours *float64
	TriggerRunHours  *float64
	AssignedTo       string
	CreatedAt        *time.Time
}

// Recurring reports whether completing this work order must spawn a
// successor.
func (w *WorkOrder) Recurring() bool {
	return w.PeriodicityDays != nil || w.PeriodicityHours != nil
}

type WorkOrderFilter struct {
	Statuses        []WorkOrderStatus
	EquipmentID     string
	VesselID        string
	MaintenanceType MaintenanceType
}
