package model

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Rank orders severities for sorting: critical first, unknown last.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

const (
	AlertLowStock            = "low_stock"
	AlertInspectionExpired   = "inspection_expired"
	AlertInspectionDue       = "inspection_due"
	AlertMaintenanceOverdue  = "maintenance_overdue"
	AlertEquipmentOut        = "equipment_out_of_service"
	AlertRunHoursTriggered   = "run_hours_triggered"
)

// Alert is derived state, recomputed on every request and never persisted.
type Alert struct {
	Kind        string
	Severity    AlertSeverity
	Title       string
	Description string
	ItemID      string
	ItemType    string
}
