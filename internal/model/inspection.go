package model

import "time"

const (
	InspectionResultConforming    = "conforming"
	InspectionResultNonConforming = "non_conforming"
)

// Inspection is a regulatory-control record. ValidityDate is always
// derived from CompletionDate + Periodicity; it is never authored
// directly.
type Inspection struct {
	ID          string
	Title       string
	ControlType string
	// Named recurrence interval; one of the schedule table keys.
	Periodicity string
	VesselID    string
	EquipmentID string
	// Last completion date, YYYY-MM-DD. Empty when never performed.
	CompletionDate string
	// Computed expiry date, YYYY-MM-DD.
	ValidityDate   string
	CertifyingBody string
	Result         string
	Observations   string
	CreatedAt      *time.Time
}
