package model

import "time"

// Vessel is the pressure chamber every equipment hangs off.
type Vessel struct {
	ID             string
	Identifier     string
	Model          string
	Manufacturer   string
	CommissionDate string
	MaxPressureBar float64
	// Applicable regulatory standards, e.g. EN 16081.
	Standards   []string
	Description string
	CreatedAt   *time.Time
}
