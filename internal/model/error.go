package model

import "errors"

var (
	// ErrValidation marks malformed input rejected at the write boundary.
	ErrValidation = errors.New("validation failed")
	// ErrNotApplicable marks an operation against an entity of the wrong kind,
	// e.g. run-hour readings for equipment that is not hour-tracked.
	ErrNotApplicable = errors.New("operation not applicable")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("insufficient privileges")
	ErrNothingToUpdate    = errors.New("nothing to update")

	ErrUserNotFound         = errors.New("user not found")
	ErrVesselNotFound       = errors.New("vessel not found")
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInspectionNotFound   = errors.New("inspection not found")
	ErrInterventionNotFound = errors.New("intervention not found")
	ErrSparePartNotFound    = errors.New("spare part not found")
)
