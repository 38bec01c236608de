// Package httputil carries the JSON plumbing shared by every handler:
// decoding, encoding and the sentinel-error to status-code mapping.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// JSON writes v with the given status. Encoding failures are logged,
// never surfaced; the status line is already on the wire.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

// Error maps a service error to its HTTP status and writes the detail
// body. Unmapped errors become opaque 500s so internals never leak.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
		detail = "internal server error"
	}
	JSON(w, r, status, errorResponse{Detail: detail})
}

// Decode reads the request body as JSON into v. Any failure is reported
// as a validation error.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.ErrValidation
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrNotApplicable),
		errors.Is(err, model.ErrNothingToUpdate):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrVesselNotFound),
		errors.Is(err, model.ErrEquipmentNotFound),
		errors.Is(err, model.ErrWorkOrderNotFound),
		errors.Is(err, model.ErrInspectionNotFound),
		errors.Is(err, model.ErrInterventionNotFound),
		errors.Is(err, model.ErrSparePartNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
