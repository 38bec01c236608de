package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/middleware"
)

type EquipmentService interface {
	Create(ctx context.Context, eq *model.Equipment) (*model.Equipment, error)
	Equipment(ctx context.Context, id string) (*model.Equipment, error)
	List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
	Update(ctx context.Context, id string, eq *model.Equipment) (*model.Equipment, error)
	Delete(ctx context.Context, id string) error
	RecordRunHours(ctx context.Context, equipmentID string, value float64, recordedBy string) (*model.Equipment, []model.Alert, error)
}

type handler struct {
	svc EquipmentService
}

func NewEquipmentHandler(service EquipmentService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/run-hours", h.recordRunHours)
	return r
}

type equipmentRequest struct {
	Type         string `json:"type"`
	Reference    string `json:"reference"`
	SerialNumber string `json:"serial_number"`
	Criticality  string `json:"criticality"`
	Status       string `json:"status"`
	VesselID     string `json:"vessel_id"`
	Description  string `json:"description"`
	InstallDate  string `json:"install_date"`
}

func (req equipmentRequest) toModel() *model.Equipment {
	return &model.Equipment{
		Type:         req.Type,
		Reference:    req.Reference,
		SerialNumber: req.SerialNumber,
		Criticality:  req.Criticality,
		Status:       model.EquipmentStatus(req.Status),
		VesselID:     req.VesselID,
		Description:  req.Description,
		InstallDate:  req.InstallDate,
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	eq, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, equipmentToResponse(eq))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	eq, err := h.svc.Equipment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, equipmentToResponse(eq))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.svc.List(r.Context(), model.EquipmentFilter{
		VesselID: q.Get("vessel_id"),
		Type:     q.Get("type"),
		Status:   model.EquipmentStatus(q.Get("status")),
	})
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]equipmentResponse, 0, len(out))
	for _, eq := range out {
		resp = append(resp, equipmentToResponse(eq))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	eq, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, equipmentToResponse(eq))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusNoContent, nil)
}

type runHoursRequest struct {
	Value float64 `json:"value"`
}

type runHoursResponse struct {
	Equipment equipmentResponse `json:"equipment"`
	Alerts    []alertResponse   `json:"alerts"`
}

func (h *handler) recordRunHours(w http.ResponseWriter, r *http.Request) {
	var req runHoursRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	recordedBy := ""
	if u := middleware.UserFromContext(r.Context()); u != nil {
		recordedBy = u.ID
	}

	eq, alerts, err := h.svc.RecordRunHours(r.Context(), chi.URLParam(r, "id"), req.Value, recordedBy)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := runHoursResponse{
		Equipment: equipmentToResponse(eq),
		Alerts:    make([]alertResponse, 0, len(alerts)),
	}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, alertToResponse(a))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

type runHourEntryResponse struct {
	Timestamp     time.Time `json:"timestamp"`
	Value         float64   `json:"value"`
	RecordedBy    string    `json:"recorded_by"`
	PreviousValue float64   `json:"previous_value"`
}

type equipmentResponse struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	Reference      string                 `json:"reference"`
	SerialNumber   string                 `json:"serial_number"`
	Criticality    string                 `json:"criticality"`
	Status         string                 `json:"status"`
	VesselID       string                 `json:"vessel_id"`
	Description    string                 `json:"description,omitempty"`
	InstallDate    string                 `json:"install_date,omitempty"`
	RunHours       *float64               `json:"run_hours,omitempty"`
	RunHourHistory []runHourEntryResponse `json:"run_hour_history,omitempty"`
	CreatedAt      *time.Time             `json:"created_at,omitempty"`
}

type alertResponse struct {
	Kind        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ItemID      string `json:"item_id"`
	ItemType    string `json:"item_type"`
}

func equipmentToResponse(eq *model.Equipment) equipmentResponse {
	history := make([]runHourEntryResponse, 0, len(eq.RunHourHistory))
	for _, e := range eq.RunHourHistory {
		history = append(history, runHourEntryResponse{
			Timestamp:     e.Timestamp,
			Value:         e.Value,
			RecordedBy:    e.RecordedBy,
			PreviousValue: e.PreviousValue,
		})
	}

	return equipmentResponse{
		ID:             eq.ID,
		Type:           eq.Type,
		Reference:      eq.Reference,
		SerialNumber:   eq.SerialNumber,
		Criticality:    eq.Criticality,
		Status:         string(eq.Status),
		VesselID:       eq.VesselID,
		Description:    eq.Description,
		InstallDate:    eq.InstallDate,
		RunHours:       eq.RunHours,
		RunHourHistory: history,
		CreatedAt:      eq.CreatedAt,
	}
}

func alertToResponse(a model.Alert) alertResponse {
	return alertResponse{
		Kind:        a.Kind,
		Severity:    string(a.Severity),
		Title:       a.Title,
		Description: a.Description,
		ItemID:      a.ItemID,
		ItemType:    a.ItemType,
	}
}
