package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type InterventionService interface {
	Record(ctx context.Context, in *model.Intervention) (*model.Intervention, error)
	Intervention(ctx context.Context, id string) (*model.Intervention, error)
	List(ctx context.Context, filter model.InterventionFilter) ([]*model.Intervention, error)
}

type handler struct {
	svc InterventionService
}

func NewInterventionHandler(service InterventionService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.record)
	r.Get("/{id}", h.get)
	return r
}

type partUsageDTO struct {
	SparePartID string `json:"spare_part_id"`
	Quantity    int    `json:"quantity"`
}

type interventionRequest struct {
	Type            string         `json:"type"`
	WorkOrderID     string         `json:"work_order_id"`
	InspectionID    string         `json:"inspection_id"`
	EquipmentID     string         `json:"equipment_id"`
	Date            string         `json:"date"`
	Technician      string         `json:"technician"`
	Actions         string         `json:"actions"`
	Observations    string         `json:"observations"`
	PartsUsed       []partUsageDTO `json:"parts_used"`
	RunHours        *float64       `json:"run_hours"`
	DurationMinutes *int           `json:"duration_minutes"`
}

func (req interventionRequest) toModel() *model.Intervention {
	parts := make([]model.PartUsage, 0, len(req.PartsUsed))
	for _, p := range req.PartsUsed {
		parts = append(parts, model.PartUsage{
			SparePartID: p.SparePartID,
			Quantity:    p.Quantity,
		})
	}

	return &model.Intervention{
		Type:            model.InterventionType(req.Type),
		WorkOrderID:     req.WorkOrderID,
		InspectionID:    req.InspectionID,
		EquipmentID:     req.EquipmentID,
		Date:            req.Date,
		Technician:      req.Technician,
		Actions:         req.Actions,
		Observations:    req.Observations,
		PartsUsed:       parts,
		RunHours:        req.RunHours,
		DurationMinutes: req.DurationMinutes,
	}
}

func (h *handler) record(w http.ResponseWriter, r *http.Request) {
	var req interventionRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	in, err := h.svc.Record(r.Context(), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, interventionToResponse(in))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	in, err := h.svc.Intervention(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, interventionToResponse(in))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.svc.List(r.Context(), model.InterventionFilter{
		WorkOrderID: q.Get("work_order_id"),
		EquipmentID: q.Get("equipment_id"),
	})
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]interventionResponse, 0, len(out))
	for _, in := range out {
		resp = append(resp, interventionToResponse(in))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

type interventionResponse struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	WorkOrderID     string         `json:"work_order_id,omitempty"`
	InspectionID    string         `json:"inspection_id,omitempty"`
	EquipmentID     string         `json:"equipment_id,omitempty"`
	Date            string         `json:"date"`
	Technician      string         `json:"technician,omitempty"`
	Actions         string         `json:"actions,omitempty"`
	Observations    string         `json:"observations,omitempty"`
	PartsUsed       []partUsageDTO `json:"parts_used"`
	RunHours        *float64       `json:"run_hours,omitempty"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
}

func interventionToResponse(in *model.Intervention) interventionResponse {
	parts := make([]partUsageDTO, 0, len(in.PartsUsed))
	for _, p := range in.PartsUsed {
		parts = append(parts, partUsageDTO{
			SparePartID: p.SparePartID,
			Quantity:    p.Quantity,
		})
	}

	return interventionResponse{
		ID:              in.ID,
		Type:            string(in.Type),
		WorkOrderID:     in.WorkOrderID,
		InspectionID:    in.InspectionID,
		EquipmentID:     in.EquipmentID,
		Date:            in.Date,
		Technician:      in.Technician,
		Actions:         in.Actions,
		Observations:    in.Observations,
		PartsUsed:       parts,
		RunHours:        in.RunHours,
		DurationMinutes: in.DurationMinutes,
		CreatedAt:       in.CreatedAt,
	}
}
