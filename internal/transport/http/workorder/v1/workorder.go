package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type WorkOrderService interface {
	Create(ctx context.Context, wo *model.WorkOrder) (*model.WorkOrder, error)
	WorkOrder(ctx context.Context, id string) (*model.WorkOrder, error)
	List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error)
	Update(ctx context.Context, id string, wo *model.WorkOrder) (*model.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc WorkOrderService
}

func NewWorkOrderHandler(service WorkOrderService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

type workOrderRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	MaintenanceType  string   `json:"maintenance_type"`
	Priority         string   `json:"priority"`
	Status           string   `json:"status"`
	VesselID         string   `json:"vessel_id"`
	EquipmentID      string   `json:"equipment_id"`
	PlannedDate      string   `json:"planned_date"`
	PeriodicityDays  *int     `json:"periodicity_days"`
	PeriodicityHours *float64 `json:"periodicity_hours"`
	TriggerRunHours  *float64 `json:"trigger_run_hours"`
	AssignedTo       string   `json:"assigned_to"`
}

func (req workOrderRequest) toModel() *model.WorkOrder {
	return &model.WorkOrder{
		Title:            req.Title,
		Description:      req.Description,
		MaintenanceType:  model.MaintenanceType(req.MaintenanceType),
		Priority:         req.Priority,
		Status:           model.WorkOrderStatus(req.Status),
		VesselID:         req.VesselID,
		EquipmentID:      req.EquipmentID,
		PlannedDate:      req.PlannedDate,
		PeriodicityDays:  req.PeriodicityDays,
		PeriodicityHours: req.PeriodicityHours,
		TriggerRunHours:  req.TriggerRunHours,
		AssignedTo:       req.AssignedTo,
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req workOrderRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	wo, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, workOrderToResponse(wo))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	wo, err := h.svc.WorkOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, workOrderToResponse(wo))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.WorkOrderFilter{
		EquipmentID:     q.Get("equipment_id"),
		VesselID:        q.Get("vessel_id"),
		MaintenanceType: model.MaintenanceType(q.Get("maintenance_type")),
	}
	if status := q.Get("status"); status != "" {
		filter.Statuses = []model.WorkOrderStatus{model.WorkOrderStatus(status)}
	}

	out, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]workOrderResponse, 0, len(out))
	for _, wo := range out {
		resp = append(resp, workOrderToResponse(wo))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req workOrderRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	wo, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, workOrderToResponse(wo))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusNoContent, nil)
}

type workOrderResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	MaintenanceType  string     `json:"maintenance_type"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	VesselID         string     `json:"vessel_id,omitempty"`
	EquipmentID      string     `json:"equipment_id,omitempty"`
	PlannedDate      string     `json:"planned_date"`
	PeriodicityDays  *int       `json:"periodicity_days,omitempty"`
	PeriodicityHours *float64   `json:"periodicity_hours,omitempty"`
	TriggerRunHours  *float64   `json:"trigger_run_hours,omitempty"`
	AssignedTo       string     `json:"assigned_to,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

func workOrderToResponse(wo *model.WorkOrder) workOrderResponse {
	return workOrderResponse{
		ID:               wo.ID,
		Title:            wo.Title,
		Description:      wo.Description,
		MaintenanceType:  string(wo.MaintenanceType),
		Priority:         wo.Priority,
		Status:           string(wo.Status),
		VesselID:         wo.VesselID,
		EquipmentID:      wo.EquipmentID,
		PlannedDate:      wo.PlannedDate,
		PeriodicityDays:  wo.PeriodicityDays,
		PeriodicityHours: wo.PeriodicityHours,
		TriggerRunHours:  wo.TriggerRunHours,
		AssignedTo:       wo.AssignedTo,
		CreatedAt:        wo.CreatedAt,
	}
}
