package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type VesselService interface {
	Create(ctx context.Context, v *model.Vessel) (*model.Vessel, error)
	Vessel(ctx context.Context) (*model.Vessel, error)
	Update(ctx context.Context, id string, v *model.Vessel) (*model.Vessel, error)
}

type handler struct {
	svc VesselService
}

func NewVesselHandler(service VesselService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.get)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	return r
}

type vesselRequest struct {
	Identifier     string   `json:"identifier"`
	Model          string   `json:"model"`
	Manufacturer   string   `json:"manufacturer"`
	CommissionDate string   `json:"commission_date"`
	MaxPressureBar float64  `json:"max_pressure_bar"`
	Standards      []string `json:"standards"`
	Description    string   `json:"description"`
}

func (req vesselRequest) toModel() *model.Vessel {
	return &model.Vessel{
		Identifier:     req.Identifier,
		Model:          req.Model,
		Manufacturer:   req.Manufacturer,
		CommissionDate: req.CommissionDate,
		MaxPressureBar: req.MaxPressureBar,
		Standards:      req.Standards,
		Description:    req.Description,
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req vesselRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	v, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, vesselToResponse(v))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Vessel(r.Context())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, vesselToResponse(v))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req vesselRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	v, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, vesselToResponse(v))
}

type vesselResponse struct {
	ID             string     `json:"id"`
	Identifier     string     `json:"identifier"`
	Model          string     `json:"model"`
	Manufacturer   string     `json:"manufacturer,omitempty"`
	CommissionDate string     `json:"commission_date,omitempty"`
	MaxPressureBar float64    `json:"max_pressure_bar,omitempty"`
	Standards      []string   `json:"standards,omitempty"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

func vesselToResponse(v *model.Vessel) vesselResponse {
	return vesselResponse{
		ID:             v.ID,
		Identifier:     v.Identifier,
		Model:          v.Model,
		Manufacturer:   v.Manufacturer,
		CommissionDate: v.CommissionDate,
		MaxPressureBar: v.MaxPressureBar,
		Standards:      v.Standards,
		Description:    v.Description,
		CreatedAt:      v.CreatedAt,
	}
}
