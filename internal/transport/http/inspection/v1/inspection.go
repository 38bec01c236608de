package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type InspectionService interface {
	Create(ctx context.Context, insp *model.Inspection) (*model.Inspection, error)
	Inspection(ctx context.Context, id string) (*model.Inspection, error)
	List(ctx context.Context) ([]*model.Inspection, error)
	Update(ctx context.Context, id string, insp *model.Inspection) (*model.Inspection, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc InspectionService
}

func NewInspectionHandler(service InspectionService) *handler {
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

type inspectionRequest struct {
	Title          string `json:"title"`
	ControlType    string `json:"control_type"`
	Periodicity    string `json:"periodicity"`
	VesselID       string `json:"vessel_id"`
	EquipmentID    string `json:"equipment_id"`
	CompletionDate string `json:"completion_date"`
	CertifyingBody string `json:"certifying_body"`
	Result         string `json:"result"`
	Observations   string `json:"observations"`
}

func (req inspectionRequest) toModel() *model.Inspection {
	return &model.Inspection{
		Title:          req.Title,
		ControlType:    req.ControlType,
		Periodicity:    req.Periodicity,
		VesselID:       req.VesselID,
		EquipmentID:    req.EquipmentID,
		CompletionDate: req.CompletionDate,
		CertifyingBody: req.CertifyingBody,
		Result:         req.Result,
		Observations:   req.Observations,
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req inspectionRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	insp, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, inspectionToResponse(insp))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	insp, err := h.svc.Inspection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, inspectionToResponse(insp))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]inspectionResponse, 0, len(out))
	for _, insp := range out {
		resp = append(resp, inspectionToResponse(insp))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req inspectionRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	insp, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, inspectionToResponse(insp))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusNoContent, nil)
}

type inspectionResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	ControlType    string     `json:"control_type,omitempty"`
	Periodicity    string     `json:"periodicity"`
	VesselID       string     `json:"vessel_id,omitempty"`
	EquipmentID    string     `json:"equipment_id,omitempty"`
	CompletionDate string     `json:"completion_date,omitempty"`
	ValidityDate   string     `json:"validity_date"`
	CertifyingBody string     `json:"certifying_body,omitempty"`
	Result         string     `json:"result,omitempty"`
	Observations   string     `json:"observations,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

func inspectionToResponse(insp *model.Inspection) inspectionResponse {
	return inspectionResponse{
		ID:             insp.ID,
		Title:          insp.Title,
		ControlType:    insp.ControlType,
		Periodicity:    insp.Periodicity,
		VesselID:       insp.VesselID,
		EquipmentID:    insp.EquipmentID,
		CompletionDate: insp.CompletionDate,
		ValidityDate:   insp.ValidityDate,
		CertifyingBody: insp.CertifyingBody,
		Result:         insp.Result,
		Observations:   insp.Observations,
		CreatedAt:      insp.CreatedAt,
	}
}
