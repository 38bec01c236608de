package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type SparePartService interface {
	Create(ctx context.Context, p *model.SparePart) (*model.SparePart, error)
	SparePart(ctx context.Context, id string) (*model.SparePart, error)
	List(ctx context.Context, filter model.SparePartFilter, lowStockOnly bool) ([]*model.SparePart, error)
	Update(ctx context.Context, id string, upd model.SparePartUpdate) (*model.SparePart, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc SparePartService
}

func NewSparePartHandler(service SparePartService) *handler {
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

type sparePartRequest struct {
	Name             string   `json:"name"`
	ManufacturerRef  string   `json:"manufacturer_ref"`
	EquipmentType    string   `json:"equipment_type"`
	StockQuantity    int      `json:"stock_quantity"`
	MinimumThreshold int      `json:"minimum_threshold"`
	Location         string   `json:"location"`
	Supplier         string   `json:"supplier"`
	UnitPrice        *float64 `json:"unit_price"`
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req sparePartRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), &model.SparePart{
		Name:             req.Name,
		ManufacturerRef:  req.ManufacturerRef,
		EquipmentType:    req.EquipmentType,
		StockQuantity:    req.StockQuantity,
		MinimumThreshold: req.MinimumThreshold,
		Location:         req.Location,
		Supplier:         req.Supplier,
		UnitPrice:        req.UnitPrice,
	})
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusCreated, sparePartToResponse(p))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.SparePart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, sparePartToResponse(p))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.svc.List(r.Context(),
		model.SparePartFilter{EquipmentType: q.Get("equipment_type")},
		q.Get("low_stock") == "true",
	)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]sparePartResponse, 0, len(out))
	for _, p := range out {
		resp = append(resp, sparePartToResponse(p))
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

type sparePartUpdateRequest struct {
	StockQuantity    *int     `json:"stock_quantity"`
	MinimumThreshold *int     `json:"minimum_threshold"`
	Location         *string  `json:"location"`
	Supplier         *string  `json:"supplier"`
	UnitPrice        *float64 `json:"unit_price"`
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req sparePartUpdateRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), model.SparePartUpdate{
		StockQuantity:    req.StockQuantity,
		MinimumThreshold: req.MinimumThreshold,
		Location:         req.Location,
		Supplier:         req.Supplier,
		UnitPrice:        req.UnitPrice,
	})
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, sparePartToResponse(p))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusNoContent, nil)
}

type sparePartResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	ManufacturerRef  string     `json:"manufacturer_ref"`
	EquipmentType    string     `json:"equipment_type,omitempty"`
	StockQuantity    int        `json:"stock_quantity"`
	MinimumThreshold int        `json:"minimum_threshold"`
	Location         string     `json:"location,omitempty"`
	Supplier         string     `json:"supplier,omitempty"`
	UnitPrice        *float64   `json:"unit_price,omitempty"`
	LowStock         bool       `json:"low_stock"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

func sparePartToResponse(p *model.SparePart) sparePartResponse {
	return sparePartResponse{
		ID:               p.ID,
		Name:             p.Name,
		ManufacturerRef:  p.ManufacturerRef,
		EquipmentType:    p.EquipmentType,
		StockQuantity:    p.StockQuantity,
		MinimumThreshold: p.MinimumThreshold,
		Location:         p.Location,
		Supplier:         p.Supplier,
		UnitPrice:        p.UnitPrice,
		LowStock:         p.LowStock(),
		CreatedAt:        p.CreatedAt,
	}
}
