package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
)

type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type AlertService interface {
	Compute(ctx context.Context) ([]model.Alert, error)
	Upcoming(ctx context.Context) ([]model.UpcomingWorkOrder, error)
}

type handler struct {
	dashboards DashboardService
	alerts     AlertService
}

func NewDashboardHandler(dashboards DashboardService, alerts AlertService) *handler {
	return &handler{dashboards: dashboards, alerts: alerts}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/stats", h.stats)
	r.Get("/alerts", h.listAlerts)
	r.Get("/upcoming-maintenance", h.upcoming)
	return r
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboards.Stats(r.Context())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, statsToResponse(stats))
}

func (h *handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.Compute(r.Context())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		resp = append(resp, alertResponse{
			Kind:        a.Kind,
			Severity:    string(a.Severity),
			Title:       a.Title,
			Description: a.Description,
			ItemID:      a.ItemID,
			ItemType:    a.ItemType,
		})
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

func (h *handler) upcoming(w http.ResponseWriter, r *http.Request) {
	upcoming, err := h.alerts.Upcoming(r.Context())
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	resp := make([]upcomingResponse, 0, len(upcoming))
	for _, u := range upcoming {
		resp = append(resp, upcomingResponse{
			ID:          u.WorkOrder.ID,
			Title:       u.WorkOrder.Title,
			PlannedDate: u.WorkOrder.PlannedDate,
			Priority:    u.WorkOrder.Priority,
			Status:      string(u.WorkOrder.Status),
			EquipmentID: u.WorkOrder.EquipmentID,
			AssignedTo:  u.WorkOrder.AssignedTo,
			DaysUntil:   u.DaysUntil,
			IsOverdue:   u.IsOverdue,
		})
	}
	httputil.JSON(w, r, http.StatusOK, resp)
}

type alertResponse struct {
	Kind        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ItemID      string `json:"item_id"`
	ItemType    string `json:"item_type"`
}

type upcomingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PlannedDate string `json:"planned_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	EquipmentID string `json:"equipment_id,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DaysUntil   int    `json:"days_until"`
	IsOverdue   bool   `json:"is_overdue"`
}

type equipmentStatsResponse struct {
	Total        int `json:"total"`
	InService    int `json:"in_service"`
	Maintenance  int `json:"maintenance"`
	OutOfService int `json:"out_of_service"`
}

type workOrderStatsResponse struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

type runHourSnapshotResponse struct {
	EquipmentID  string  `json:"equipment_id"`
	Reference    string  `json:"reference"`
	SerialNumber string  `json:"serial_number"`
	RunHours     float64 `json:"run_hours"`
	Status       string  `json:"status"`
}

type lowStockPartResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	ManufacturerRef  string     `json:"manufacturer_ref"`
	StockQuantity    int        `json:"stock_quantity"`
	MinimumThreshold int        `json:"minimum_threshold"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

type statsResponse struct {
	Equipment       equipmentStatsResponse    `json:"equipment"`
	WorkOrders      workOrderStatsResponse    `json:"work_orders"`
	LowStockCount   int                       `json:"low_stock_count"`
	TotalSpareParts int                       `json:"total_spare_parts"`
	LowStockParts   []lowStockPartResponse    `json:"low_stock_parts"`
	RunHours        []runHourSnapshotResponse `json:"run_hours"`
}

func statsToResponse(stats *model.DashboardStats) statsResponse {
	resp := statsResponse{
		Equipment: equipmentStatsResponse{
			Total:        stats.Equipment.Total,
			InService:    stats.Equipment.InService,
			Maintenance:  stats.Equipment.Maintenance,
			OutOfService: stats.Equipment.OutOfService,
		},
		WorkOrders: workOrderStatsResponse{
			Total:      stats.WorkOrders.Total,
			Scheduled:  stats.WorkOrders.Scheduled,
			InProgress: stats.WorkOrders.InProgress,
			Done:       stats.WorkOrders.Done,
		},
		LowStockCount:   stats.LowStockCount,
		TotalSpareParts: stats.TotalSpareParts,
		LowStockParts:   make([]lowStockPartResponse, 0, len(stats.LowStockParts)),
		RunHours:        make([]runHourSnapshotResponse, 0, len(stats.RunHours)),
	}

	for _, p := range stats.LowStockParts {
		resp.LowStockParts = append(resp.LowStockParts, lowStockPartResponse{
			ID:               p.ID,
			Name:             p.Name,
			ManufacturerRef:  p.ManufacturerRef,
			StockQuantity:    p.StockQuantity,
			MinimumThreshold: p.MinimumThreshold,
			CreatedAt:        p.CreatedAt,
		})
	}
	for _, s := range stats.RunHours {
		resp.RunHours = append(resp.RunHours, runHourSnapshotResponse{
			EquipmentID:  s.EquipmentID,
			Reference:    s.Reference,
			SerialNumber: s.SerialNumber,
			RunHours:     s.RunHours,
			Status:       string(s.Status),
		})
	}

	return resp
}
