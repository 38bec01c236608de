package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

func TestServiceCompute(t *testing.T) {
	t.Parallel()

	type deps struct {
		spareParts  *mocks.MockSparePartRepository
		inspections *mocks.MockInspectionRepository
		workOrders  *mocks.MockWorkOrderRepository
		equipments  *mocks.MockEquipmentRepository
	}

	// Today is fixed at 2026-03-14.
	fixedNow := func() time.Time {
		return time.Date(2026, 3, 14, 16, 45, 0, 0, time.UTC)
	}

	newSvc := func(d deps) *service {
		svc := NewAlertService(d.spareParts, d.inspections, d.workOrders, d.equipments)
		svc.now = fixedNow
		return svc
	}

	noParts := func(d deps) {
		d.spareParts.On("List", mock.Anything, mock.Anything).
			Return([]*model.SparePart{}, nil).Once()
	}
	noInspections := func(d deps) {
		d.inspections.On("List", mock.Anything).
			Return([]*model.Inspection{}, nil).Once()
	}
	noWorkOrders := func(d deps) {
		d.workOrders.On("List", mock.Anything, mock.Anything).
			Return([]*model.WorkOrder{}, nil).Once()
	}
	noEquipment := func(d deps) {
		d.equipments.On("List", mock.Anything, mock.Anything).
			Return([]*model.Equipment{}, nil).Once()
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, alerts []model.Alert, err error)
	}

	tests := []testCase{
		{
			name: "quiet system yields no alerts",
			setup: func(d deps) {
				noParts(d)
				noInspections(d)
				noWorkOrders(d)
				noEquipment(d)
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				assert.Empty(t, alerts)
			},
		},
		{
			name: "low stock warns at the threshold, not above it",
			setup: func(d deps) {
				d.spareParts.On("List", mock.Anything, mock.Anything).
					Return([]*model.SparePart{
						{ID: "p-at", Name: "O-ring", StockQuantity: 2, MinimumThreshold: 2},
						{ID: "p-above", Name: "Gauge", StockQuantity: 3, MinimumThreshold: 2},
					}, nil).Once()
				noInspections(d)
				noWorkOrders(d)
				noEquipment(d)
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				require.Len(t, alerts, 1)
				assert.Equal(t, model.AlertLowStock, alerts[0].Kind)
				assert.Equal(t, model.SeverityWarning, alerts[0].Severity)
				assert.Equal(t, "p-at", alerts[0].ItemID)
				assert.Equal(t, "Quantity: 2 / Threshold: 2", alerts[0].Description)
			},
		},
		{
			name: "inspection window: expired critical, 30 days warning, 31 days silent",
			setup: func(d deps) {
				noParts(d)
				d.inspections.On("List", mock.Anything).
					Return([]*model.Inspection{
						{ID: "i-expired", Title: "Pressure test", ValidityDate: "2026-03-13"},
						{ID: "i-edge", Title: "Valve control", ValidityDate: "2026-04-13"},
						{ID: "i-far", Title: "Hull survey", ValidityDate: "2026-04-14"},
						{ID: "i-bad", Title: "Ghost", ValidityDate: "not-a-date"},
					}, nil).Once()
				noWorkOrders(d)
				noEquipment(d)
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				require.Len(t, alerts, 2)

				assert.Equal(t, model.AlertInspectionExpired, alerts[0].Kind)
				assert.Equal(t, model.SeverityCritical, alerts[0].Severity)
				assert.Equal(t, "i-expired", alerts[0].ItemID)
				assert.Equal(t, "Expired 1 days ago", alerts[0].Description)

				assert.Equal(t, model.AlertInspectionDue, alerts[1].Kind)
				assert.Equal(t, model.SeverityWarning, alerts[1].Severity)
				assert.Equal(t, "i-edge", alerts[1].ItemID)
				assert.Equal(t, "Expires in 30 days", alerts[1].Description)
			},
		},
		{
			name: "overdue work orders: eight days late is critical, seven is a warning",
			setup: func(d deps) {
				noParts(d)
				noInspections(d)
				d.workOrders.On("List", mock.Anything, model.WorkOrderFilter{
					Statuses: []model.WorkOrderStatus{
						model.WorkOrderStatusScheduled,
						model.WorkOrderStatusInProgress,
					},
				}).
					Return([]*model.WorkOrder{
						{ID: "wo-8", Title: "Seal swap", PlannedDate: "2026-03-06"},
						{ID: "wo-7", Title: "Filter change", PlannedDate: "2026-03-07"},
						{ID: "wo-today", Title: "Walkaround", PlannedDate: "2026-03-14"},
						{ID: "wo-bad", Title: "Ghost", PlannedDate: "soon"},
					}, nil).Once()
				noEquipment(d)
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				require.Len(t, alerts, 2)

				assert.Equal(t, model.SeverityCritical, alerts[0].Severity)
				assert.Equal(t, "wo-8", alerts[0].ItemID)
				assert.Equal(t, "8 days late", alerts[0].Description)

				assert.Equal(t, model.SeverityWarning, alerts[1].Severity)
				assert.Equal(t, "wo-7", alerts[1].ItemID)
				assert.Equal(t, "7 days late", alerts[1].Description)
			},
		},
		{
			name: "out-of-service equipment is always critical",
			setup: func(d deps) {
				noParts(d)
				noInspections(d)
				noWorkOrders(d)
				d.equipments.On("List", mock.Anything, model.EquipmentFilter{
					Status: model.EquipmentStatusOutOfService,
				}).
					Return([]*model.Equipment{
						{
							ID:           "eq-1",
							Type:         model.EquipmentTypeCompressor,
							Reference:    "CMP-001",
							SerialNumber: "SN-9",
							Status:       model.EquipmentStatusOutOfService,
						},
					}, nil).Once()
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				require.Len(t, alerts, 1)
				assert.Equal(t, model.AlertEquipmentOut, alerts[0].Kind)
				assert.Equal(t, model.SeverityCritical, alerts[0].Severity)
				assert.Equal(t, "Ref: CMP-001 - S/N: SN-9", alerts[0].Description)
			},
		},
		{
			name: "mixed severities sort critical first, stable within a rank",
			setup: func(d deps) {
				d.spareParts.On("List", mock.Anything, mock.Anything).
					Return([]*model.SparePart{
						{ID: "p-low", Name: "O-ring", StockQuantity: 0, MinimumThreshold: 2},
					}, nil).Once()
				d.inspections.On("List", mock.Anything).
					Return([]*model.Inspection{
						{ID: "i-expired", Title: "Pressure test", ValidityDate: "2026-01-01"},
					}, nil).Once()
				noWorkOrders(d)
				d.equipments.On("List", mock.Anything, mock.Anything).
					Return([]*model.Equipment{
						{ID: "eq-1", Type: model.EquipmentTypeValve, Status: model.EquipmentStatusOutOfService},
					}, nil).Once()
			},
			assert: func(t *testing.T, alerts []model.Alert, err error) {
				require.NoError(t, err)
				require.Len(t, alerts, 3)

				// Two criticals keep their scan order, the warning trails.
				assert.Equal(t, "i-expired", alerts[0].ItemID)
				assert.Equal(t, "eq-1", alerts[1].ItemID)
				assert.Equal(t, "p-low", alerts[2].ItemID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				spareParts:  mocks.NewMockSparePartRepository(t),
				inspections: mocks.NewMockInspectionRepository(t),
				workOrders:  mocks.NewMockWorkOrderRepository(t),
				equipments:  mocks.NewMockEquipmentRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			alerts, err := svc.Compute(context.Background())
			tt.assert(t, alerts, err)
		})
	}
}

func TestServiceUpcoming(t *testing.T) {
	t.Parallel()

	type deps struct {
		spareParts  *mocks.MockSparePartRepository
		inspections *mocks.MockInspectionRepository
		workOrders  *mocks.MockWorkOrderRepository
		equipments  *mocks.MockEquipmentRepository
	}

	fixedNow := func() time.Time {
		return time.Date(2026, 3, 14, 16, 45, 0, 0, time.UTC)
	}

	newSvc := func(d deps) *service {
		svc := NewAlertService(d.spareParts, d.inspections, d.workOrders, d.equipments)
		svc.now = fixedNow
		return svc
	}

	t.Run("sorted nearest first, overdue flagged, unparseable skipped", func(t *testing.T) {
		t.Parallel()

		d := deps{
			spareParts:  mocks.NewMockSparePartRepository(t),
			inspections: mocks.NewMockInspectionRepository(t),
			workOrders:  mocks.NewMockWorkOrderRepository(t),
			equipments:  mocks.NewMockEquipmentRepository(t),
		}
		d.workOrders.On("List", mock.Anything, mock.Anything).
			Return([]*model.WorkOrder{
				{ID: "wo-next-week", PlannedDate: "2026-03-21"},
				{ID: "wo-late", PlannedDate: "2026-03-10"},
				{ID: "wo-tomorrow", PlannedDate: "2026-03-15"},
				{ID: "wo-bad", PlannedDate: "someday"},
			}, nil).Once()

		svc := newSvc(d)

		upcoming, err := svc.Upcoming(context.Background())
		require.NoError(t, err)
		require.Len(t, upcoming, 3)

		assert.Equal(t, "wo-late", upcoming[0].WorkOrder.ID)
		assert.Equal(t, -4, upcoming[0].DaysUntil)
		assert.True(t, upcoming[0].IsOverdue)

		assert.Equal(t, "wo-tomorrow", upcoming[1].WorkOrder.ID)
		assert.Equal(t, 1, upcoming[1].DaysUntil)
		assert.False(t, upcoming[1].IsOverdue)

		assert.Equal(t, "wo-next-week", upcoming[2].WorkOrder.ID)
		assert.Equal(t, 7, upcoming[2].DaysUntil)
	})

	t.Run("capped at ten entries", func(t *testing.T) {
		t.Parallel()

		d := deps{
			spareParts:  mocks.NewMockSparePartRepository(t),
			inspections: mocks.NewMockInspectionRepository(t),
			workOrders:  mocks.NewMockWorkOrderRepository(t),
			equipments:  mocks.NewMockEquipmentRepository(t),
		}

		open := make([]*model.WorkOrder, 0, 15)
		base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			open = append(open, &model.WorkOrder{
				ID:          fmt.Sprintf("wo-%02d", i),
				PlannedDate: base.AddDate(0, 0, i).Format(model.DateLayout),
			})
		}
		d.workOrders.On("List", mock.Anything, mock.Anything).
			Return(open, nil).Once()

		svc := newSvc(d)

		upcoming, err := svc.Upcoming(context.Background())
		require.NoError(t, err)
		assert.Len(t, upcoming, 10)
		assert.Equal(t, 1, upcoming[0].DaysUntil)
		assert.Equal(t, 10, upcoming[9].DaysUntil)
	})
}
