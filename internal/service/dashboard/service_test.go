package service

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

func TestServiceStats(t *testing.T) {
	t.Parallel()

	type deps struct {
		equipments *mocks.MockEquipmentRepository
		workOrders *mocks.MockWorkOrderRepository
		spareParts *mocks.MockSparePartRepository
	}

	tracked := map[string]bool{model.EquipmentTypeCompressor: true}

	newSvc := func(d deps) *service {
		return NewDashboardService(d.equipments, d.workOrders, d.spareParts, tracked)
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, stats *model.DashboardStats, err error)
	}

	tests := []testCase{
		{
			name: "equipment list failure surfaces",
			setup: func(d deps) {
				d.equipments.On("List", mock.Anything, mock.Anything).
					Return(([]*model.Equipment)(nil), errors.New("db read failed")).Once()
			},
			assert: func(t *testing.T, stats *model.DashboardStats, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, stats)
			},
		},
		{
			name: "empty system yields zeroed counters, never nil slices",
			setup: func(d deps) {
				d.equipments.On("List", mock.Anything, mock.Anything).
					Return([]*model.Equipment{}, nil).Once()
				d.workOrders.On("List", mock.Anything, mock.Anything).
					Return([]*model.WorkOrder{}, nil).Once()
				d.spareParts.On("List", mock.Anything, mock.Anything).
					Return([]*model.SparePart{}, nil).Once()
			},
			assert: func(t *testing.T, stats *model.DashboardStats, err error) {
				require.NoError(t, err)
				require.NotNil(t, stats)
				assert.Zero(t, stats.Equipment.Total)
				assert.Zero(t, stats.WorkOrders.Total)
				assert.NotNil(t, stats.LowStockParts)
				assert.NotNil(t, stats.RunHours)
			},
		},
		{
			name: "counts by status, tracked counters, low stock",
			setup: func(d deps) {
				d.equipments.On("List", mock.Anything, mock.Anything).
					Return([]*model.Equipment{
						{ID: "eq-1", Type: model.EquipmentTypeCompressor, Reference: "CMP-001",
							SerialNumber: "SN-1", Status: model.EquipmentStatusInService,
							RunHours: lo.ToPtr(412.5)},
						{ID: "eq-2", Type: model.EquipmentTypeCompressor, Reference: "CMP-002",
							SerialNumber: "SN-2", Status: model.EquipmentStatusMaintenance},
						{ID: "eq-3", Type: model.EquipmentTypeDoor, Status: model.EquipmentStatusOutOfService},
						{ID: "eq-4", Type: model.EquipmentTypeValve, Status: model.EquipmentStatusInService},
					}, nil).Once()
				d.workOrders.On("List", mock.Anything, mock.Anything).
					Return([]*model.WorkOrder{
						{ID: "wo-1", Status: model.WorkOrderStatusScheduled},
						{ID: "wo-2", Status: model.WorkOrderStatusScheduled},
						{ID: "wo-3", Status: model.WorkOrderStatusInProgress},
						{ID: "wo-4", Status: model.WorkOrderStatusDone},
						{ID: "wo-5", Status: model.WorkOrderStatusCancelled},
					}, nil).Once()
				d.spareParts.On("List", mock.Anything, mock.Anything).
					Return([]*model.SparePart{
						{ID: "p-1", StockQuantity: 1, MinimumThreshold: 2},
						{ID: "p-2", StockQuantity: 9, MinimumThreshold: 2},
					}, nil).Once()
			},
			assert: func(t *testing.T, stats *model.DashboardStats, err error) {
				require.NoError(t, err)
				require.NotNil(t, stats)

				assert.Equal(t, 4, stats.Equipment.Total)
				assert.Equal(t, 2, stats.Equipment.InService)
				assert.Equal(t, 1, stats.Equipment.Maintenance)
				assert.Equal(t, 1, stats.Equipment.OutOfService)

				assert.Equal(t, 5, stats.WorkOrders.Total)
				assert.Equal(t, 2, stats.WorkOrders.Scheduled)
				assert.Equal(t, 1, stats.WorkOrders.InProgress)
				assert.Equal(t, 1, stats.WorkOrders.Done)

				require.Len(t, stats.RunHours, 2)
				assert.Equal(t, "eq-1", stats.RunHours[0].EquipmentID)
				assert.Equal(t, 412.5, stats.RunHours[0].RunHours)
				// Counter defaults to zero when never recorded.
				assert.Equal(t, "eq-2", stats.RunHours[1].EquipmentID)
				assert.Zero(t, stats.RunHours[1].RunHours)

				assert.Equal(t, 2, stats.TotalSpareParts)
				assert.Equal(t, 1, stats.LowStockCount)
				require.Len(t, stats.LowStockParts, 1)
				assert.Equal(t, "p-1", stats.LowStockParts[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				equipments: mocks.NewMockEquipmentRepository(t),
				workOrders: mocks.NewMockWorkOrderRepository(t),
				spareParts: mocks.NewMockSparePartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			stats, err := svc.Stats(context.Background())
			tt.assert(t, stats, err)
		})
	}
}
