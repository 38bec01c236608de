package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/schedule"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

func TestServiceRecord(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository  *mocks.MockInterventionRepository
		workOrders  *mocks.MockWorkOrderRepository
		inspections *mocks.MockInspectionRepository
		spareParts  *mocks.MockSparePartRepository
		equipments  *mocks.MockEquipmentRepository
		runHours    *mocks.MockRunHourRecorder
	}

	fixedNow := func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	}

	newSvc := func(d deps) *service {
		svc := NewInterventionService(
			d.repository,
			d.workOrders,
			d.inspections,
			d.spareParts,
			d.equipments,
			d.runHours,
			schedule.NewCalculatorAt(schedule.DefaultTable(), fixedNow),
		)
		svc.now = fixedNow
		return svc
	}

	workOrderID := gofakeit.UUID()
	inspectionID := gofakeit.UUID()
	equipmentID := gofakeit.UUID()

	type testCase struct {
		name   string
		input  *model.Intervention
		setup  func(d deps)
		assert func(t *testing.T, res *model.Intervention, err error, d deps)
	}

	tests := []testCase{
		{
			name:  "validation error: unknown type",
			input: &model.Intervention{Type: "inspection", Date: "2026-03-14"},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "validation error: unparseable date",
			input: &model.Intervention{Type: model.InterventionCurative, Date: "14/03/2026"},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "curative: consumes stock with a zero floor and closes the work order",
			input: &model.Intervention{
				Type:        model.InterventionCurative,
				WorkOrderID: workOrderID,
				Date:        "2026-03-14",
				Technician:  "J. Cousteau",
				PartsUsed: []model.PartUsage{
					{SparePartID: "part-ok", Quantity: 2},
					{SparePartID: "part-drained", Quantity: 10},
					{SparePartID: "part-ghost", Quantity: 1},
				},
			},
			setup: func(d deps) {
				d.workOrders.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:          workOrderID,
						EquipmentID: equipmentID,
						Status:      model.WorkOrderStatusScheduled,
					}, nil).
					Once()
				d.spareParts.
					On("SparePartByID", mock.Anything, "part-ok").
					Return(&model.SparePart{ID: "part-ok", StockQuantity: 5, MinimumThreshold: 1}, nil).
					Once()
				d.spareParts.
					On("SetStock", mock.Anything, "part-ok", 3).
					Return(nil).
					Once()
				d.spareParts.
					On("SparePartByID", mock.Anything, "part-drained").
					Return(&model.SparePart{ID: "part-drained", StockQuantity: 4, MinimumThreshold: 1}, nil).
					Once()
				d.spareParts.
					On("SetStock", mock.Anything, "part-drained", 0).
					Return(nil).
					Once()
				d.spareParts.
					On("SparePartByID", mock.Anything, "part-ghost").
					Return((*model.SparePart)(nil), model.ErrSparePartNotFound).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(in *model.Intervention) bool {
						return in.ID != "" && in.EquipmentID == equipmentID && len(in.PartsUsed) == 3
					})).
					Return(nil).
					Once()
				d.workOrders.
					On("SetStatus", mock.Anything, workOrderID, model.WorkOrderStatusDone).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, equipmentID, res.EquipmentID)

				d.spareParts.AssertNotCalled(t, "SetStock", mock.Anything, "part-ghost", mock.Anything)
			},
		},
		{
			name: "curative: dangling work order is tolerated",
			input: &model.Intervention{
				Type:        model.InterventionCurative,
				WorkOrderID: workOrderID,
				Date:        "2026-03-14",
			},
			setup: func(d deps) {
				d.workOrders.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return((*model.WorkOrder)(nil), model.ErrWorkOrderNotFound).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)

				d.workOrders.AssertNotCalled(t, "SetStatus",
					mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "preventive: calendar recurrence spawns a successor offset from the intervention date",
			input: &model.Intervention{
				Type:        model.InterventionPreventive,
				WorkOrderID: workOrderID,
				Date:        "2026-03-14",
			},
			setup: func(d deps) {
				d.workOrders.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:              workOrderID,
						Title:           "Monthly door seal check",
						Description:     "Inspect and grease",
						MaintenanceType: model.MaintenancePreventive,
						Priority:        model.PriorityHigh,
						Status:          model.WorkOrderStatusScheduled,
						VesselID:        "vessel-1",
						EquipmentID:     equipmentID,
						PlannedDate:     "2026-03-10",
						PeriodicityDays: lo.ToPtr(30),
						AssignedTo:      "tech-1",
					}, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				d.workOrders.
					On("SetStatus", mock.Anything, workOrderID, model.WorkOrderStatusDone).
					Return(nil).
					Once()
				d.workOrders.
					On("Create", mock.Anything, mock.MatchedBy(func(next *model.WorkOrder) bool {
						return next.ID != workOrderID &&
							next.Title == "Monthly door seal check" &&
							next.Priority == model.PriorityHigh &&
							next.Status == model.WorkOrderStatusScheduled &&
							next.VesselID == "vessel-1" &&
							next.EquipmentID == equipmentID &&
							next.AssignedTo == "tech-1" &&
							next.PlannedDate == "2026-04-13" &&
							next.TriggerRunHours == nil
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
			},
		},
		{
			name: "preventive: hour recurrence rearms the trigger from the fresh counter",
			input: &model.Intervention{
				Type:        model.InterventionPreventive,
				WorkOrderID: workOrderID,
				Date:        "2026-03-14",
				Technician:  "tech-1",
				RunHours:    lo.ToPtr(600.0),
			},
			setup: func(d deps) {
				d.workOrders.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:               workOrderID,
						Title:            "500h compressor service",
						MaintenanceType:  model.MaintenancePreventive,
						Status:           model.WorkOrderStatusScheduled,
						EquipmentID:      equipmentID,
						PlannedDate:      "2026-03-01",
						PeriodicityHours: lo.ToPtr(500.0),
						TriggerRunHours:  lo.ToPtr(600.0),
					}, nil).
					Once()
				d.runHours.
					On("RecordRunHours", mock.Anything, equipmentID, 600.0, "tech-1").
					Return(&model.Equipment{
						ID:       equipmentID,
						Type:     model.EquipmentTypeCompressor,
						RunHours: lo.ToPtr(600.0),
					}, []model.Alert{}, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				d.workOrders.
					On("SetStatus", mock.Anything, workOrderID, model.WorkOrderStatusDone).
					Return(nil).
					Once()
				d.workOrders.
					On("Create", mock.Anything, mock.MatchedBy(func(next *model.WorkOrder) bool {
						return next.PeriodicityHours != nil &&
							next.TriggerRunHours != nil &&
							*next.TriggerRunHours == 1100.0 &&
							next.PlannedDate == "2026-03-14"
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, equipmentID, res.EquipmentID)
			},
		},
		{
			name: "preventive: hour recurrence without a reading reads the stored counter",
			input: &model.Intervention{
				Type:        model.InterventionPreventive,
				WorkOrderID: workOrderID,
				Date:        "2026-03-14",
			},
			setup: func(d deps) {
				d.workOrders.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:               workOrderID,
						Title:            "500h compressor service",
						MaintenanceType:  model.MaintenancePreventive,
						Status:           model.WorkOrderStatusScheduled,
						EquipmentID:      equipmentID,
						PlannedDate:      "2026-03-01",
						PeriodicityHours: lo.ToPtr(500.0),
						TriggerRunHours:  lo.ToPtr(600.0),
					}, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				d.workOrders.
					On("SetStatus", mock.Anything, workOrderID, model.WorkOrderStatusDone).
					Return(nil).
					Once()
				d.equipments.
					On("EquipmentByID", mock.Anything, equipmentID).
					Return(&model.Equipment{
						ID:       equipmentID,
						Type:     model.EquipmentTypeCompressor,
						RunHours: lo.ToPtr(640.0),
					}, nil).
					Once()
				d.workOrders.
					On("Create", mock.Anything, mock.MatchedBy(func(next *model.WorkOrder) bool {
						return next.TriggerRunHours != nil && *next.TriggerRunHours == 1140.0
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
			},
		},
		{
			name: "preventive: reading on untracked equipment is skipped, record survives",
			input: &model.Intervention{
				Type:        model.InterventionPreventive,
				EquipmentID: equipmentID,
				Date:        "2026-03-14",
				Technician:  "tech-1",
				RunHours:    lo.ToPtr(12.0),
			},
			setup: func(d deps) {
				d.runHours.
					On("RecordRunHours", mock.Anything, equipmentID, 12.0, "tech-1").
					Return((*model.Equipment)(nil), ([]model.Alert)(nil), model.ErrNotApplicable).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				require.NotNil(t, res.RunHours)
				assert.Equal(t, 12.0, *res.RunHours)
			},
		},
		{
			name: "preventive: linked control gets its completion and validity stamped",
			input: &model.Intervention{
				Type:         model.InterventionPreventive,
				InspectionID: inspectionID,
				Date:         "2026-03-14",
			},
			setup: func(d deps) {
				d.inspections.
					On("InspectionByID", mock.Anything, inspectionID).
					Return(&model.Inspection{
						ID:          inspectionID,
						Title:       "Annual pressure test",
						Periodicity: schedule.PeriodicityAnnual,
						EquipmentID: equipmentID,
					}, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				d.inspections.
					On("SetCompletion", mock.Anything, inspectionID,
						"2026-03-14", "2027-03-14", model.InspectionResultConforming).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Intervention, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, equipmentID, res.EquipmentID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository:  mocks.NewMockInterventionRepository(t),
				workOrders:  mocks.NewMockWorkOrderRepository(t),
				inspections: mocks.NewMockInspectionRepository(t),
				spareParts:  mocks.NewMockSparePartRepository(t),
				equipments:  mocks.NewMockEquipmentRepository(t),
				runHours:    mocks.NewMockRunHourRecorder(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Record(context.Background(), tt.input)
			tt.assert(t, res, err, d)
		})
	}
}
