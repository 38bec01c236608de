package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

func TestServiceCreateWorkOrder(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockWorkOrderRepository
	}

	newSvc := func(d deps) *service {
		return NewWorkOrderService(d.repository)
	}

	valid := func() *model.WorkOrder {
		return &model.WorkOrder{
			Title:           "Monthly seal check",
			MaintenanceType: model.MaintenancePreventive,
			PlannedDate:     "2026-04-01",
		}
	}

	type testCase struct {
		name   string
		input  *model.WorkOrder
		setup  func(d deps)
		assert func(t *testing.T, res *model.WorkOrder, err error, d deps)
	}

	wantValidationError := func(t *testing.T, res *model.WorkOrder, err error, d deps) {
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)

		d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}

	tests := []testCase{
		{
			name: "validation error: missing title",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.Title = ""
				return wo
			}(),
			assert: wantValidationError,
		},
		{
			name: "validation error: unparseable planned date",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.PlannedDate = "April 1st"
				return wo
			}(),
			assert: wantValidationError,
		},
		{
			name: "validation error: unknown maintenance type",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.MaintenanceType = "predictive"
				return wo
			}(),
			assert: wantValidationError,
		},
		{
			name: "validation error: calendar and hour recurrence together",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.PeriodicityDays = lo.ToPtr(30)
				wo.PeriodicityHours = lo.ToPtr(500.0)
				wo.TriggerRunHours = lo.ToPtr(500.0)
				return wo
			}(),
			assert: wantValidationError,
		},
		{
			name: "validation error: hour recurrence without a trigger",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.PeriodicityHours = lo.ToPtr(500.0)
				return wo
			}(),
			assert: wantValidationError,
		},
		{
			name:  "success: defaults applied",
			input: valid(),
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(wo *model.WorkOrder) bool {
						return wo.ID != "" &&
							wo.Priority == model.PriorityNormal &&
							wo.Status == model.WorkOrderStatusScheduled &&
							wo.CreatedAt != nil
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.WorkOrder, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)
			},
		},
		{
			name: "success: hour recurrence with a trigger",
			input: func() *model.WorkOrder {
				wo := valid()
				wo.PeriodicityHours = lo.ToPtr(500.0)
				wo.TriggerRunHours = lo.ToPtr(500.0)
				return wo
			}(),
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.WorkOrder, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.True(t, res.Recurring())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockWorkOrderRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Create(context.Background(), tt.input)
			tt.assert(t, res, err, d)
		})
	}
}
