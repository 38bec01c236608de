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

func TestServiceListSpareParts(t *testing.T) {
	t.Parallel()

	all := []*model.SparePart{
		{ID: "p-1", Name: "O-ring", StockQuantity: 1, MinimumThreshold: 2},
		{ID: "p-2", Name: "Gauge", StockQuantity: 9, MinimumThreshold: 2},
		{ID: "p-3", Name: "Filter", StockQuantity: 2, MinimumThreshold: 2},
	}

	t.Run("returns all parts as-is", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		repo.On("List", mock.Anything, model.SparePartFilter{}).
			Return(all, nil).Once()

		svc := NewSparePartService(repo)

		res, err := svc.List(context.Background(), model.SparePartFilter{}, false)
		require.NoError(t, err)
		assert.Equal(t, all, res)
	})

	t.Run("low-stock filter keeps parts at or under their threshold", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		repo.On("List", mock.Anything, model.SparePartFilter{}).
			Return(all, nil).Once()

		svc := NewSparePartService(repo)

		res, err := svc.List(context.Background(), model.SparePartFilter{}, true)
		require.NoError(t, err)
		assert.Equal(t, []*model.SparePart{all[0], all[2]}, res)
	})
}

func TestServiceUpdateSparePart(t *testing.T) {
	t.Parallel()

	t.Run("empty update is rejected before any write", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		svc := NewSparePartService(repo)

		res, err := svc.Update(context.Background(), "p-1", model.SparePartUpdate{})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNothingToUpdate)
		assert.Nil(t, res)

		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update writes and returns the stored record", func(t *testing.T) {
		t.Parallel()

		upd := model.SparePartUpdate{StockQuantity: lo.ToPtr(7)}
		stored := &model.SparePart{ID: "p-1", Name: "O-ring", StockQuantity: 7, MinimumThreshold: 2}

		repo := mocks.NewMockSparePartRepository(t)
		repo.On("Update", mock.Anything, "p-1", upd).
			Return(nil).Once()
		repo.On("SparePartByID", mock.Anything, "p-1").
			Return(stored, nil).Once()

		svc := NewSparePartService(repo)

		res, err := svc.Update(context.Background(), "p-1", upd)
		require.NoError(t, err)
		assert.Equal(t, stored, res)
	})

	t.Run("missing part surfaces as not found", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		repo.On("Update", mock.Anything, "p-ghost", mock.Anything).
			Return(model.ErrSparePartNotFound).Once()

		svc := NewSparePartService(repo)

		res, err := svc.Update(context.Background(), "p-ghost", model.SparePartUpdate{
			StockQuantity: lo.ToPtr(1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSparePartNotFound)
		assert.Nil(t, res)
	})
}

func TestServiceCreateSparePart(t *testing.T) {
	t.Parallel()

	t.Run("threshold defaults to one", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.SparePart) bool {
			return p.ID != "" && p.MinimumThreshold == 1
		})).Return(nil).Once()

		svc := NewSparePartService(repo)

		res, err := svc.Create(context.Background(), &model.SparePart{
			Name:            "O-ring",
			ManufacturerRef: "OR-221",
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1, res.MinimumThreshold)
	})

	t.Run("missing manufacturer ref is a validation error", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSparePartRepository(t)
		svc := NewSparePartService(repo)

		res, err := svc.Create(context.Background(), &model.SparePart{Name: "O-ring"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)
	})
}
