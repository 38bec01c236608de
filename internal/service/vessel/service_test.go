package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

func TestServiceCreateVessel(t *testing.T) {
	t.Parallel()

	t.Run("identifier and model are required", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockVesselRepository(t)
		svc := NewVesselService(repo)

		res, err := svc.Create(context.Background(), &model.Vessel{Model: "HAUX 2200"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("second vessel is rejected while one exists", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockVesselRepository(t)
		repo.On("First", mock.Anything).
			Return(&model.Vessel{ID: "v-1", Identifier: "CAISSON-01"}, nil).Once()

		svc := NewVesselService(repo)

		res, err := svc.Create(context.Background(), &model.Vessel{
			Identifier: "CAISSON-02",
			Model:      "HAUX 2200",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("first vessel is created with id and timestamp", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockVesselRepository(t)
		repo.On("First", mock.Anything).
			Return(nil, model.ErrVesselNotFound).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Vessel) bool {
			return v.Identifier == "CAISSON-01" && v.ID != "" && v.CreatedAt != nil
		})).Return(nil).Once()

		svc := NewVesselService(repo)

		res, err := svc.Create(context.Background(), &model.Vessel{
			Identifier:     "CAISSON-01",
			Model:          "HAUX 2200",
			MaxPressureBar: 5,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.NotNil(t, res.CreatedAt)
	})
}
