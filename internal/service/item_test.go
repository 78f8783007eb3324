package service

import (
	"context"
	"testing"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_Create_Success(t *testing.T) {
	repo := mocks.NewMockItemRepo(t)
	svc := NewItemService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	cleaningFee := int64(5000)
	item, err := svc.Create(context.Background(), domain.CreateItemInput{
		Type:        "property",
		OwnerID:     "o1",
		Title:       "Seaside flat",
		MaxGuests:   4,
		Price:       10000,
		Currency:    "EUR",
		CleaningFee: &cleaningFee,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeProperty, item.Type)
	assert.NotEmpty(t, item.ID)
	require.NotNil(t, item.CleaningFee)
	assert.Equal(t, int64(5000), *item.CleaningFee)
}

func TestItemService_Create_InvalidType(t *testing.T) {
	repo := mocks.NewMockItemRepo(t)
	svc := NewItemService(repo)

	_, err := svc.Create(context.Background(), domain.CreateItemInput{
		Type:      "vehicle",
		OwnerID:   "o1",
		Title:     "Car",
		MaxGuests: 4,
		Currency:  "EUR",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Create_CleaningFeeOnService(t *testing.T) {
	repo := mocks.NewMockItemRepo(t)
	svc := NewItemService(repo)

	cleaningFee := int64(5000)
	_, err := svc.Create(context.Background(), domain.CreateItemInput{
		Type:        "service",
		OwnerID:     "o1",
		Title:       "Guided tour",
		MaxGuests:   10,
		Price:       2000,
		Currency:    "EUR",
		CleaningFee: &cleaningFee,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Get_Success(t *testing.T) {
	repo := mocks.NewMockItemRepo(t)
	svc := NewItemService(repo)

	item := &domain.Item{ID: "i1", Type: domain.ItemTypeLeisure}
	repo.EXPECT().GetByID(mock.Anything, "i1", domain.ItemTypeLeisure).Return(item, nil)

	result, err := svc.Get(context.Background(), "i1", "leisure")

	require.NoError(t, err)
	assert.Equal(t, "i1", result.ID)
}

func TestItemService_Get_InvalidType(t *testing.T) {
	repo := mocks.NewMockItemRepo(t)
	svc := NewItemService(repo)

	_, err := svc.Get(context.Background(), "i1", "vehicle")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
