package usecase

import (
	"ad-service/internal/core/domain"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAdStatus_OnlyOwnerCanChange(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewUpdateAdStatusUseCase(mockStorage)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, UserEmail: "owner@example.com", Active: true}
	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()

	err := uc.Execute(ctx, adID, "intruder@example.com", false)

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	mockStorage.AssertNotCalled(t, "UpdateActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAdStatus_OwnerDeactivates(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewUpdateAdStatusUseCase(mockStorage)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, UserEmail: "owner@example.com", Active: true}
	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("UpdateActive", ctx, adID, false).Return(nil).Once()

	err := uc.Execute(ctx, adID, "owner@example.com", false)

	require.NoError(t, err)
	mockStorage.AssertExpectations(t)
}

func TestUpdateAdStatus_NotFound(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewUpdateAdStatusUseCase(mockStorage)
	ctx := context.Background()

	adID := uuid.New()
	mockStorage.On("GetAdByID", ctx, adID).Return(nil, domain.ErrAdNotFound).Once()

	err := uc.Execute(ctx, adID, "owner@example.com", true)

	assert.ErrorIs(t, err, domain.ErrAdNotFound)
}

func TestDeleteAd_OnlyOwnerCanDelete(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockEvents := new(MockAdEvents)
	uc := NewDeleteAdUseCase(mockStorage, mockEvents, nil)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, UserEmail: "owner@example.com"}
	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()

	err := uc.Execute(ctx, adID, "intruder@example.com")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	mockStorage.AssertNotCalled(t, "DeleteAd", mock.Anything, mock.Anything)
	mockEvents.AssertNotCalled(t, "PublishAdDeleted", mock.Anything, mock.Anything)
}

func TestDeleteAd_EvictsCacheAndPublishesEvent(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockEvents := new(MockAdEvents)
	mockCache := new(MockSpecCache)
	uc := NewDeleteAdUseCase(mockStorage, mockEvents, mockCache)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, UserEmail: "owner@example.com"}
	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("DeleteAd", ctx, adID).Return(nil).Once()
	mockCache.On("Delete", ctx, adID).Return(nil).Once()
	mockEvents.On("PublishAdDeleted", ctx, ad).Return(nil).Once()

	err := uc.Execute(ctx, adID, "owner@example.com")

	require.NoError(t, err)
	mockStorage.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}
