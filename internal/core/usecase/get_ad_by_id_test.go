package usecase

import (
	"ad-service/internal/core/domain"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAdByID_IncrementsViewsAfterRead(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewGetAdByIDUseCase(mockStorage, nil)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, Category: domain.CategoryParts, ViewsCount: 41, Active: true}
	spec := &domain.PartsSpecification{PartType: domain.PartPropulsion, Condition: domain.ConditionUsed}

	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("IncrementViews", ctx, adID).Return(nil).Once()
	mockStorage.On("GetSpecification", ctx, adID, domain.CategoryParts).Return(spec, nil).Once()

	result, err := uc.Execute(ctx, adID)

	require.NoError(t, err)
	require.NotNil(t, result)
	// Инкремент происходит после чтения: в ответе еще старый счетчик
	assert.EqualValues(t, 41, result.Ad.ViewsCount)
	assert.Equal(t, spec, result.Specification)
	mockStorage.AssertExpectations(t)
}

func TestGetAdByID_NotFound(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewGetAdByIDUseCase(mockStorage, nil)
	ctx := context.Background()

	adID := uuid.New()
	mockStorage.On("GetAdByID", ctx, adID).Return(nil, domain.ErrAdNotFound).Once()

	result, err := uc.Execute(ctx, adID)

	assert.ErrorIs(t, err, domain.ErrAdNotFound)
	assert.Nil(t, result)
	mockStorage.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

// Потерянный инкремент просмотров не ломает выдачу объявления.
func TestGetAdByID_IncrementFailureIgnored(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewGetAdByIDUseCase(mockStorage, nil)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, Category: domain.CategoryFishing, Active: true}

	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("IncrementViews", ctx, adID).Return(errors.New("db busy")).Once()
	mockStorage.On("GetSpecification", ctx, adID, domain.CategoryFishing).Return(nil, nil).Once()

	result, err := uc.Execute(ctx, adID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Specification)
}

// Отсутствующая строка спецификации — не ошибка: карточка отдается
// с пустой спецификацией.
func TestGetAdByID_MissingSpecificationRow(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewGetAdByIDUseCase(mockStorage, nil)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, Category: domain.CategoryEngines, Active: true}

	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("IncrementViews", ctx, adID).Return(nil).Once()
	mockStorage.On("GetSpecification", ctx, adID, domain.CategoryEngines).Return(nil, nil).Once()

	result, err := uc.Execute(ctx, adID)

	require.NoError(t, err)
	assert.Nil(t, result.Specification)
}

func TestGetAdByID_CacheHitSkipsStorageRead(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockCache := new(MockSpecCache)
	uc := NewGetAdByIDUseCase(mockStorage, mockCache)
	ctx := context.Background()

	adID := uuid.New()
	ad := domain.Ad{ID: adID, Category: domain.CategoryParts, Active: true}
	spec := &domain.PartsSpecification{PartType: domain.PartHull, Condition: domain.ConditionNew}

	mockStorage.On("GetAdByID", ctx, adID).Return(&ad, nil).Once()
	mockStorage.On("IncrementViews", ctx, adID).Return(nil).Once()
	mockCache.On("Get", ctx, adID, domain.CategoryParts).Return(spec, nil).Once()

	result, err := uc.Execute(ctx, adID)

	require.NoError(t, err)
	assert.Equal(t, spec, result.Specification)
	mockStorage.AssertNotCalled(t, "GetSpecification", mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}
