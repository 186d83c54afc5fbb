package usecase

import (
	"ad-service/internal/core/domain"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func makeAd(id string, price *float64, createdOffset time.Duration, views int64) domain.Ad {
	return domain.Ad{
		ID:          uuid.MustParse(id),
		Title:       "ad " + id,
		Category:    domain.CategoryBoatsAndYachts,
		PriceAmount: price,
		PriceType:   domain.PriceTypeFixed,
		CreatedAt:   baseTime.Add(createdOffset),
		Active:      true,
		ViewsCount:  views,
	}
}

const (
	idA = "11111111-1111-1111-1111-111111111111"
	idB = "22222222-2222-2222-2222-222222222222"
	idC = "33333333-3333-3333-3333-333333333333"
	idD = "44444444-4444-4444-4444-444444444444"
)

func idsOf(ads []domain.Ad) []string {
	ids := make([]string, len(ads))
	for i, ad := range ads {
		ids[i] = ad.ID.String()
	}
	return ids
}

func TestSortAds_PriceAscending_NilPriceLast(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idA, nil, 0, 0),
		makeAd(idB, floatPtr(500), time.Hour, 0),
		makeAd(idC, floatPtr(100), 2*time.Hour, 0),
	}

	sortAds(ads, domain.SortPriceLowToHigh)

	assert.Equal(t, []string{idC, idB, idA}, idsOf(ads))
}

// Отсутствие цены — в конце и при сортировке по убыванию тоже:
// nil не трактуется как нулевая цена.
func TestSortAds_PriceDescending_NilPriceStillLast(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idA, nil, 0, 0),
		makeAd(idB, floatPtr(500), time.Hour, 0),
		makeAd(idC, floatPtr(100), 2*time.Hour, 0),
	}

	sortAds(ads, domain.SortPriceHighToLow)

	assert.Equal(t, []string{idB, idC, idA}, idsOf(ads))
}

func TestSortAds_EqualPricesOrderedNewestFirst(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idA, floatPtr(100), 0, 0),
		makeAd(idB, floatPtr(100), 2*time.Hour, 0),
		makeAd(idC, floatPtr(100), time.Hour, 0),
	}

	sortAds(ads, domain.SortPriceLowToHigh)

	assert.Equal(t, []string{idB, idC, idA}, idsOf(ads))
}

func TestSortAds_MostViewed_TiesNewestFirst(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idA, nil, 0, 10),
		makeAd(idB, nil, time.Hour, 50),
		makeAd(idC, nil, 2*time.Hour, 10),
	}

	sortAds(ads, domain.SortMostViewed)

	assert.Equal(t, []string{idB, idC, idA}, idsOf(ads))
}

func TestSortAds_Oldest(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idB, nil, time.Hour, 0),
		makeAd(idA, nil, 0, 0),
		makeAd(idC, nil, 2*time.Hour, 0),
	}

	sortAds(ads, domain.SortOldest)

	assert.Equal(t, []string{idA, idB, idC}, idsOf(ads))
}

// Неизвестный ключ сортировки работает как сортировка по умолчанию
// (новые первыми), а не как ошибка.
func TestSortAds_UnknownKeyFallsBackToNewest(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idA, nil, 0, 0),
		makeAd(idC, nil, 2*time.Hour, 0),
		makeAd(idB, nil, time.Hour, 0),
	}

	sortAds(ads, domain.SortKey("RANDOM"))

	assert.Equal(t, []string{idC, idB, idA}, idsOf(ads))
}

// Полностью одинаковые цена/время упорядочиваются по ID — выдача
// детерминирована между запусками.
func TestSortAds_FullTieBreaksByID(t *testing.T) {
	ads := []domain.Ad{
		makeAd(idD, floatPtr(100), 0, 0),
		makeAd(idA, floatPtr(100), 0, 0),
		makeAd(idC, floatPtr(100), 0, 0),
	}

	sortAds(ads, domain.SortPriceLowToHigh)

	assert.Equal(t, []string{idA, idC, idD}, idsOf(ads))
}

func TestSearchAds_CategoryRequired(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewSearchAdsUseCase(mockStorage, nil)

	result, err := uc.Execute(context.Background(), domain.SearchFilter{})

	require.Error(t, err)
	assert.Nil(t, result)
	var searchErr *domain.SearchValidationError
	assert.True(t, errors.As(err, &searchErr))
	mockStorage.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchAds_AssemblesSortedResults(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewSearchAdsUseCase(mockStorage, nil)
	ctx := context.Background()

	filter := domain.SearchFilter{
		Category: domain.CategoryBoatsAndYachts,
		SortBy:   domain.SortPriceLowToHigh,
	}
	ads := []domain.Ad{
		makeAd(idA, floatPtr(900), 0, 0),
		makeAd(idB, floatPtr(100), time.Hour, 0),
	}

	mockStorage.On("Search", ctx, filter).Return(ads, nil).Once()
	// Строки спецификаций отсутствуют — ответ собирается с nil
	mockStorage.On("GetSpecification", ctx, mock.Anything, domain.CategoryBoatsAndYachts).Return(nil, nil).Twice()

	result, err := uc.Execute(ctx, filter)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, idB, result[0].Ad.ID.String())
	assert.Equal(t, idA, result[1].Ad.ID.String())
	assert.Nil(t, result[0].Specification)
	mockStorage.AssertExpectations(t)
}

func TestSearchAds_StorageFailurePropagated(t *testing.T) {
	mockStorage := new(MockAdStorage)
	uc := NewSearchAdsUseCase(mockStorage, nil)
	ctx := context.Background()

	filter := domain.SearchFilter{Category: domain.CategoryFishing}
	mockStorage.On("Search", ctx, filter).Return(nil, errors.New("db down")).Once()

	result, err := uc.Execute(ctx, filter)

	assert.Error(t, err)
	assert.Nil(t, result)
}
