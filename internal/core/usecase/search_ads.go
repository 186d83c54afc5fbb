package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"ad-service/internal/core/registry"
	"context"
	"sort"
)

type SearchAdsUseCase struct {
	storage   port.AdStoragePort
	assembler *AdAssembler
}

func NewSearchAdsUseCase(storage port.AdStoragePort, cache port.SpecificationCachePort) *SearchAdsUseCase {
	return &SearchAdsUseCase{
		storage:   storage,
		assembler: NewAdAssembler(storage, cache),
	}
}

// Execute — расширенный поиск: валидация фильтра, одна выборка из БД,
// одна детерминированная сортировка в памяти, сборка ответов.
func (uc *SearchAdsUseCase) Execute(ctx context.Context, filter domain.SearchFilter) ([]domain.AdWithSpecification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchAds",
		"category": string(filter.Category),
		"sort_by":  string(filter.SortBy),
	})

	ucLogger.Info("Use case started", nil)

	if err := registry.ValidateSearchFilter(filter); err != nil {
		ucLogger.Warn("Search filter validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ads, err := uc.storage.Search(ctx, filter)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	sortAds(ads, filter.SortBy)

	result, err := uc.assembler.AssembleAll(ctx, ads)
	if err != nil {
		ucLogger.Error("Failed to assemble search results", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})

	return result, nil
}

// sortAds сортирует выдачу устойчиво и детерминированно.
// Объявления без цены идут последними при ЛЮБОМ направлении ценовой
// сортировки; равные счетчики просмотров упорядочиваются новые-первыми.
func sortAds(ads []domain.Ad, key domain.SortKey) {
	switch key {
	case domain.SortPriceLowToHigh:
		sort.SliceStable(ads, func(i, j int) bool {
			return comparePrices(ads[i], ads[j], true)
		})
	case domain.SortPriceHighToLow:
		sort.SliceStable(ads, func(i, j int) bool {
			return comparePrices(ads[i], ads[j], false)
		})
	case domain.SortOldest:
		sort.SliceStable(ads, func(i, j int) bool {
			if !ads[i].CreatedAt.Equal(ads[j].CreatedAt) {
				return ads[i].CreatedAt.Before(ads[j].CreatedAt)
			}
			return ads[i].ID.String() < ads[j].ID.String()
		})
	case domain.SortMostViewed:
		sort.SliceStable(ads, func(i, j int) bool {
			if ads[i].ViewsCount != ads[j].ViewsCount {
				return ads[i].ViewsCount > ads[j].ViewsCount
			}
			return newerFirst(ads[i], ads[j])
		})
	default:
		// NEWEST и любое неизвестное значение
		sort.SliceStable(ads, func(i, j int) bool {
			return newerFirst(ads[i], ads[j])
		})
	}
}

func comparePrices(a, b domain.Ad, ascending bool) bool {
	// nil-цена всегда в конце, независимо от направления
	if a.PriceAmount == nil && b.PriceAmount == nil {
		return newerFirst(a, b)
	}
	if a.PriceAmount == nil {
		return false
	}
	if b.PriceAmount == nil {
		return true
	}
	if *a.PriceAmount != *b.PriceAmount {
		if ascending {
			return *a.PriceAmount < *b.PriceAmount
		}
		return *a.PriceAmount > *b.PriceAmount
	}
	return newerFirst(a, b)
}

func newerFirst(a, b domain.Ad) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}
