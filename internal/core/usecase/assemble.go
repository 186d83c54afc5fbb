package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"
)

// AdAssembler собирает ответ "объявление + спецификация".
// Спецификация читается сквозь кэш; отсутствие строки спецификации —
// не ошибка: ответ собирается с nil-спецификацией.
type AdAssembler struct {
	storage port.AdStoragePort
	cache   port.SpecificationCachePort
}

func NewAdAssembler(storage port.AdStoragePort, cache port.SpecificationCachePort) *AdAssembler {
	return &AdAssembler{storage: storage, cache: cache}
}

func (a *AdAssembler) Assemble(ctx context.Context, ad domain.Ad) (domain.AdWithSpecification, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if a.cache != nil {
		spec, err := a.cache.Get(ctx, ad.ID, ad.Category)
		if err != nil {
			// Кэш не должен ломать сборку ответа
			logger.Warn("Specification cache read failed", port.Fields{
				"ad_id": ad.ID.String(), "error": err.Error(),
			})
		} else if spec != nil {
			return domain.AdWithSpecification{Ad: ad, Specification: spec}, nil
		}
	}

	spec, err := a.storage.GetSpecification(ctx, ad.ID, ad.Category)
	if err != nil {
		return domain.AdWithSpecification{}, err
	}
	if spec == nil {
		logger.Warn("Specification row is missing, assembling response without it", port.Fields{
			"ad_id": ad.ID.String(), "category": string(ad.Category),
		})
		return domain.AdWithSpecification{Ad: ad, Specification: nil}, nil
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, ad.ID, spec); err != nil {
			logger.Warn("Specification cache write failed", port.Fields{
				"ad_id": ad.ID.String(), "error": err.Error(),
			})
		}
	}

	return domain.AdWithSpecification{Ad: ad, Specification: spec}, nil
}

// AssembleAll собирает ответы для списка объявлений, сохраняя порядок.
func (a *AdAssembler) AssembleAll(ctx context.Context, ads []domain.Ad) ([]domain.AdWithSpecification, error) {
	result := make([]domain.AdWithSpecification, 0, len(ads))
	for _, ad := range ads {
		item, err := a.Assemble(ctx, ad)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
