package port

import (
	"ad-service/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// SpecificationCachePort — кэш спецификаций. Спецификация неизменяема
// после создания объявления, поэтому инвалидация нужна только при
// удалении. Промах кэша — (nil, nil), не ошибка.
type SpecificationCachePort interface {
	Get(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error)
	Set(ctx context.Context, adID uuid.UUID, spec domain.Specification) error
	Delete(ctx context.Context, adID uuid.UUID) error
}
