package port

import (
	"ad-service/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// AdStoragePort — исходящий порт хранилища объявлений.
// CreateAd сохраняет объявление вместе со спецификацией его категории
// атомарно: либо видны обе записи, либо ни одной.
type AdStoragePort interface {
	CreateAd(ctx context.Context, ad domain.Ad, spec domain.Specification) error

	GetAdByID(ctx context.Context, adID uuid.UUID) (*domain.Ad, error)
	IncrementViews(ctx context.Context, adID uuid.UUID) error

	// Search возвращает ПОЛНУЮ выборку без пагинации: сортировка
	// выполняется в памяти на стороне ядра.
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Ad, error)

	GetAdsByUserEmail(ctx context.Context, email string) ([]domain.Ad, error)
	UpdateActive(ctx context.Context, adID uuid.UUID, active bool) error
	DeleteAd(ctx context.Context, adID uuid.UUID) error

	// GetSpecification возвращает (nil, nil) при отсутствии строки:
	// отсутствие спецификации не считается ошибкой хранилища.
	GetSpecification(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error)

	GetMarketplaceStats(ctx context.Context) (*domain.MarketplaceStats, error)
}
