package port

import (
	"ad-service/internal/core/domain"
	"context"
)

// AdEventsPort — публикация доменных событий об объявлениях.
// Публикация best-effort: ошибка события не откатывает запись в БД.
type AdEventsPort interface {
	PublishAdCreated(ctx context.Context, ad domain.Ad) error
	PublishAdDeleted(ctx context.Context, ad domain.Ad) error
}
