package usecases_port

import (
	"ad-service/internal/core/domain"
	"context"
)

type SearchAdsUseCase interface {
	Execute(ctx context.Context, filter domain.SearchFilter) ([]domain.AdWithSpecification, error)
}
