package usecases_port

import (
	"ad-service/internal/core/domain"
	"context"
)

type GetUserAdsUseCase interface {
	Execute(ctx context.Context, userEmail string) ([]domain.AdWithSpecification, error)
}
