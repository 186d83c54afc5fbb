package usecases_port

import (
	"ad-service/internal/core/domain"
	"context"
)

type CreateAdUseCase interface {
	Execute(ctx context.Context, newAd domain.NewAd, bearerToken string) (*domain.AdWithSpecification, error)
}
