package usecases_port

import (
	"ad-service/internal/core/domain"
	"context"
)

type GetMarketplaceStatsUseCase interface {
	Execute(ctx context.Context) (*domain.MarketplaceStats, error)
}
