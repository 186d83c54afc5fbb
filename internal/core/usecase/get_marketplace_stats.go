package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"
)

type GetMarketplaceStatsUseCase struct {
	storage port.AdStoragePort
}

func NewGetMarketplaceStatsUseCase(storage port.AdStoragePort) *GetMarketplaceStatsUseCase {
	return &GetMarketplaceStatsUseCase{storage: storage}
}

func (uc *GetMarketplaceStatsUseCase) Execute(ctx context.Context) (*domain.MarketplaceStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetMarketplaceStats",
	})

	ucLogger.Info("Use case started", nil)

	stats, err := uc.storage.GetMarketplaceStats(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_ads":  stats.TotalAds,
		"active_ads": stats.ActiveAds,
	})

	return stats, nil
}
