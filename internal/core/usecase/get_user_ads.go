package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"
)

type GetUserAdsUseCase struct {
	storage   port.AdStoragePort
	assembler *AdAssembler
}

func NewGetUserAdsUseCase(storage port.AdStoragePort, cache port.SpecificationCachePort) *GetUserAdsUseCase {
	return &GetUserAdsUseCase{
		storage:   storage,
		assembler: NewAdAssembler(storage, cache),
	}
}

// Execute возвращает все объявления владельца, включая неактивные.
func (uc *GetUserAdsUseCase) Execute(ctx context.Context, userEmail string) ([]domain.AdWithSpecification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetUserAds",
		"user_email": userEmail,
	})

	ucLogger.Info("Use case started", nil)

	ads, err := uc.storage.GetAdsByUserEmail(ctx, userEmail)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result, err := uc.assembler.AssembleAll(ctx, ads)
	if err != nil {
		ucLogger.Error("Failed to assemble user ads", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})

	return result, nil
}
