package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"

	"github.com/google/uuid"
)

type UpdateAdStatusUseCase struct {
	storage port.AdStoragePort
}

func NewUpdateAdStatusUseCase(storage port.AdStoragePort) *UpdateAdStatusUseCase {
	return &UpdateAdStatusUseCase{storage: storage}
}

// Execute включает или выключает объявление. Менять статус может
// только владелец.
func (uc *UpdateAdStatusUseCase) Execute(ctx context.Context, adID uuid.UUID, userEmail string, active bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateAdStatus",
		"ad_id":    adID.String(),
		"active":   active,
	})

	ucLogger.Info("Use case started", nil)

	ad, err := uc.storage.GetAdByID(ctx, adID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if ad.UserEmail != userEmail {
		ucLogger.Warn("Ownership check failed", port.Fields{"owner": ad.UserEmail})
		return domain.ErrNotOwner
	}

	if err := uc.storage.UpdateActive(ctx, adID, active); err != nil {
		ucLogger.Error("Failed to update ad status", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return nil
}
