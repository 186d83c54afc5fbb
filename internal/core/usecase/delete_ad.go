package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"

	"github.com/google/uuid"
)

type DeleteAdUseCase struct {
	storage port.AdStoragePort
	events  port.AdEventsPort
	cache   port.SpecificationCachePort
}

func NewDeleteAdUseCase(storage port.AdStoragePort, events port.AdEventsPort, cache port.SpecificationCachePort) *DeleteAdUseCase {
	return &DeleteAdUseCase{storage: storage, events: events, cache: cache}
}

// Execute удаляет объявление владельца вместе со спецификацией
// (каскад в БД) и вычищает кэш.
func (uc *DeleteAdUseCase) Execute(ctx context.Context, adID uuid.UUID, userEmail string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteAd",
		"ad_id":    adID.String(),
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

	if err := uc.storage.DeleteAd(ctx, adID); err != nil {
		ucLogger.Error("Failed to delete ad", err, nil)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, adID); err != nil {
			ucLogger.Warn("Failed to evict specification from cache", port.Fields{"error": err.Error()})
		}
	}

	if uc.events != nil {
		if err := uc.events.PublishAdDeleted(ctx, *ad); err != nil {
			ucLogger.Warn("Failed to publish ad.deleted event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)

	return nil
}
