package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"

	"github.com/google/uuid"
)

type GetAdByIDUseCase struct {
	storage   port.AdStoragePort
	assembler *AdAssembler
}

func NewGetAdByIDUseCase(storage port.AdStoragePort, cache port.SpecificationCachePort) *GetAdByIDUseCase {
	return &GetAdByIDUseCase{
		storage:   storage,
		assembler: NewAdAssembler(storage, cache),
	}
}

// Execute возвращает объявление со спецификацией и увеличивает счетчик
// просмотров. Счетчик инкрементируется ПОСЛЕ чтения: в ответе еще
// старое значение.
func (uc *GetAdByIDUseCase) Execute(ctx context.Context, adID uuid.UUID) (*domain.AdWithSpecification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetAdByID",
		"ad_id":    adID.String(),
	})

	ucLogger.Info("Use case started", nil)

	ad, err := uc.storage.GetAdByID(ctx, adID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if err := uc.storage.IncrementViews(ctx, adID); err != nil {
		// Потерянный просмотр не должен ломать выдачу объявления
		ucLogger.Warn("Failed to increment views counter", port.Fields{"error": err.Error()})
	}

	result, err := uc.assembler.Assemble(ctx, *ad)
	if err != nil {
		ucLogger.Error("Failed to assemble response", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return &result, nil
}
