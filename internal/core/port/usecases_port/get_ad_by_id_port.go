package usecases_port

import (
	"ad-service/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

type GetAdByIDUseCase interface {
	Execute(ctx context.Context, adID uuid.UUID) (*domain.AdWithSpecification, error)
}
