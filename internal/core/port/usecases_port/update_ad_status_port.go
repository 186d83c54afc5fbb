package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type UpdateAdStatusUseCase interface {
	Execute(ctx context.Context, adID uuid.UUID, userEmail string, active bool) error
}
