package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteAdUseCase interface {
	Execute(ctx context.Context, adID uuid.UUID, userEmail string) error
}
