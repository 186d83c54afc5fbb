package port

import (
	"ad-service/internal/core/domain"
	"context"
)

// IdentityPort — клиент внешнего сервиса аутентификации.
// Реализация обязана ограничивать вызов явным таймаутом и
// транслировать сбои в доменные ошибки:
//   - пользователь не существует -> domain.ErrUserNotFound
//   - недоступность/таймаут      -> domain.ErrAuthServiceUnavailable
//   - отказ в авторизации        -> domain.ErrInvalidCredentials
type IdentityPort interface {
	ValidateUser(ctx context.Context, email, bearerToken string) (*domain.UserIdentity, error)
}
