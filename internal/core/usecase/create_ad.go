package usecase

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"ad-service/internal/core/registry"
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateAdUseCase struct {
	storage   port.AdStoragePort
	identity  port.IdentityPort
	events    port.AdEventsPort
	cache     port.SpecificationCachePort
	assembler *AdAssembler
}

func NewCreateAdUseCase(storage port.AdStoragePort, identity port.IdentityPort,
	events port.AdEventsPort, cache port.SpecificationCachePort) *CreateAdUseCase {
	return &CreateAdUseCase{
		storage:   storage,
		identity:  identity,
		events:    events,
		cache:     cache,
		assembler: NewAdAssembler(storage, cache),
	}
}

// Execute — конвейер создания объявления: валидация спецификации,
// подтверждение пользователя во внешнем сервисе, атомарная запись
// объявления и спецификации, затем best-effort событие.
func (uc *CreateAdUseCase) Execute(ctx context.Context, newAd domain.NewAd, bearerToken string) (*domain.AdWithSpecification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateAd",
		"category": string(newAd.Category),
	})

	ucLogger.Info("Use case started", nil)

	if err := validateNewAd(newAd); err != nil {
		ucLogger.Warn("Ad validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := registry.Validate(newAd.Category, newAd.Specification); err != nil {
		ucLogger.Warn("Specification validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Подтверждаем пользователя до любой записи в БД
	user, err := uc.identity.ValidateUser(ctx, newAd.UserEmail, bearerToken)
	if err != nil {
		ucLogger.Error("User validation failed", err, nil)
		return nil, err
	}
	if !user.Exists {
		ucLogger.Warn("User does not exist", port.Fields{"email": newAd.UserEmail})
		return nil, domain.ErrUserNotFound
	}

	ad := domain.Ad{
		ID:               uuid.New(),
		Title:            newAd.Title,
		Description:      newAd.Description,
		QuickDescription: newAd.QuickDescription,
		Category:         newAd.Category,
		PriceAmount:      newAd.PriceAmount,
		PriceType:        newAd.PriceType,
		IncludingVAT:     newAd.IncludingVAT,
		Location:         newAd.Location,
		AdType:           newAd.AdType,
		UserEmail:        user.Email,
		UserID:           user.UserID,
		UserFirstName:    user.FirstName,
		UserLastName:     user.LastName,
		CreatedAt:        time.Now().UTC(),
		Active:           true,
		ViewsCount:       0,
	}

	if err := uc.storage.CreateAd(ctx, ad, newAd.Specification); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, ad.ID, newAd.Specification); err != nil {
			ucLogger.Warn("Failed to warm specification cache", port.Fields{"error": err.Error()})
		}
	}

	if uc.events != nil {
		if err := uc.events.PublishAdCreated(ctx, ad); err != nil {
			// Событие не критично для результата создания
			ucLogger.Warn("Failed to publish ad.created event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"ad_id": ad.ID.String()})

	return &domain.AdWithSpecification{Ad: ad, Specification: newAd.Specification}, nil
}

// validateNewAd проверяет категорийно-независимые поля объявления.
func validateNewAd(newAd domain.NewAd) error {
	if !newAd.Category.IsValid() {
		return domain.ErrUnsupportedCategory
	}
	if newAd.Title == "" {
		return domain.NewMissingFieldError(newAd.Category, "title")
	}
	if newAd.Description == "" {
		return domain.NewMissingFieldError(newAd.Category, "description")
	}
	if newAd.UserEmail == "" {
		return domain.NewMissingFieldError(newAd.Category, "userEmail")
	}
	if !newAd.AdType.IsValid() {
		return domain.NewInvalidValueError(newAd.Category, "adType", string(newAd.AdType))
	}
	if !newAd.PriceType.IsValid() {
		return domain.NewInvalidValueError(newAd.Category, "priceType", string(newAd.PriceType))
	}
	if newAd.PriceType == domain.PriceTypeFixed {
		if newAd.PriceAmount == nil {
			return domain.NewMissingFieldError(newAd.Category, "priceAmount")
		}
		if *newAd.PriceAmount < 0 {
			return domain.NewOutOfRangeError(newAd.Category, "priceAmount", "must not be negative")
		}
	}
	return nil
}
