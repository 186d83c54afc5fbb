package usecase

import (
	"ad-service/internal/core/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validNewAd() domain.NewAd {
	return domain.NewAd{
		Title:       "Garmin Striker 4",
		Description: "Sonar in perfect condition",
		Category:    domain.CategoryMarineElectronics,
		PriceAmount: floatPtr(350),
		PriceType:   domain.PriceTypeFixed,
		Location:    "Minsk",
		AdType:      domain.AdTypeSale,
		UserEmail:   "seller@example.com",
		Specification: &domain.MarineElectronicsSpecification{
			ElectronicsType: domain.ElectronicsSonar,
			Brand:           "Garmin",
			Condition:       domain.ConditionUsed,
		},
	}
}

func existingUser() *domain.UserIdentity {
	return &domain.UserIdentity{
		Exists:    true,
		UserID:    "user-42",
		Email:     "seller@example.com",
		FirstName: "Ivan",
		LastName:  "Ivanov",
	}
}

func TestCreateAd_Success(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)
	mockEvents := new(MockAdEvents)
	mockCache := new(MockSpecCache)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, mockEvents, mockCache)
	ctx := context.Background()
	newAd := validNewAd()

	mockIdentity.On("ValidateUser", ctx, newAd.UserEmail, "token-123").Return(existingUser(), nil).Once()
	mockStorage.On("CreateAd", ctx, mock.AnythingOfType("domain.Ad"), newAd.Specification).Return(nil).Once()
	mockCache.On("Set", ctx, mock.Anything, newAd.Specification).Return(nil).Once()
	mockEvents.On("PublishAdCreated", ctx, mock.AnythingOfType("domain.Ad")).Return(nil).Once()

	result, err := uc.Execute(ctx, newAd, "token-123")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Ad.Active)
	assert.EqualValues(t, 0, result.Ad.ViewsCount)
	assert.Equal(t, "user-42", result.Ad.UserID)
	assert.Equal(t, "Ivan", result.Ad.UserFirstName)
	assert.Equal(t, newAd.Specification, result.Specification)

	mockIdentity.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

// Невалидная спецификация отклоняется до обращения к сервису
// аутентификации и до записи в БД.
func TestCreateAd_ValidationBeforeIdentityCall(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)
	mockEvents := new(MockAdEvents)
	mockCache := new(MockSpecCache)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, mockEvents, mockCache)

	newAd := validNewAd()
	newAd.Specification = &domain.MarineElectronicsSpecification{
		Brand:     "Garmin",
		Condition: domain.ConditionUsed,
	}

	result, err := uc.Execute(context.Background(), newAd, "token-123")

	require.Error(t, err)
	assert.Nil(t, result)
	var fieldErr *domain.FieldValidationError
	assert.True(t, errors.As(err, &fieldErr))

	mockIdentity.AssertNotCalled(t, "ValidateUser", mock.Anything, mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "CreateAd", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAd_FixedPriceRequiresAmount(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, new(MockAdEvents), new(MockSpecCache))

	newAd := validNewAd()
	newAd.PriceAmount = nil

	_, err := uc.Execute(context.Background(), newAd, "token-123")

	var fieldErr *domain.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "priceAmount", fieldErr.Field)
	assert.Equal(t, domain.RuleMissing, fieldErr.Rule)
	mockIdentity.AssertNotCalled(t, "ValidateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAd_UserDoesNotExist(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, new(MockAdEvents), new(MockSpecCache))
	ctx := context.Background()
	newAd := validNewAd()

	mockIdentity.On("ValidateUser", ctx, newAd.UserEmail, "token-123").
		Return(&domain.UserIdentity{Exists: false}, nil).Once()

	result, err := uc.Execute(ctx, newAd, "token-123")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, result)
	mockStorage.AssertNotCalled(t, "CreateAd", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAd_AuthServiceUnavailable(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, new(MockAdEvents), new(MockSpecCache))
	ctx := context.Background()
	newAd := validNewAd()

	mockIdentity.On("ValidateUser", ctx, newAd.UserEmail, "token-123").
		Return(nil, domain.ErrAuthServiceUnavailable).Once()

	result, err := uc.Execute(ctx, newAd, "token-123")

	assert.ErrorIs(t, err, domain.ErrAuthServiceUnavailable)
	assert.Nil(t, result)
	mockStorage.AssertNotCalled(t, "CreateAd", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAd_StorageFailurePropagated(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)
	mockEvents := new(MockAdEvents)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, mockEvents, new(MockSpecCache))
	ctx := context.Background()
	newAd := validNewAd()
	storageErr := errors.New("tx failed")

	mockIdentity.On("ValidateUser", ctx, newAd.UserEmail, "token-123").Return(existingUser(), nil).Once()
	mockStorage.On("CreateAd", ctx, mock.AnythingOfType("domain.Ad"), newAd.Specification).Return(storageErr).Once()

	result, err := uc.Execute(ctx, newAd, "token-123")

	assert.ErrorIs(t, err, storageErr)
	assert.Nil(t, result)
	mockEvents.AssertNotCalled(t, "PublishAdCreated", mock.Anything, mock.Anything)
}

// Сбой публикации события не откатывает уже записанное объявление.
func TestCreateAd_EventFailureDoesNotFailCreation(t *testing.T) {
	mockStorage := new(MockAdStorage)
	mockIdentity := new(MockIdentity)
	mockEvents := new(MockAdEvents)
	mockCache := new(MockSpecCache)

	uc := NewCreateAdUseCase(mockStorage, mockIdentity, mockEvents, mockCache)
	ctx := context.Background()
	newAd := validNewAd()

	mockIdentity.On("ValidateUser", ctx, newAd.UserEmail, "token-123").Return(existingUser(), nil).Once()
	mockStorage.On("CreateAd", ctx, mock.AnythingOfType("domain.Ad"), newAd.Specification).Return(nil).Once()
	mockCache.On("Set", ctx, mock.Anything, newAd.Specification).Return(errors.New("redis down")).Once()
	mockEvents.On("PublishAdCreated", ctx, mock.AnythingOfType("domain.Ad")).Return(errors.New("broker down")).Once()

	result, err := uc.Execute(ctx, newAd, "token-123")

	require.NoError(t, err)
	require.NotNil(t, result)
	mockEvents.AssertExpectations(t)
}
