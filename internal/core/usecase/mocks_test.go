package usecase

import (
	"ad-service/internal/core/domain"
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAdStorage struct{ mock.Mock }

func (m *MockAdStorage) CreateAd(ctx context.Context, ad domain.Ad, spec domain.Specification) error {
	args := m.Called(ctx, ad, spec)
	return args.Error(0)
}
func (m *MockAdStorage) GetAdByID(ctx context.Context, adID uuid.UUID) (*domain.Ad, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ad), args.Error(1)
}
func (m *MockAdStorage) IncrementViews(ctx context.Context, adID uuid.UUID) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}
func (m *MockAdStorage) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Ad, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ad), args.Error(1)
}
func (m *MockAdStorage) GetAdsByUserEmail(ctx context.Context, email string) ([]domain.Ad, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ad), args.Error(1)
}
func (m *MockAdStorage) UpdateActive(ctx context.Context, adID uuid.UUID, active bool) error {
	args := m.Called(ctx, adID, active)
	return args.Error(0)
}
func (m *MockAdStorage) DeleteAd(ctx context.Context, adID uuid.UUID) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}
func (m *MockAdStorage) GetSpecification(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error) {
	args := m.Called(ctx, adID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Specification), args.Error(1)
}
func (m *MockAdStorage) GetMarketplaceStats(ctx context.Context) (*domain.MarketplaceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceStats), args.Error(1)
}

type MockIdentity struct{ mock.Mock }

func (m *MockIdentity) ValidateUser(ctx context.Context, email, bearerToken string) (*domain.UserIdentity, error) {
	args := m.Called(ctx, email, bearerToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserIdentity), args.Error(1)
}

type MockAdEvents struct{ mock.Mock }

func (m *MockAdEvents) PublishAdCreated(ctx context.Context, ad domain.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}
func (m *MockAdEvents) PublishAdDeleted(ctx context.Context, ad domain.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

type MockSpecCache struct{ mock.Mock }

func (m *MockSpecCache) Get(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error) {
	args := m.Called(ctx, adID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Specification), args.Error(1)
}
func (m *MockSpecCache) Set(ctx context.Context, adID uuid.UUID, spec domain.Specification) error {
	args := m.Called(ctx, adID, spec)
	return args.Error(0)
}
func (m *MockSpecCache) Delete(ctx context.Context, adID uuid.UUID) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
