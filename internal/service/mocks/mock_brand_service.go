package mocks

import (
	"context"
	"io"

	"ecobrands/internal/model"
	"ecobrands/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) List(ctx context.Context, q service.BrandQuery) (*service.BrandListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BrandListResult), args.Error(1)
}

func (m *MockBrandService) Search(ctx context.Context, q string) ([]model.BrandSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BrandSummary), args.Error(1)
}

func (m *MockBrandService) Get(ctx context.Context, identifier string) (*service.BrandDetail, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BrandDetail), args.Error(1)
}

func (m *MockBrandService) All(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandService) Categories() []service.QuickFilter {
	args := m.Called()
	return args.Get(0).([]service.QuickFilter)
}

func (m *MockBrandService) Features() []model.FeatureDefinition {
	args := m.Called()
	return args.Get(0).([]model.FeatureDefinition)
}

func (m *MockBrandService) Marketplaces() []service.MarketplaceInfo {
	args := m.Called()
	return args.Get(0).([]service.MarketplaceInfo)
}

func (m *MockBrandService) Create(ctx context.Context, in model.BrandInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockBrandService) Update(ctx context.Context, id string, patch model.BrandPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockBrandService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandService) UploadImage(ctx context.Context, id string, kind model.ImageKind, r io.Reader, filename, contentType string, size int64) (*service.UploadResult, error) {
	args := m.Called(ctx, id, kind, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockBrandService) CheckConnection(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
