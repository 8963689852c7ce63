package mocks

import (
	"context"

	"ecobrands/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandRepository) Create(ctx context.Context, in model.BrandInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, id string, patch model.BrandPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepository) Ping(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
