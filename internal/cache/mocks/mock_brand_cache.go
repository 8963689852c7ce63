package mocks

import (
	"context"

	"ecobrands/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBrandCache struct {
	mock.Mock
}

func (m *MockBrandCache) Get(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandCache) Set(ctx context.Context, brands []model.Brand) error {
	args := m.Called(ctx, brands)
	return args.Error(0)
}

func (m *MockBrandCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
