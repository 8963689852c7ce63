package mocks

import (
	"context"

	"ecobrands/internal/model"
	"ecobrands/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) Create(ctx context.Context, s *model.Suggestion) (*model.Suggestion, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Suggestion], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Suggestion]), args.Error(1)
}
