package mocks

import (
	"context"

	"ecobrands/internal/model"
	"ecobrands/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Submit(ctx context.Context, in service.SuggestionInput) (*model.Suggestion, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) List(ctx context.Context, limit, offset int) (*service.SuggestionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SuggestionListResult), args.Error(1)
}
