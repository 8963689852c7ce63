package mocks

import (
	"context"

	"ecobrands/internal/email"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendSuggestion(ctx context.Context, msg email.SuggestionMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
