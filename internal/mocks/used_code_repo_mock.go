package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockUsedCodeRepository struct {
	mock.Mock
}

func (m *MockUsedCodeRepository) IsUsed(ctx context.Context, userID, code string) (bool, error) {
	args := m.Called(ctx, userID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsedCodeRepository) MarkUsed(ctx context.Context, userID, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

func (m *MockUsedCodeRepository) ClearUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
