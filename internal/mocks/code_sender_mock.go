package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCodeSender struct {
	mock.Mock
}

func (m *MockCodeSender) SendCode(ctx context.Context, destination, code string) error {
	args := m.Called(ctx, destination, code)
	return args.Error(0)
}
