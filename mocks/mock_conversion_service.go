package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tourxls/internal/domain"
	"tourxls/internal/service"
)

// MockConversionService is a mock implementation of service.ConversionService.
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, input service.ConvertInput) (*domain.ConversionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}
