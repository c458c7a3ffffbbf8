package mocks

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreateBatch(ctx context.Context, houseID uuid.UUID, items []domain.CreatePaymentItem) (int64, error) {
	args := m.Called(ctx, houseID, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentService) HouseMembers(ctx context.Context, houseID uuid.UUID) ([]*domain.UserSummary, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserSummary), args.Error(1)
}

type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) Resolve(ctx context.Context, r *http.Request) (*domain.User, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
