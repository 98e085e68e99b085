package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tourze/raffle-core/internal/activity"
	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/prizeorder"
)

// MockRaffleService implements [raffle.Service]
type MockRaffleService struct {
	mock.Mock
}

func (m *MockRaffleService) Participate(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.Chance, error) {
	args := m.Called(ctx, userID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chance), args.Error(1)
}

func (m *MockRaffleService) Draw(ctx context.Context, chanceID int64) (*domain.DrawResult, error) {
	args := m.Called(ctx, chanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func (m *MockRaffleService) ParticipateAndDraw(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.DrawResult, error) {
	args := m.Called(ctx, userID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func (m *MockRaffleService) CanParticipate(ctx context.Context, userID uuid.UUID, activityID int64) (bool, error) {
	args := m.Called(ctx, userID, activityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRaffleService) GetUserHistory(ctx context.Context, userID uuid.UUID, activityID *int64) ([]domain.Chance, error) {
	args := m.Called(ctx, userID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockRaffleService) CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error) {
	args := m.Called(ctx, userID, activityID)
	return args.Int(0), args.Error(1)
}

// MockActivityService implements [activity.Service]
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityService) GetActiveActivities(ctx context.Context) ([]domain.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityService) GetUpcomingActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityService) GetActivityDetail(ctx context.Context, id int64) (*activity.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Detail), args.Error(1)
}

func (m *MockActivityService) IsActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPrizeOrderService implements [prizeorder.Service]
type MockPrizeOrderService struct {
	mock.Mock
}

func (m *MockPrizeOrderService) GetUserPendingPrizes(ctx context.Context, userID uuid.UUID) ([]domain.Chance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockPrizeOrderService) GetUserOrderedPrizes(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockPrizeOrderService) GetPrizeOrderInfo(ctx context.Context, chanceID int64) (*prizeorder.OrderInfo, error) {
	args := m.Called(ctx, chanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prizeorder.OrderInfo), args.Error(1)
}

func (m *MockPrizeOrderService) ValidateClaimable(ctx context.Context, chanceID int64) error {
	args := m.Called(ctx, chanceID)
	return args.Error(0)
}

func (m *MockPrizeOrderService) CreateOrder(ctx context.Context, chanceID int64, consignee *domain.Consignee) (*domain.Chance, error) {
	args := m.Called(ctx, chanceID, consignee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chance), args.Error(1)
}
