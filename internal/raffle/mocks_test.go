package raffle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/repository"
)

// MockRepository implements [repository.Raffle]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockRepository) FindEligibleAwards(ctx context.Context, activityID int64, now time.Time) ([]domain.Award, error) {
	args := m.Called(ctx, activityID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Award), args.Error(1)
}

func (m *MockRepository) GetAward(ctx context.Context, id int64) (*domain.Award, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Award), args.Error(1)
}

func (m *MockRepository) CountTodayDispatched(ctx context.Context, awardID int64, now time.Time) (int, error) {
	args := m.Called(ctx, awardID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateChance(ctx context.Context, chance *domain.Chance) error {
	args := m.Called(ctx, chance)
	return args.Error(0)
}

func (m *MockRepository) GetChance(ctx context.Context, id int64) (*domain.Chance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chance), args.Error(1)
}

func (m *MockRepository) SaveChance(ctx context.Context, chance *domain.Chance) error {
	args := m.Called(ctx, chance)
	return args.Error(0)
}

func (m *MockRepository) FindChancesByUser(ctx context.Context, userID uuid.UUID, activityID int64, limit int) ([]domain.Chance, error) {
	args := m.Called(ctx, userID, activityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockRepository) FindWinningChancesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockRepository) CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error) {
	args := m.Called(ctx, userID, activityID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DrawTx), args.Error(1)
}

// MockDrawTx implements [repository.DrawTx]
type MockDrawTx struct {
	mock.Mock
}

func (m *MockDrawTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDrawTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDrawTx) DecreaseAwardQuantity(ctx context.Context, awardID int64, amount int) (bool, error) {
	args := m.Called(ctx, awardID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrawTx) SaveChance(ctx context.Context, chance *domain.Chance) error {
	args := m.Called(ctx, chance)
	return args.Error(0)
}

// fixedRand always returns the same value, clamped into range
type fixedRand struct {
	value int
}

func (f *fixedRand) IntBetween(min, max int) int {
	if f.value < min {
		return min
	}
	if f.value > max {
		return max
	}
	return f.value
}
