package prizeorder

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/repository"
)

// MockRepository implements [repository.PrizeOrder]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetChance(ctx context.Context, id int64) (*domain.Chance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chance), args.Error(1)
}

func (m *MockRepository) GetAward(ctx context.Context, id int64) (*domain.Award, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Award), args.Error(1)
}

func (m *MockRepository) FindChancesByUserAndStatus(ctx context.Context, userID uuid.UUID, status domain.ChanceStatus, limit int) ([]domain.Chance, error) {
	args := m.Called(ctx, userID, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chance), args.Error(1)
}

func (m *MockRepository) BeginClaimTx(ctx context.Context) (repository.ClaimTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ClaimTx), args.Error(1)
}

// MockClaimTx implements [repository.ClaimTx]
type MockClaimTx struct {
	mock.Mock
}

func (m *MockClaimTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimTx) GetChanceForUpdate(ctx context.Context, id int64) (*domain.Chance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chance), args.Error(1)
}

func (m *MockClaimTx) SaveChance(ctx context.Context, chance *domain.Chance) error {
	args := m.Called(ctx, chance)
	return args.Error(0)
}
