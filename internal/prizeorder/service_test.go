package prizeorder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tourze/raffle-core/internal/domain"
)

func winningChance(id int64, awardID int64) *domain.Chance {
	now := time.Now()
	return &domain.Chance{
		ID:          id,
		ActivityID:  1,
		UserID:      uuid.New(),
		Status:      domain.ChanceStatusWinning,
		AwardID:     &awardID,
		UseTime:     &now,
		WinContext:  &domain.WinContext{PrizeName: "mug", WinTime: now.Format(time.RFC3339)},
		LockVersion: 2,
	}
}

func validAward(id int64, needConsignee bool) *domain.Award {
	return &domain.Award{ID: id, PoolID: 1, Name: "mug", Probability: 10, Quantity: 3, NeedConsignee: needConsignee, Valid: true}
}

func TestCreateOrder_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(validAward(5, false), nil)
	tx.On("SaveChance", mock.Anything, chance).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	got, err := svc.CreateOrder(context.Background(), 10, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ChanceStatusOrdered, got.Status)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestCreateOrder_AlreadyClaimed(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)
	chance.Status = domain.ChanceStatusOrdered

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateOrder(context.Background(), 10, nil)

	assert.ErrorIs(t, err, domain.ErrChanceAlreadyUsed)
	tx.AssertNotCalled(t, "SaveChance", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrder_AwardGone(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(nil, domain.ErrAwardNotFound)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateOrder(context.Background(), 10, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidPrize)
}

func TestCreateOrder_DisabledAward(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)
	disabled := validAward(5, false)
	disabled.Valid = false

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(disabled, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateOrder(context.Background(), 10, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidPrize)
}

func TestCreateOrder_ConsigneeRequired(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(validAward(5, true), nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateOrder(context.Background(), 10, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ConsigneeRecorded(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockClaimTx)
	svc := NewService(repo)
	chance := winningChance(10, 5)
	consignee := &domain.Consignee{RealName: "Lin", Phone: "555-0100", Address: "1 Main St"}

	repo.On("BeginClaimTx", mock.Anything).Return(tx, nil)
	tx.On("GetChanceForUpdate", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(validAward(5, true), nil)
	tx.On("SaveChance", mock.Anything, chance).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	got, err := svc.CreateOrder(context.Background(), 10, consignee)

	require.NoError(t, err)
	require.NotNil(t, got.WinContext)
	require.NotNil(t, got.WinContext.Consignee)
	assert.Equal(t, "Lin", got.WinContext.Consignee.RealName)
}

func TestGetPrizeOrderInfo(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	chance := winningChance(10, 5)

	repo.On("GetChance", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(validAward(5, false), nil)

	info, err := svc.GetPrizeOrderInfo(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Chance.ID)
	assert.Equal(t, int64(5), info.Award.ID)
}

func TestGetPrizeOrderInfo_NoPrize(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	loser := &domain.Chance{ID: 11, Status: domain.ChanceStatusExpired}

	repo.On("GetChance", mock.Anything, int64(11)).Return(loser, nil)

	_, err := svc.GetPrizeOrderInfo(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrInvalidPrize)
}

func TestValidateClaimable(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	chance := winningChance(10, 5)

	repo.On("GetChance", mock.Anything, int64(10)).Return(chance, nil)
	repo.On("GetAward", mock.Anything, int64(5)).Return(validAward(5, false), nil)

	assert.NoError(t, svc.ValidateClaimable(context.Background(), 10))

	unused := &domain.Chance{ID: 12, Status: domain.ChanceStatusInit}
	repo.On("GetChance", mock.Anything, int64(12)).Return(unused, nil)

	err := svc.ValidateClaimable(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrChanceAlreadyUsed)
}

func TestGetUserPendingPrizes(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	userID := uuid.New()

	pending := []domain.Chance{*winningChance(1, 5)}
	repo.On("FindChancesByUserAndStatus", mock.Anything, userID, domain.ChanceStatusWinning, PendingPrizesLimit).Return(pending, nil)

	got, err := svc.GetUserPendingPrizes(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetUserOrderedPrizes_LimitClamped(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	userID := uuid.New()

	repo.On("FindChancesByUserAndStatus", mock.Anything, userID, domain.ChanceStatusOrdered, OrderedPrizesLimit).Return([]domain.Chance{}, nil)

	_, err := svc.GetUserOrderedPrizes(context.Background(), userID, 0)
	require.NoError(t, err)
	_, err = svc.GetUserOrderedPrizes(context.Background(), userID, 9999)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "FindChancesByUserAndStatus", 2)
}
