package prizeorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/metrics"
	"github.com/tourze/raffle-core/internal/repository"
)

// Service defines the interface for prize claim operations
type Service interface {
	GetUserPendingPrizes(ctx context.Context, userID uuid.UUID) ([]domain.Chance, error)
	GetUserOrderedPrizes(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error)
	GetPrizeOrderInfo(ctx context.Context, chanceID int64) (*OrderInfo, error)
	ValidateClaimable(ctx context.Context, chanceID int64) error
	CreateOrder(ctx context.Context, chanceID int64, consignee *domain.Consignee) (*domain.Chance, error)
}

// OrderInfo bundles everything a claim page needs about one winning chance
type OrderInfo struct {
	Chance *domain.Chance `json:"chance"`
	Award  *domain.Award  `json:"award"`
}

type service struct {
	repo repository.PrizeOrder
}

// NewService creates a new prize order service
func NewService(repo repository.PrizeOrder) Service {
	return &service{repo: repo}
}

// GetUserPendingPrizes lists wins the user has not claimed yet
func (s *service) GetUserPendingPrizes(ctx context.Context, userID uuid.UUID) ([]domain.Chance, error) {
	chances, err := s.repo.FindChancesByUserAndStatus(ctx, userID, domain.ChanceStatusWinning, PendingPrizesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindPrizes, err)
	}
	return chances, nil
}

// GetUserOrderedPrizes lists claims already placed
func (s *service) GetUserOrderedPrizes(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error) {
	if limit <= 0 || limit > OrderedPrizesLimit {
		limit = OrderedPrizesLimit
	}
	chances, err := s.repo.FindChancesByUserAndStatus(ctx, userID, domain.ChanceStatusOrdered, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindPrizes, err)
	}
	return chances, nil
}

// GetPrizeOrderInfo resolves the chance and its prize for a claim page
func (s *service) GetPrizeOrderInfo(ctx context.Context, chanceID int64) (*OrderInfo, error) {
	chance, err := s.repo.GetChance(ctx, chanceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetChance, err)
	}

	award, err := s.resolvePrize(ctx, chance)
	if err != nil {
		return nil, err
	}

	return &OrderInfo{Chance: chance, Award: award}, nil
}

// ValidateClaimable checks whether the chance can enter the claim flow
// without locking it
func (s *service) ValidateClaimable(ctx context.Context, chanceID int64) error {
	chance, err := s.repo.GetChance(ctx, chanceID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetChance, err)
	}
	if !chance.CanOrder() {
		return fmt.Errorf("%w: chance %d is %s", domain.ErrChanceAlreadyUsed, chanceID, chance.Status)
	}
	_, err = s.resolvePrize(ctx, chance)
	return err
}

// resolvePrize maps a chance's award reference to a dispatchable prize.
// A missing or disabled award is a data problem surfaced as ErrInvalidPrize.
func (s *service) resolvePrize(ctx context.Context, chance *domain.Chance) (*domain.Award, error) {
	if chance.AwardID == nil {
		return nil, fmt.Errorf("%w: chance %d holds no prize", domain.ErrInvalidPrize, chance.ID)
	}

	award, err := s.repo.GetAward(ctx, *chance.AwardID)
	if err != nil {
		if errors.Is(err, domain.ErrAwardNotFound) {
			return nil, fmt.Errorf("%w: award %d is gone", domain.ErrInvalidPrize, *chance.AwardID)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetAward, err)
	}
	if !award.Valid {
		return nil, fmt.Errorf("%w: award %d is disabled", domain.ErrInvalidPrize, award.ID)
	}

	return award, nil
}

// CreateOrder moves a winning chance into the claim pipeline. The row lock
// serializes double claims; the loser of the race sees a non-winning status.
func (s *service) CreateOrder(ctx context.Context, chanceID int64, consignee *domain.Consignee) (*domain.Chance, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateOrderCalled, "chanceID", chanceID)

	tx, err := s.repo.BeginClaimTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	chance, err := tx.GetChanceForUpdate(ctx, chanceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetChance, err)
	}
	if !chance.CanOrder() {
		return nil, fmt.Errorf("%w: chance %d is %s", domain.ErrChanceAlreadyUsed, chanceID, chance.Status)
	}

	award, err := s.resolvePrize(ctx, chance)
	if err != nil {
		return nil, err
	}

	if award.NeedConsignee {
		if consignee == nil || consignee.RealName == "" || consignee.Address == "" {
			return nil, fmt.Errorf("%w: prize %q requires delivery details", domain.ErrInvalidInput, award.Name)
		}
		if chance.WinContext == nil {
			chance.WinContext = &domain.WinContext{PrizeName: award.Name, PrizeValue: award.Value}
		}
		chance.WinContext.Consignee = consignee
	}

	chance.MarkAsOrdered()
	if err := tx.SaveChance(ctx, chance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveChance, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.PrizeOrdersTotal.Inc()
	log.Info(LogMsgOrderPlaced, "chanceID", chanceID, "awardID", award.ID)
	return chance, nil
}
