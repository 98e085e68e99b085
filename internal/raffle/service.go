package raffle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/metrics"
	"github.com/tourze/raffle-core/internal/repository"
)

// Service defines the interface for draw engine operations
type Service interface {
	Participate(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.Chance, error)
	Draw(ctx context.Context, chanceID int64) (*domain.DrawResult, error)
	ParticipateAndDraw(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.DrawResult, error)
	CanParticipate(ctx context.Context, userID uuid.UUID, activityID int64) (bool, error)
	GetUserHistory(ctx context.Context, userID uuid.UUID, activityID *int64) ([]domain.Chance, error)
	CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error)
}

type service struct {
	repo repository.Raffle
	rng  Rand
	now  func() time.Time
}

// NewService creates a new raffle service
func NewService(repo repository.Raffle, rng Rand) Service {
	return &service{
		repo: repo,
		rng:  rng,
		now:  time.Now,
	}
}

// Participate grants the user a fresh chance in an active activity
func (s *service) Participate(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.Chance, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgParticipateCalled, "userID", userID, "activityID", activityID)

	activity, err := s.repo.GetActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetActivity, err)
	}
	if !activity.IsActive(s.now()) {
		return nil, fmt.Errorf("%w: activity %d", domain.ErrActivityInactive, activityID)
	}

	chance := &domain.Chance{
		ActivityID: activityID,
		UserID:     userID,
		Status:     domain.ChanceStatusInit,
	}
	if err := s.repo.CreateChance(ctx, chance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateChance, err)
	}

	metrics.ChancesCreatedTotal.Inc()
	log.Info(LogMsgChanceGranted, "chanceID", chance.ID, "userID", userID)
	return chance, nil
}

// Draw resolves an unused chance to a win or a loss. Losing the stock race
// to a concurrent draw is a loss, not an error.
func (s *service) Draw(ctx context.Context, chanceID int64) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawCalled, "chanceID", chanceID)

	chance, err := s.repo.GetChance(ctx, chanceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetChance, err)
	}
	if chance.Status != domain.ChanceStatusInit {
		return nil, fmt.Errorf("%w: chance %d is %s", domain.ErrChanceAlreadyUsed, chanceID, chance.Status)
	}

	// Re-gate: the activity may have closed since the chance was granted.
	// The chance stays unused so it can be drawn when the window reopens.
	activity, err := s.repo.GetActivity(ctx, chance.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetActivity, err)
	}
	now := s.now()
	if !activity.IsActive(now) {
		return nil, fmt.Errorf("%w: activity %d", domain.ErrActivityInactive, activity.ID)
	}

	awards, err := s.repo.FindEligibleAwards(ctx, activity.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindAwards, err)
	}

	selected := SelectAward(awards, s.rng)
	if selected == nil {
		return s.resolveAsLoss(ctx, chance, now)
	}

	return s.resolveAsWin(ctx, chance, selected, now)
}

// resolveAsWin decrements stock and records the win atomically. A failed
// decrement falls through to the loss path.
func (s *service) resolveAsWin(ctx context.Context, chance *domain.Chance, award *domain.Award, now time.Time) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginDrawTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Each win consumes Amount units of stock
	amount := award.Amount
	if amount <= 0 {
		amount = 1
	}
	ok, err := tx.DecreaseAwardQuantity(ctx, award.ID, amount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDecreaseStock, err)
	}
	if !ok {
		// Someone else took the last unit between selection and decrement
		log.Info(LogMsgStockRaceLost, "chanceID", chance.ID, "awardID", award.ID)
		metrics.StockConflictsTotal.Inc()
		return s.resolveAsLoss(ctx, chance, now)
	}

	chance.MarkAsWinning(award, domain.WinContext{
		PrizeName:  award.Name,
		PrizeValue: award.Value,
		WinTime:    now.Format(time.RFC3339),
	}, now)
	if err := tx.SaveChance(ctx, chance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveChance, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.DrawsTotal.WithLabelValues(metrics.OutcomeWin).Inc()
	log.Info(LogMsgDrawWon, "chanceID", chance.ID, "awardID", award.ID, "prize", award.Name)
	return &domain.DrawResult{Chance: chance, Award: award}, nil
}

// resolveAsLoss burns the chance without a prize
func (s *service) resolveAsLoss(ctx context.Context, chance *domain.Chance, now time.Time) (*domain.DrawResult, error) {
	chance.MarkAsExpired(now)
	if err := s.repo.SaveChance(ctx, chance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveChance, err)
	}

	metrics.DrawsTotal.WithLabelValues(metrics.OutcomeLose).Inc()
	logger.FromContext(ctx).Info(LogMsgDrawLost, "chanceID", chance.ID)
	return &domain.DrawResult{Chance: chance}, nil
}

// ParticipateAndDraw is the one-call flow: grant a chance and resolve it
// immediately
func (s *service) ParticipateAndDraw(ctx context.Context, userID uuid.UUID, activityID int64) (*domain.DrawResult, error) {
	logger.FromContext(ctx).Info(LogMsgParticipateAndDrawCalled, "userID", userID, "activityID", activityID)

	chance, err := s.Participate(ctx, userID, activityID)
	if err != nil {
		return nil, err
	}
	return s.Draw(ctx, chance.ID)
}

// CanParticipate reports whether the activity currently accepts new chances
// and still has at least one award the user could win. Per-user entry caps
// are the caller's policy.
func (s *service) CanParticipate(ctx context.Context, userID uuid.UUID, activityID int64) (bool, error) {
	activity, err := s.repo.GetActivity(ctx, activityID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToGetActivity, err)
	}
	now := s.now()
	if !activity.IsActive(now) {
		return false, nil
	}

	awards, err := s.repo.FindEligibleAwards(ctx, activityID, now)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToFindAwards, err)
	}
	return len(awards) > 0, nil
}

// GetUserHistory lists the user's chances. Scoped to an activity it returns
// every chance newest first; unscoped it returns unclaimed wins only.
func (s *service) GetUserHistory(ctx context.Context, userID uuid.UUID, activityID *int64) ([]domain.Chance, error) {
	if activityID != nil {
		chances, err := s.repo.FindChancesByUser(ctx, userID, *activityID, ActivityHistoryLimit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindChances, err)
		}
		return chances, nil
	}

	chances, err := s.repo.FindWinningChancesByUser(ctx, userID, WinningHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindChances, err)
	}
	return chances, nil
}

// CountUnusedChances reports how many draws the user still holds
func (s *service) CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error) {
	count, err := s.repo.CountUnusedChances(ctx, userID, activityID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCountChances, err)
	}
	return count, nil
}
