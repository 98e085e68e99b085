package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tourze/raffle-core/internal/domain"
)

// Raffle defines the interface for data access required by the raffle service
type Raffle interface {
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)

	// FindEligibleAwards returns the awards a draw may select from: valid,
	// in stock, and under their daily cap for the day containing now.
	// Ordered by pool sort number, award sort number, then award ID.
	FindEligibleAwards(ctx context.Context, activityID int64, now time.Time) ([]domain.Award, error)

	GetAward(ctx context.Context, id int64) (*domain.Award, error)

	// CountTodayDispatched counts chances holding the award with a use time
	// inside the day containing now, regardless of their later status.
	CountTodayDispatched(ctx context.Context, awardID int64, now time.Time) (int, error)

	CreateChance(ctx context.Context, chance *domain.Chance) error
	GetChance(ctx context.Context, id int64) (*domain.Chance, error)

	// SaveChance persists the chance with an optimistic version check.
	// Returns domain.ErrConcurrencyConflict on a version mismatch.
	SaveChance(ctx context.Context, chance *domain.Chance) error

	FindChancesByUser(ctx context.Context, userID uuid.UUID, activityID int64, limit int) ([]domain.Chance, error)
	FindWinningChancesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error)
	CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error)

	// Transaction support
	BeginDrawTx(ctx context.Context) (DrawTx, error)
}
