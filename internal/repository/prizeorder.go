package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tourze/raffle-core/internal/domain"
)

// PrizeOrder defines the interface for data access required by the prize order service
type PrizeOrder interface {
	GetChance(ctx context.Context, id int64) (*domain.Chance, error)
	GetAward(ctx context.Context, id int64) (*domain.Award, error)

	// FindChancesByUserAndStatus returns the user's chances in the given
	// status, newest first
	FindChancesByUserAndStatus(ctx context.Context, userID uuid.UUID, status domain.ChanceStatus, limit int) ([]domain.Chance, error)

	// Transaction support
	BeginClaimTx(ctx context.Context) (ClaimTx, error)
}
