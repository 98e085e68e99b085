package repository

import (
	"context"

	"github.com/tourze/raffle-core/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DrawTx extends Tx with the operations a draw needs to run atomically.
// The stock decrement and the chance resolution either both land or neither does.
type DrawTx interface {
	Tx

	// DecreaseAwardQuantity conditionally decrements stock. It returns false
	// without error when remaining stock is below amount.
	DecreaseAwardQuantity(ctx context.Context, awardID int64, amount int) (bool, error)

	// SaveChance persists the chance with an optimistic version check
	SaveChance(ctx context.Context, chance *domain.Chance) error
}

// ClaimTx extends Tx with the operations of the prize claim flow
type ClaimTx interface {
	Tx

	// GetChanceForUpdate loads a chance under a row lock for the duration of the transaction
	GetChanceForUpdate(ctx context.Context, id int64) (*domain.Chance, error)

	// SaveChance persists the chance with an optimistic version check
	SaveChance(ctx context.Context, chance *domain.Chance) error
}
