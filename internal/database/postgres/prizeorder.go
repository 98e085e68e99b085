package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tourze/raffle-core/internal/database"
	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/repository"
)

// PrizeOrderRepository implements repository.PrizeOrder backed by PostgreSQL
type PrizeOrderRepository struct {
	db *pgxpool.Pool
}

// NewPrizeOrderRepository creates a new prize order repository
func NewPrizeOrderRepository(db *pgxpool.Pool) *PrizeOrderRepository {
	return &PrizeOrderRepository{db: db}
}

func (r *PrizeOrderRepository) GetChance(ctx context.Context, id int64) (*domain.Chance, error) {
	return getChance(ctx, r.db, id, false)
}

func (r *PrizeOrderRepository) GetAward(ctx context.Context, id int64) (*domain.Award, error) {
	return getAward(ctx, r.db, id)
}

func (r *PrizeOrderRepository) FindChancesByUserAndStatus(ctx context.Context, userID uuid.UUID, status domain.ChanceStatus, limit int) ([]domain.Chance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+chanceColumns+` FROM raffle_chance
		WHERE user_id = $1 AND status = $2
		ORDER BY use_time DESC NULLS LAST, id DESC
		LIMIT $3`,
		userID, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find chances by status: %w", err)
	}

	return collectChances(rows)
}

func (r *PrizeOrderRepository) BeginClaimTx(ctx context.Context) (repository.ClaimTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &claimTx{tx: tx}, nil
}

// claimTx serializes claims on the same chance behind a row lock
type claimTx struct {
	tx pgx.Tx
}

func (t *claimTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *claimTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *claimTx) GetChanceForUpdate(ctx context.Context, id int64) (*domain.Chance, error) {
	return getChance(ctx, t.tx, id, true)
}

func (t *claimTx) SaveChance(ctx context.Context, chance *domain.Chance) error {
	return saveChance(ctx, t.tx, chance)
}
