package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tourze/raffle-core/internal/domain"
)

// SweeperRepository implements repository.Sweeper backed by PostgreSQL
type SweeperRepository struct {
	db *pgxpool.Pool
}

// NewSweeperRepository creates a new sweeper repository
func NewSweeperRepository(db *pgxpool.Pool) *SweeperRepository {
	return &SweeperRepository{db: db}
}

// ExpireStaleChances retires abandoned chances in a single statement. Unused
// chances age from creation, unclaimed wins from their dispatch time. The
// version bump keeps concurrent optimistic saves honest with the sweep.
func (r *SweeperRepository) ExpireStaleChances(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE raffle_chance
		SET status = $1,
		    use_time = COALESCE(use_time, now()),
		    lock_version = lock_version + 1,
		    updated_at = now()
		WHERE status IN ($2, $3) AND COALESCE(use_time, created_at) < $4`,
		string(domain.ChanceStatusExpired), string(domain.ChanceStatusInit), string(domain.ChanceStatusWinning), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale chances: %w", err)
	}
	return tag.RowsAffected(), nil
}
