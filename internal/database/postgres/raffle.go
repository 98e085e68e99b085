package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tourze/raffle-core/internal/database"
	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/repository"
)

// RaffleRepository implements repository.Raffle backed by PostgreSQL
type RaffleRepository struct {
	db *pgxpool.Pool
}

// NewRaffleRepository creates a new raffle repository
func NewRaffleRepository(db *pgxpool.Pool) *RaffleRepository {
	return &RaffleRepository{db: db}
}

func (r *RaffleRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	return getActivity(ctx, r.db, id)
}

func (r *RaffleRepository) GetAward(ctx context.Context, id int64) (*domain.Award, error) {
	return getAward(ctx, r.db, id)
}

// FindEligibleAwards returns draw candidates in stable selection order.
// The daily cap subquery counts dispatches by use_time inside the calendar
// day, whatever status those chances moved to afterwards.
func (r *RaffleRepository) FindEligibleAwards(ctx context.Context, activityID int64, now time.Time) ([]domain.Award, error) {
	dayStart, dayEnd := dayBounds(now)

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.pool_id, a.name, a.description, a.probability, a.quantity, a.day_limit,
		       a.amount, a.value, a.need_consignee, a.valid, a.sort_number, a.created_at, a.updated_at
		FROM raffle_award a
		JOIN raffle_pool p ON p.id = a.pool_id
		JOIN raffle_activity_pool ap ON ap.pool_id = p.id
		WHERE ap.activity_id = $1
		  AND p.valid = TRUE
		  AND a.valid = TRUE
		  AND a.quantity > 0
		  AND (a.day_limit IS NULL OR a.day_limit > (
		        SELECT COUNT(*) FROM raffle_chance c
		        WHERE c.award_id = a.id AND c.use_time >= $2 AND c.use_time < $3))
		ORDER BY p.sort_number, a.sort_number, a.id`,
		activityID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible awards: %w", err)
	}

	return collectAwards(rows)
}

func (r *RaffleRepository) CountTodayDispatched(ctx context.Context, awardID int64, now time.Time) (int, error) {
	dayStart, dayEnd := dayBounds(now)

	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM raffle_chance
		WHERE award_id = $1 AND use_time >= $2 AND use_time < $3`,
		awardID, dayStart, dayEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count today dispatched: %w", err)
	}
	return count, nil
}

func (r *RaffleRepository) CreateChance(ctx context.Context, chance *domain.Chance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO raffle_chance (activity_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, lock_version, created_at, updated_at`,
		chance.ActivityID, chance.UserID, string(chance.Status)).
		Scan(&chance.ID, &chance.LockVersion, &chance.CreatedAt, &chance.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chance: %w", err)
	}
	return nil
}

func (r *RaffleRepository) GetChance(ctx context.Context, id int64) (*domain.Chance, error) {
	return getChance(ctx, r.db, id, false)
}

func (r *RaffleRepository) SaveChance(ctx context.Context, chance *domain.Chance) error {
	return saveChance(ctx, r.db, chance)
}

func (r *RaffleRepository) FindChancesByUser(ctx context.Context, userID uuid.UUID, activityID int64, limit int) ([]domain.Chance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+chanceColumns+` FROM raffle_chance
		WHERE user_id = $1 AND activity_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`,
		userID, activityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find chances by user: %w", err)
	}

	return collectChances(rows)
}

func (r *RaffleRepository) FindWinningChancesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Chance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+chanceColumns+` FROM raffle_chance
		WHERE user_id = $1 AND status = $2
		ORDER BY use_time DESC NULLS LAST, id DESC
		LIMIT $3`,
		userID, string(domain.ChanceStatusWinning), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find winning chances: %w", err)
	}

	return collectChances(rows)
}

func (r *RaffleRepository) CountUnusedChances(ctx context.Context, userID uuid.UUID, activityID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM raffle_chance
		WHERE user_id = $1 AND activity_id = $2 AND status = $3`,
		userID, activityID, string(domain.ChanceStatusInit)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unused chances: %w", err)
	}
	return count, nil
}

func (r *RaffleRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &drawTx{tx: tx}, nil
}

// drawTx bundles the stock decrement and chance resolution into one
// transaction
type drawTx struct {
	tx pgx.Tx
}

func (t *drawTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *drawTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// DecreaseAwardQuantity is the only stock mutator in the system. The
// quantity guard in the WHERE clause makes it safe under concurrent draws;
// a false return means the stock ran out first.
func (t *drawTx) DecreaseAwardQuantity(ctx context.Context, awardID int64, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("%w: decrement amount must be positive", domain.ErrInvalidInput)
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE raffle_award
		SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2`,
		awardID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to decrease award quantity: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (t *drawTx) SaveChance(ctx context.Context, chance *domain.Chance) error {
	return saveChance(ctx, t.tx, chance)
}
