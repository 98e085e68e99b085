package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tourze/raffle-core/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the query helpers
// below can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// dayBounds returns the half-open calendar day [start, end) containing t,
// in t's location. The daily dispatch cap counts inside this window.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func marshalWinContext(wc *domain.WinContext) ([]byte, error) {
	if wc == nil {
		return nil, nil
	}
	data, err := json.Marshal(wc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal win context: %w", err)
	}
	return data, nil
}

func unmarshalWinContext(data []byte) (*domain.WinContext, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var wc domain.WinContext
	if err := json.Unmarshal(data, &wc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal win context: %w", err)
	}
	return &wc, nil
}

// ---- Row scanning helpers ----

const chanceColumns = `id, activity_id, user_id, status, use_time, award_id, win_context, lock_version, created_at, updated_at`

func scanChance(row pgx.Row) (*domain.Chance, error) {
	var c domain.Chance
	var status string
	var winCtx []byte
	err := row.Scan(&c.ID, &c.ActivityID, &c.UserID, &status, &c.UseTime, &c.AwardID, &winCtx, &c.LockVersion, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = domain.ChanceStatus(status)
	wc, err := unmarshalWinContext(winCtx)
	if err != nil {
		return nil, err
	}
	c.WinContext = wc
	return &c, nil
}

func collectChances(rows pgx.Rows) ([]domain.Chance, error) {
	defer rows.Close()

	chances := []domain.Chance{}
	for rows.Next() {
		c, err := scanChance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chance: %w", err)
		}
		chances = append(chances, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chances: %w", err)
	}
	return chances, nil
}

const awardColumns = `id, pool_id, name, description, probability, quantity, day_limit, amount, value, need_consignee, valid, sort_number, created_at, updated_at`

func scanAward(row pgx.Row) (*domain.Award, error) {
	var a domain.Award
	err := row.Scan(&a.ID, &a.PoolID, &a.Name, &a.Description, &a.Probability, &a.Quantity, &a.DayLimit,
		&a.Amount, &a.Value, &a.NeedConsignee, &a.Valid, &a.SortNumber, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAwards(rows pgx.Rows) ([]domain.Award, error) {
	defer rows.Close()

	awards := []domain.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read awards: %w", err)
	}
	return awards, nil
}

const activityColumns = `id, title, start_time, end_time, valid, last_redeem_time, created_at, updated_at`

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	err := row.Scan(&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.Valid, &a.LastRedeemTime, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ---- Shared entity lookups ----

func getActivity(ctx context.Context, q querier, id int64) (*domain.Activity, error) {
	row := q.QueryRow(ctx, `SELECT `+activityColumns+` FROM raffle_activity WHERE id = $1`, id)
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

func getAward(ctx context.Context, q querier, id int64) (*domain.Award, error) {
	row := q.QueryRow(ctx, `SELECT `+awardColumns+` FROM raffle_award WHERE id = $1`, id)
	award, err := scanAward(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAwardNotFound
		}
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	return award, nil
}

func getChance(ctx context.Context, q querier, id int64, forUpdate bool) (*domain.Chance, error) {
	query := `SELECT ` + chanceColumns + ` FROM raffle_chance WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	chance, err := scanChance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChanceNotFound
		}
		return nil, fmt.Errorf("failed to get chance: %w", err)
	}
	return chance, nil
}

// saveChance persists a chance with an optimistic version check. The version
// column only ever moves forward by one per successful save.
func saveChance(ctx context.Context, q querier, c *domain.Chance) error {
	winCtx, err := marshalWinContext(c.WinContext)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE raffle_chance
		SET status = $2,
		    use_time = $3,
		    award_id = $4,
		    win_context = $5,
		    lock_version = lock_version + 1,
		    updated_at = now()
		WHERE id = $1 AND lock_version = $6`,
		c.ID, string(c.Status), c.UseTime, c.AwardID, winCtx, c.LockVersion)
	if err != nil {
		return fmt.Errorf("failed to save chance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM raffle_chance WHERE id = $1)`, c.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check chance existence: %w", err)
		}
		if !exists {
			return domain.ErrChanceNotFound
		}
		return domain.ErrConcurrencyConflict
	}

	c.LockVersion++
	return nil
}
