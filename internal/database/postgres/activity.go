package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tourze/raffle-core/internal/domain"
)

// ActivityRepository implements repository.Activity backed by PostgreSQL
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	return getActivity(ctx, r.db, id)
}

func (r *ActivityRepository) FindActiveActivities(ctx context.Context, now time.Time) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+` FROM raffle_activity
		WHERE valid = TRUE AND start_time <= $1 AND end_time >= $1
		ORDER BY start_time, id`,
		now)
	if err != nil {
		return nil, fmt.Errorf("failed to find active activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) FindUpcomingActivities(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+` FROM raffle_activity
		WHERE valid = TRUE AND start_time > $1
		ORDER BY start_time, id
		LIMIT $2`,
		now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) FindPoolsByActivity(ctx context.Context, activityID int64) ([]domain.Pool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.is_default, p.valid, p.sort_number, p.created_at, p.updated_at
		FROM raffle_pool p
		JOIN raffle_activity_pool ap ON ap.pool_id = p.id
		WHERE ap.activity_id = $1
		ORDER BY p.sort_number, p.id`,
		activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find pools by activity: %w", err)
	}
	defer rows.Close()

	pools := []domain.Pool{}
	for rows.Next() {
		var p domain.Pool
		if err := rows.Scan(&p.ID, &p.Name, &p.IsDefault, &p.Valid, &p.SortNumber, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pools: %w", err)
	}
	return pools, nil
}

func (r *ActivityRepository) FindAwardsByPool(ctx context.Context, poolID int64) ([]domain.Award, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+awardColumns+` FROM raffle_award
		WHERE pool_id = $1
		ORDER BY sort_number, id`,
		poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to find awards by pool: %w", err)
	}

	return collectAwards(rows)
}
