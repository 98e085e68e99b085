package repository

import (
	"context"
	"time"

	"github.com/tourze/raffle-core/internal/domain"
)

// Activity defines the interface for data access required by the activity service
type Activity interface {
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
	FindActiveActivities(ctx context.Context, now time.Time) ([]domain.Activity, error)
	FindUpcomingActivities(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error)
	FindPoolsByActivity(ctx context.Context, activityID int64) ([]domain.Pool, error)
	FindAwardsByPool(ctx context.Context, poolID int64) ([]domain.Award, error)
}
