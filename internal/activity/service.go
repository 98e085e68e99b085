package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/repository"
)

// Service defines the interface for activity read operations
type Service interface {
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
	GetActiveActivities(ctx context.Context) ([]domain.Activity, error)
	GetUpcomingActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	GetActivityDetail(ctx context.Context, id int64) (*Detail, error)
	IsActive(ctx context.Context, id int64) (bool, error)
}

// Detail is an activity with its pools and their awards
type Detail struct {
	Activity domain.Activity `json:"activity"`
	Status   string          `json:"status"`
	Pools    []PoolDetail    `json:"pools"`
}

// PoolDetail is a pool with its awards
type PoolDetail struct {
	Pool   domain.Pool    `json:"pool"`
	Awards []domain.Award `json:"awards"`
}

type service struct {
	repo  repository.Activity
	cache *activityCache
	now   func() time.Time
}

// NewService creates a new activity service with a read-through cache
func NewService(repo repository.Activity, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newActivityCache(cacheSize, cacheTTL),
		now:   time.Now,
	}
}

// GetActivity returns the activity, served from cache when fresh
func (s *service) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}

	activity, err := s.repo.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(id, activity)
	return activity, nil
}

// GetActiveActivities lists activities whose window contains the current
// instant. Always reads through to the database; the listing drives entry
// pages and must not lag behind a toggled valid flag.
func (s *service) GetActiveActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindActiveActivities(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to find active activities: %w", err)
	}
	return activities, nil
}

// GetUpcomingActivities lists valid activities whose window has not opened yet
func (s *service) GetUpcomingActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	activities, err := s.repo.FindUpcomingActivities(ctx, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming activities: %w", err)
	}
	return activities, nil
}

// GetActivityDetail returns the activity with its pools and awards
func (s *service) GetActivityDetail(ctx context.Context, id int64) (*Detail, error) {
	activity, err := s.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	pools, err := s.repo.FindPoolsByActivity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find pools: %w", err)
	}

	detail := &Detail{
		Activity: *activity,
		Status:   activity.Status(s.now()),
		Pools:    make([]PoolDetail, 0, len(pools)),
	}

	for _, pool := range pools {
		awards, err := s.repo.FindAwardsByPool(ctx, pool.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find awards for pool %d: %w", pool.ID, err)
		}
		detail.Pools = append(detail.Pools, PoolDetail{Pool: pool, Awards: awards})
	}

	logger.FromContext(ctx).Debug("Activity detail assembled", "activityID", id, "pools", len(detail.Pools))
	return detail, nil
}

// IsActive reports whether the activity gate is open right now
func (s *service) IsActive(ctx context.Context, id int64) (bool, error) {
	activity, err := s.GetActivity(ctx, id)
	if err != nil {
		return false, err
	}
	return activity.IsActive(s.now()), nil
}
