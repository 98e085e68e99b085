package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tourze/raffle-core/internal/domain"
)

// MockRepository implements [repository.Activity]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockRepository) FindActiveActivities(ctx context.Context, now time.Time) ([]domain.Activity, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockRepository) FindUpcomingActivities(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockRepository) FindPoolsByActivity(ctx context.Context, activityID int64) ([]domain.Pool, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pool), args.Error(1)
}

func (m *MockRepository) FindAwardsByPool(ctx context.Context, poolID int64) ([]domain.Award, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Award), args.Error(1)
}

func testActivity(id int64, valid bool, start, end time.Time) *domain.Activity {
	return &domain.Activity{ID: id, Title: "spring raffle", Valid: valid, StartTime: start, EndTime: end}
}

func TestGetActivity_CachesReads(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 16, time.Minute)
	now := time.Now()

	repo.On("GetActivity", mock.Anything, int64(1)).Return(testActivity(1, true, now.Add(-time.Hour), now.Add(time.Hour)), nil).Once()

	first, err := svc.GetActivity(context.Background(), 1)
	require.NoError(t, err)

	second, err := svc.GetActivity(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetActivity", 1)
}

func TestGetActivity_NotFoundNotCached(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 16, time.Minute)

	repo.On("GetActivity", mock.Anything, int64(9)).Return(nil, domain.ErrActivityNotFound).Twice()

	_, err := svc.GetActivity(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = svc.GetActivity(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	repo.AssertExpectations(t)
}

func TestIsActive_GateRecomputedOnCachedRow(t *testing.T) {
	repo := new(MockRepository)
	s := NewService(repo, 16, time.Minute).(*service)
	now := time.Now()

	// Window closes in 50ms; the row stays cached past that
	repo.On("GetActivity", mock.Anything, int64(1)).Return(testActivity(1, true, now.Add(-time.Hour), now.Add(50*time.Millisecond)), nil).Once()

	ok, err := s.IsActive(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	s.now = func() time.Time { return now.Add(time.Second) }

	ok, err = s.IsActive(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok, "cached row must not keep a closed window open")
}

func TestGetActiveActivities(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 16, time.Minute)
	now := time.Now()

	active := []domain.Activity{*testActivity(1, true, now.Add(-time.Hour), now.Add(time.Hour))}
	repo.On("FindActiveActivities", mock.Anything, mock.Anything).Return(active, nil)

	got, err := svc.GetActiveActivities(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetUpcomingActivities(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 16, time.Minute)
	now := time.Now()

	upcoming := []domain.Activity{*testActivity(2, true, now.Add(time.Hour), now.Add(2*time.Hour))}
	repo.On("FindUpcomingActivities", mock.Anything, mock.Anything, 5).Return(upcoming, nil)

	got, err := svc.GetUpcomingActivities(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestGetActivityDetail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 16, time.Minute)
	now := time.Now()

	repo.On("GetActivity", mock.Anything, int64(1)).Return(testActivity(1, true, now.Add(-time.Hour), now.Add(time.Hour)), nil)
	pools := []domain.Pool{{ID: 10, Name: "main", Valid: true, SortNumber: 1}}
	repo.On("FindPoolsByActivity", mock.Anything, int64(1)).Return(pools, nil)
	awards := []domain.Award{{ID: 100, PoolID: 10, Name: "mug", Probability: 10, Quantity: 5, Valid: true}}
	repo.On("FindAwardsByPool", mock.Anything, int64(10)).Return(awards, nil)

	detail, err := svc.GetActivityDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityStatusActive, detail.Status)
	require.Len(t, detail.Pools, 1)
	assert.Len(t, detail.Pools[0].Awards, 1)
}
