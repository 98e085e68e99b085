package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository implements [repository.Sweeper]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ExpireStaleChances(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return int64(args.Int(0)), args.Error(1)
}

func TestProcess_UsesRetentionCutoff(t *testing.T) {
	repo := new(MockRepository)
	s := New(repo, 7*24*time.Hour)

	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	want := fixed.Add(-7 * 24 * time.Hour)
	repo.On("ExpireStaleChances", mock.Anything, want).Return(3, nil)

	err := s.Process(context.Background())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProcess_PropagatesError(t *testing.T) {
	repo := new(MockRepository)
	s := New(repo, time.Hour)

	repo.On("ExpireStaleChances", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	err := s.Process(context.Background())
	assert.Error(t, err)
}
