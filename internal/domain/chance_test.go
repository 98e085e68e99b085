package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChance_MarkAsWinning(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &Chance{ID: 1, Status: ChanceStatusInit}
	award := &Award{ID: 3, Name: "Gift Card", Value: "50.00"}

	c.MarkAsWinning(award, WinContext{PrizeName: award.Name, PrizeValue: award.Value}, now)

	assert.Equal(t, ChanceStatusWinning, c.Status)
	require.NotNil(t, c.AwardID)
	assert.Equal(t, int64(3), *c.AwardID)
	require.NotNil(t, c.UseTime)
	assert.Equal(t, now, *c.UseTime)
	require.NotNil(t, c.WinContext)
	assert.Equal(t, "Gift Card", c.WinContext.PrizeName)
	assert.True(t, c.IsWinning())
	assert.True(t, c.CanOrder())
}

func TestChance_MarkAsExpired_KeepsExistingUseTime(t *testing.T) {
	used := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c := &Chance{ID: 1, Status: ChanceStatusWinning, UseTime: &used}

	c.MarkAsExpired(used.Add(48 * time.Hour))

	assert.Equal(t, ChanceStatusExpired, c.Status)
	assert.Equal(t, used, *c.UseTime)
	assert.True(t, c.IsExpired())
}

func TestChance_MarkAsExpired_BackfillsUseTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &Chance{ID: 1, Status: ChanceStatusInit}

	c.MarkAsExpired(now)

	require.NotNil(t, c.UseTime)
	assert.Equal(t, now, *c.UseTime)
}

func TestChance_CanOrder(t *testing.T) {
	awardID := int64(3)

	tests := []struct {
		name   string
		chance Chance
		want   bool
	}{
		{"winning with award", Chance{Status: ChanceStatusWinning, AwardID: &awardID}, true},
		{"winning without award", Chance{Status: ChanceStatusWinning}, false},
		{"init", Chance{Status: ChanceStatusInit, AwardID: &awardID}, false},
		{"already ordered", Chance{Status: ChanceStatusOrdered, AwardID: &awardID}, false},
		{"expired", Chance{Status: ChanceStatusExpired, AwardID: &awardID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.chance.CanOrder())
		})
	}
}

func TestActivity_Status(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	a := Activity{StartTime: start, EndTime: end, Valid: true}

	assert.Equal(t, ActivityStatusUpcoming, a.Status(start.Add(-time.Hour)))
	assert.Equal(t, ActivityStatusActive, a.Status(start))
	assert.Equal(t, ActivityStatusActive, a.Status(end))
	assert.Equal(t, ActivityStatusEnded, a.Status(end.Add(time.Second)))

	a.Valid = false
	assert.Equal(t, ActivityStatusInactive, a.Status(start.Add(time.Hour)))
	assert.False(t, a.IsActive(start.Add(time.Hour)))
}
