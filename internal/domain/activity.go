package domain

import "time"

// Activity is a time-boxed raffle campaign
type Activity struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Valid          bool       `json:"valid"`
	LastRedeemTime *time.Time `json:"last_redeem_time,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Activity status values reported to callers
const (
	ActivityStatusInactive = "inactive"
	ActivityStatusUpcoming = "upcoming"
	ActivityStatusActive   = "active"
	ActivityStatusEnded    = "ended"
)

// IsActive reports whether draws are allowed at the given instant
func (a *Activity) IsActive(now time.Time) bool {
	return a.Valid && !now.Before(a.StartTime) && !now.After(a.EndTime)
}

// Status classifies the activity relative to its time window
func (a *Activity) Status(now time.Time) string {
	if !a.Valid {
		return ActivityStatusInactive
	}
	if now.Before(a.StartTime) {
		return ActivityStatusUpcoming
	}
	if now.After(a.EndTime) {
		return ActivityStatusEnded
	}
	return ActivityStatusActive
}
