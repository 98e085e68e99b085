package domain

import "time"

// Pool is an orderable group of awards attached to one or more activities.
// IsDefault marks a fallback pool; the selection algorithm does not consult
// it, awards are drawn from all pools of an activity without preference.
type Pool struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	IsDefault  bool      `json:"is_default"`
	Valid      bool      `json:"valid"`
	SortNumber int       `json:"sort_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
