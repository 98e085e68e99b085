package domain

import "time"

// Award is a prize definition with weight, stock and an optional daily cap.
// Probability is an inverse-odds denominator: a lower value yields a larger
// draw weight. Quantity is remaining stock and is only ever decremented
// through the conditional decrement in the award repository.
type Award struct {
	ID            int64     `json:"id"`
	PoolID        int64     `json:"pool_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Probability   int       `json:"probability"`
	Quantity      int       `json:"quantity"`
	DayLimit      *int      `json:"day_limit,omitempty"`
	Amount        int       `json:"amount"`
	Value         string    `json:"value"`
	NeedConsignee bool      `json:"need_consignee"`
	Valid         bool      `json:"valid"`
	SortNumber    int       `json:"sort_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsAvailable reports whether the award can still be dispatched at all
func (a *Award) IsAvailable() bool {
	return a.Valid && a.Quantity > 0
}
