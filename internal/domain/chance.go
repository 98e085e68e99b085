package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChanceStatus represents the lifecycle state of a draw opportunity
type ChanceStatus string

const (
	ChanceStatusInit     ChanceStatus = "init"
	ChanceStatusWinning  ChanceStatus = "winning"
	ChanceStatusOrdered  ChanceStatus = "ordered"
	ChanceStatusShipped  ChanceStatus = "shipped"
	ChanceStatusReceived ChanceStatus = "received"
	ChanceStatusExpired  ChanceStatus = "expired"
)

// Consignee is the delivery contact captured when a physical prize is claimed
type Consignee struct {
	RealName string `json:"real_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// WinContext is the snapshot recorded when a chance wins. It is copied at
// draw time and never re-derived from the Award, so history stays stable
// even if the award is edited later. The consignee joins the snapshot at
// claim time.
type WinContext struct {
	PrizeName  string     `json:"prize_name"`
	PrizeValue string     `json:"prize_value,omitempty"`
	WinTime    string     `json:"win_time"`
	Consignee  *Consignee `json:"consignee,omitempty"`
}

// Chance is one draw opportunity owned by a user within an activity
type Chance struct {
	ID          int64        `json:"id"`
	ActivityID  int64        `json:"activity_id"`
	UserID      uuid.UUID    `json:"user_id"`
	Status      ChanceStatus `json:"status"`
	UseTime     *time.Time   `json:"use_time,omitempty"`
	AwardID     *int64       `json:"award_id,omitempty"`
	WinContext  *WinContext  `json:"win_context,omitempty"`
	LockVersion int          `json:"lock_version"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsWinning reports whether the chance holds an unclaimed prize
func (c *Chance) IsWinning() bool {
	return c.AwardID != nil && c.Status == ChanceStatusWinning
}

// CanOrder reports whether the claim flow may pick this chance up
func (c *Chance) CanOrder() bool {
	return c.IsWinning()
}

// IsExpired reports whether the chance reached the expired state
func (c *Chance) IsExpired() bool {
	return c.Status == ChanceStatusExpired
}

// MarkAsWinning resolves the chance against the award it won.
// Only valid from the init state; callers enforce the guard.
func (c *Chance) MarkAsWinning(award *Award, ctx WinContext, now time.Time) {
	awardID := award.ID
	c.AwardID = &awardID
	c.Status = ChanceStatusWinning
	c.UseTime = &now
	c.WinContext = &ctx
}

// MarkAsExpired burns the chance without a prize. UseTime records when the
// chance was resolved, win or lose.
func (c *Chance) MarkAsExpired(now time.Time) {
	c.Status = ChanceStatusExpired
	if c.UseTime == nil {
		c.UseTime = &now
	}
}

// MarkAsOrdered moves a winning chance into the claim pipeline
func (c *Chance) MarkAsOrdered() {
	c.Status = ChanceStatusOrdered
}
