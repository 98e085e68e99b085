package repository

import (
	"context"
	"time"
)

// Sweeper defines the interface for the retention sweep job
type Sweeper interface {
	// ExpireStaleChances marks every unused chance created before the cutoff
	// as expired and returns how many rows were touched
	ExpireStaleChances(ctx context.Context, cutoff time.Time) (int64, error)
}
