package config

import "time"

// Default values for optional settings
const (
	DefaultSweepInterval  = time.Hour
	DefaultSweepRetention = 7 * 24 * time.Hour

	DefaultActivityCacheSize = 128
	DefaultActivityCacheTTL  = 30 * time.Second
)

// Database pool settings
const (
	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)
