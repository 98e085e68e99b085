package raffle

import (
	"math/rand"
	"sync"
	"time"
)

// mathRand is the production Rand over math/rand, safe for concurrent draws
type mathRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand creates a time-seeded randomness source
func NewRand() Rand {
	//nolint:gosec // G404: math/rand is acceptable for prize selection, not for cryptographic purposes
	return &mathRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRand creates a deterministic randomness source for reproducible runs
func NewSeededRand(seed int64) Rand {
	//nolint:gosec // G404: math/rand is acceptable for prize selection, not for cryptographic purposes
	return &mathRand{rng: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) IntBetween(min, max int) int {
	if min > max {
		return min
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(max-min+1) + min
}
