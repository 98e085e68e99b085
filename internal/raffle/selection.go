package raffle

import "github.com/tourze/raffle-core/internal/domain"

// Rand is the randomness port for award selection. Production uses math/rand,
// tests substitute a deterministic stub.
type Rand interface {
	// IntBetween returns a uniform random integer in [min, max]
	IntBetween(min, max int) int
}

// Weight converts an award's inverse-odds probability into a draw weight.
// Probability is a denominator: 1 means near-certain, WeightScale means one
// part in WeightScale. Non-positive probabilities never win. Probabilities
// above WeightScale still get the minimum weight of 1 rather than vanishing.
func Weight(probability int) int {
	if probability <= 0 {
		return 0
	}
	w := WeightScale / probability
	if w < 1 {
		return 1
	}
	return w
}

// TotalWeight sums the weights of all candidates
func TotalWeight(awards []domain.Award) int {
	total := 0
	for i := range awards {
		total += Weight(awards[i].Probability)
	}
	return total
}

// SelectAward runs one weighted roulette spin over the candidates. The slice
// order is the cumulative walk order and must already be the stable
// (pool sort, award sort, award id) ordering from the eligibility query.
// Returns nil when no candidate can win.
func SelectAward(awards []domain.Award, rng Rand) *domain.Award {
	total := TotalWeight(awards)
	if total <= 0 {
		return nil
	}

	r := rng.IntBetween(1, total)

	cumulative := 0
	for i := range awards {
		w := Weight(awards[i].Probability)
		if w == 0 {
			continue
		}
		cumulative += w
		if r <= cumulative {
			return &awards[i]
		}
	}

	// r <= total, so the walk always terminates inside the loop
	return nil
}
