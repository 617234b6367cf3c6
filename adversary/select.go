package adversary

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

// ErrEmptyPartitions is returned when Select is called with no buckets to
// choose from. The session only partitions non-empty candidate sets, so
// hitting this means a broken caller, not a recoverable game state.
var ErrEmptyPartitions = errors.New("cannot select from an empty partition map")

// Select picks the pattern least helpful to the guesser: the one whose
// bucket keeps the most candidates alive, tie-broken toward the fewest
// revealed letters, then uniformly at random. Keys are always enumerated in
// sorted order, so randomness is confined to the final tie-break and a
// seeded rng reproduces the same choice.
func Select(partitions map[Pattern][]string, rng *rand.Rand) (Pattern, error) {
	if len(partitions) == 0 {
		return "", ErrEmptyPartitions
	}
	keys := lo.Keys(partitions)
	slices.Sort(keys)

	maxSize := lo.Max(lo.Map(keys, func(p Pattern, _ int) int {
		return len(partitions[p])
	}))
	largest := lo.Filter(keys, func(p Pattern, _ int) bool {
		return len(partitions[p]) == maxSize
	})

	minRevealed := lo.Min(lo.Map(largest, func(p Pattern, _ int) int {
		return p.Revealed()
	}))
	tied := lo.Filter(largest, func(p Pattern, _ int) bool {
		return p.Revealed() == minRevealed
	})

	if len(tied) == 1 {
		return tied[0], nil
	}
	return tied[rng.Intn(len(tied))], nil
}
