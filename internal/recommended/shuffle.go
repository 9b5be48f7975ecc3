package recommended

import "math/rand/v2"

// Shuffle permutes items in place with Fisher-Yates and returns the same slice.
// A nil rng uses the package-level source, which is safe for concurrent use.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	for i := len(items) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		items[i], items[j] = items[j], items[i]
	}
	return items
}
