package engine

import (
	"math/rand"

	"github.com/alexanderramin/drill/internal/domain"
)

// Presentation randomization. All shuffles are uniform Fisher-Yates; the
// original comparator-sort trick is biased and deliberately not reproduced.
// Shuffled slices are copies; authored catalog data is never reordered in
// place.

// Shuffled returns a uniform random permutation of s. When s admits a
// distinct permutation, the result is guaranteed to differ from the authored
// order so a question never comes up pre-solved.
func Shuffled[T comparable](rng *rand.Rand, s []T) []T {
	out := append([]T(nil), s...)
	if len(out) < 2 {
		return out
	}
	for attempt := 0; attempt < 10; attempt++ {
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		if !equalSlices(out, s) {
			return out
		}
	}
	// All elements equal, or pathological luck; either way this is the best
	// permutation available.
	return out
}

// SampleQuestions draws n questions without replacement, uniformly. Fewer
// than n in the pool means the whole pool, shuffled.
func SampleQuestions(rng *rand.Rand, pool []domain.Question, n int) []domain.Question {
	out := append([]domain.Question(nil), pool...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
