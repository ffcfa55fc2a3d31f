package engine

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffled_PermutationDiffersFromSource(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 50; i++ {
		got := Shuffled(rng, src)
		require.ElementsMatch(t, src, got)
		assert.NotEqual(t, src, got, "presentation must not equal the authored order")
	}

	// Source is never mutated.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, src)
}

func TestShuffled_SmallInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Shuffled(rng, []string(nil)))
	assert.Equal(t, []string{"only"}, Shuffled(rng, []string{"only"}))

	// Two distinct elements always swap.
	got := Shuffled(rng, []string{"x", "y"})
	assert.Equal(t, []string{"y", "x"}, got)

	// All-equal input has no distinct permutation; returning it as-is is
	// the only option.
	assert.Equal(t, []string{"z", "z"}, Shuffled(rng, []string{"z", "z"}))
}

func TestSampleQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := make([]domain.Question, 20)
	for i := range pool {
		pool[i].ID = string(rune('a' + i))
	}

	got := SampleQuestions(rng, pool, 10)
	require.Len(t, got, 10)

	// Without replacement: no duplicates.
	seen := map[string]bool{}
	for _, q := range got {
		assert.False(t, seen[q.ID], "question %s drawn twice", q.ID)
		seen[q.ID] = true
	}

	// Pool smaller than the request yields the whole pool.
	small := pool[:3]
	assert.Len(t, SampleQuestions(rng, small, 10), 3)
}
