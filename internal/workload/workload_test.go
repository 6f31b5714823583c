package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djdv/go-arcreplacer/internal/workload"
)

func TestNextPow2(t *testing.T) {
	for _, test := range []struct{ in, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1 << 16, 1 << 16},
	} {
		assert.Equal(t, test.want, workload.NextPow2(test.in), "NextPow2(%d)", test.in)
	}
}

func TestPatternsAreReproducible(t *testing.T) {
	const (
		capacity = 64
		seed     = 1
	)
	for _, pattern := range workload.Patterns() {
		t.Run(pattern.Name, func(t *testing.T) {
			t.Parallel()
			first := pattern.Generate(capacity, seed)
			require.NotEmpty(t, first)
			assert.Equal(t, workload.NextPow2(len(first)), len(first),
				"length must be a power of two")
			assert.Equal(t, first, pattern.Generate(capacity, seed))
			for _, page := range first {
				require.GreaterOrEqual(t, page, 0)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	pattern, err := workload.Lookup("zipf")
	require.NoError(t, err)
	assert.Equal(t, "zipf", pattern.Name)

	_, err = workload.Lookup("nope")
	assert.ErrorIs(t, err, workload.ErrUnknownPattern)
}

func TestBounds(t *testing.T) {
	rng := workload.NewRNG(3)
	for _, page := range workload.Uniform(rng, 10, 100) {
		assert.Less(t, page, 10)
	}
	for _, page := range workload.Sequential(5, 16) {
		assert.Less(t, page, 5)
	}
	const capacity = 4
	var hot int
	seq := workload.Looping(rng, capacity, 100, 1024, 1.0)
	for _, page := range seq {
		if page < capacity {
			hot++
		}
	}
	assert.Equal(t, len(seq), hot, "a hot ratio of 1 stays in the hot set")
}
