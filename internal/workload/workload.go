// Package workload generates reproducible page access sequences.
package workload

import (
	"fmt"
	"math/bits"
	"math/rand"
)

type (
	// Generator returns a sequence of page numbers
	// for a pool of the given capacity.
	Generator = func(capacity int, seed int64) []int
	// Pattern is a named [Generator].
	Pattern struct {
		Name     string
		Generate Generator
	}

	constError string
)

// ErrUnknownPattern is returned by [Lookup].
const ErrUnknownPattern = constError("unknown access pattern")

func (errStr constError) Error() string { return string(errStr) }

// Patterns returns the built-in access patterns.
// Every generated sequence length is a power of two.
func Patterns() []Pattern {
	return []Pattern{
		{
			"sequential",
			func(int, int64) []int {
				const (
					universe = 1 << 16 // Key space large enough to force misses.
					seqLen   = 1 << 15
				)
				return Sequential(universe, seqLen)
			},
		},
		{
			"loop",
			func(capacity int, seed int64) []int {
				const (
					universe = 8192 // Moderately larger than capacity.
					seqLen   = 1 << 16
					hotRatio = 0.9 // 90% of accesses hit hot set.
				)
				return Looping(NewRNG(seed), capacity, universe, seqLen, hotRatio)
			},
		},
		{
			"zipf",
			func(_ int, seed int64) []int {
				const (
					universe = 16384 // Large enough to show skew.
					seqLen   = 1 << 16
					skew     = 1.2
					bias     = 1.0
				)
				return Zipf(NewRNG(seed), universe, seqLen, skew, bias)
			},
		},
		{
			"uniform",
			func(capacity int, seed int64) []int {
				const seqLen = 1 << 16
				upperBound := capacity * 4 // Universe bigger than capacity.
				return Uniform(NewRNG(seed), upperBound, seqLen)
			},
		},
	}
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (Pattern, error) {
	for _, pattern := range Patterns() {
		if pattern.Name == name {
			return pattern, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// NewRNG returns a deterministic source for seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Sequential cycles through [0, universe).
func Sequential(universe, seqLen int) []int {
	seq := make([]int, NextPow2(seqLen))
	for i := range seq {
		seq[i] = i % universe
	}
	return seq
}

// Looping draws from a hot set of capacity pages with
// probability hotRatio, otherwise from the rest of universe.
func Looping(rng *rand.Rand, capacity, universe, seqLen int, hotRatio float64) []int {
	var (
		seq      = make([]int, NextPow2(seqLen))
		hotSize  = max(1, capacity)
		coldSize = max(1, universe-hotSize)
	)
	for i := range seq {
		if rng.Float64() < hotRatio {
			seq[i] = rng.Intn(hotSize)
		} else {
			seq[i] = hotSize + rng.Intn(coldSize)
		}
	}
	return seq
}

// Zipf draws skewed page numbers from [0, universe).
func Zipf(rng *rand.Rand, universe, seqLen int, skew, bias float64) []int {
	var (
		seq  = make([]int, NextPow2(seqLen))
		imax = uint64(max(universe, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = int(zipf.Uint64())
	}
	return seq
}

// Uniform draws page numbers from [0, upperBound).
func Uniform(rng *rand.Rand, upperBound, seqLen int) []int {
	seq := make([]int, NextPow2(seqLen))
	for i := range seq {
		seq[i] = rng.Intn(upperBound)
	}
	return seq
}

// NextPow2 returns the smallest power of two >= x.
func NextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x)-1)
}
