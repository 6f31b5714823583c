package main

import (
	"fmt"

	"github.com/hashicorp/golang-lru/arc/v2"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	arcreplacer "github.com/djdv/go-arcreplacer"
	"github.com/djdv/go-arcreplacer/internal/pool"
	"github.com/djdv/go-arcreplacer/internal/workload"
)

type (
	// simulation is one pattern, capacity and policy combination.
	simulation struct {
		pattern  workload.Pattern
		capacity int
		policy   string
		length   int
		seeds    int
	}
	summary struct {
		simulation
		mean, stddev float64
	}
	constError string
)

const (
	policyARC       = "arc"
	policyHashicorp = "hashicorp"
)

const (
	// ErrUnknownPolicy is returned for a policy name other than
	// "arc" or "hashicorp".
	ErrUnknownPolicy = constError("unknown policy")
	// ErrInvalidSeeds is returned when fewer than one seed is requested.
	ErrInvalidSeeds = constError("invalid seed count")
)

func (errStr constError) Error() string { return string(errStr) }

func checkPolicy(name string) error {
	switch name {
	case policyARC, policyHashicorp:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)",
			ErrUnknownPolicy, name, policyARC, policyHashicorp)
	}
}

// run replays the pattern once per seed and summarizes the hit rates.
func (sim simulation) run(log *logrus.Logger) (summary, error) {
	rates := make([]float64, 0, sim.seeds)
	for seed := range int64(sim.seeds) {
		sequence := sim.pattern.Generate(sim.capacity, seed)
		if sim.length > 0 && sim.length < len(sequence) {
			sequence = sequence[:sim.length]
		}
		rate, err := hitRate(sim.policy, sim.capacity, sequence, log)
		if err != nil {
			return summary{}, err
		}
		log.WithFields(logrus.Fields{
			"pattern":  sim.pattern.Name,
			"capacity": sim.capacity,
			"policy":   sim.policy,
			"seed":     seed,
			"hit_rate": rate,
		}).Info("simulated")
		rates = append(rates, rate)
	}
	result := summary{simulation: sim}
	if len(rates) == 1 {
		result.mean = rates[0]
	} else {
		result.mean, result.stddev = stat.MeanStdDev(rates, nil)
	}
	return result, nil
}

// hitRate returns the fraction of accesses in sequence
// that found their page resident.
func hitRate(policy string, capacity int, sequence []int, log *logrus.Logger) (float64, error) {
	if len(sequence) == 0 {
		return 0, nil
	}
	var (
		hits int
		err  error
	)
	switch policy {
	case policyARC:
		hits, err = replayPool(capacity, sequence, log)
	case policyHashicorp:
		hits, err = replayARC(capacity, sequence)
	default:
		err = checkPolicy(policy)
	}
	if err != nil {
		return 0, err
	}
	return float64(hits) / float64(len(sequence)), nil
}

func replayPool(capacity int, sequence []int, log *logrus.Logger) (int, error) {
	replacer, err := arcreplacer.New(capacity, arcreplacer.WithLogger(log))
	if err != nil {
		return 0, err
	}
	bufPool, err := pool.New(capacity, replacer)
	if err != nil {
		return 0, err
	}
	for _, key := range sequence {
		page := pool.PageID(key)
		if _, _, err := bufPool.Pin(page); err != nil {
			return 0, err
		}
		if err := bufPool.Unpin(page); err != nil {
			return 0, err
		}
	}
	return bufPool.Hits(), nil
}

func replayARC(capacity int, sequence []int) (int, error) {
	cache, err := arc.NewARC[int, struct{}](capacity)
	if err != nil {
		return 0, err
	}
	var hits int
	for _, key := range sequence {
		if _, ok := cache.Get(key); ok {
			hits++
			continue
		}
		cache.Add(key, struct{}{})
	}
	return hits, nil
}
