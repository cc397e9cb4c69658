package ranking

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"multiobjective/framework"
)

// ErrInvalidInput marks populations the ranker refuses to touch: objective
// vectors of inconsistent dimension, or empty vectors.
var ErrInvalidInput = errors.New("invalid input")

// Config holds the DominanceRanker parameters.
type Config struct {
	// Workers is the number of goroutines used for the pairwise
	// dominance stage. Values below 2 select the sequential path.
	Workers int
}

// Ranker assigns each member of a population its non-domination front
// index using the fast non-dominated sort of NSGA-II. A Ranker holds no
// per-call state and is safe for concurrent use.
type Ranker struct {
	workers int
}

// New creates a Ranker with the given configuration.
func New(cfg Config) *Ranker {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Ranker{workers: workers}
}

// Result is the front partition of a population.
type Result struct {
	// Ranks[i] is the front index assigned to solution i.
	Ranks []int
	// Fronts[k] lists the solutions of front k in ascending input
	// index. Fronts partition the population: every solution appears
	// in exactly one front, front indices are contiguous from 0, and
	// no front is empty.
	Fronts [][]int
}

// Rank partitions the population into non-domination fronts. Front 0 holds
// the solutions dominated by nobody, front 1 the solutions dominated only
// by front 0, and so on. The population itself is never written; ranks come
// back as an index-based Result (use Apply to copy them onto the
// individuals).
//
// All objective vectors must share one dimension M >= 1, checked before any
// ranking work begins; a mismatch fails with ErrInvalidInput. An empty
// population produces zero fronts and no error. Runs O(M*N^2) dominance
// comparisons plus O(N) bookkeeping per front.
func (r *Ranker) Rank(ctx context.Context, population []framework.Individual) (*Result, error) {
	logger := klog.FromContext(ctx)

	if err := validate(population); err != nil {
		return nil, err
	}
	if len(population) == 0 {
		return &Result{Ranks: []int{}}, nil
	}

	logger.V(5).Info("ranking population",
		"size", len(population),
		"objectives", len(population[0].Objectives),
		"workers", r.workers)

	var domCount []int
	var dominated [][]int
	if r.workers > 1 {
		domCount, dominated = compareParallel(population, r.workers)
	} else {
		domCount, dominated = compare(population)
	}

	res := peel(domCount, dominated)
	logger.V(5).Info("ranking complete", "fronts", len(res.Fronts))
	return res, nil
}

// Apply writes the computed rank onto each individual. The population must
// be the one Rank was called with, in the same order.
func (res *Result) Apply(population []framework.Individual) {
	for i := range population {
		population[i].Rank = res.Ranks[i]
	}
}

// NonDominatedSort performs non-dominated sorting on the population,
// writing ranks in place and returning the individuals grouped by front.
// Returns nil if the objective vectors do not share a single dimension.
func NonDominatedSort(population []framework.Individual) [][]framework.Individual {
	res, err := New(Config{}).Rank(context.Background(), population)
	if err != nil {
		return nil
	}
	res.Apply(population)

	fronts := make([][]framework.Individual, len(res.Fronts))
	for k, members := range res.Fronts {
		fronts[k] = make([]framework.Individual, len(members))
		for i, idx := range members {
			fronts[k][i] = population[idx]
		}
	}
	return fronts
}

func validate(population []framework.Individual) error {
	if len(population) == 0 {
		return nil
	}
	m := len(population[0].Objectives)
	if m == 0 {
		return fmt.Errorf("%w: individual 0 has an empty objective vector", ErrInvalidInput)
	}
	for i := range population {
		if len(population[i].Objectives) != m {
			return fmt.Errorf("%w: individual %d has %d objectives, want %d",
				ErrInvalidInput, i, len(population[i].Objectives), m)
		}
	}
	return nil
}

// compare evaluates the dominance predicate for every ordered pair,
// accumulating per solution how many others dominate it and which others
// it dominates.
func compare(population []framework.Individual) ([]int, [][]int) {
	domCount := make([]int, len(population))
	dominated := make([][]int, len(population))
	for i := range population {
		compareRow(population, i, domCount, dominated)
	}
	return domCount, dominated
}

// compareRow fills row i of the domination bookkeeping. Only the owner of
// row i writes domCount[i] and dominated[i], which keeps the parallel path
// free of shared writes.
func compareRow(population []framework.Individual, i int, domCount []int, dominated [][]int) {
	for j := range population {
		if i == j {
			continue
		}
		if framework.Dominates(population[i], population[j]) {
			dominated[i] = append(dominated[i], j)
		} else if framework.Dominates(population[j], population[i]) {
			domCount[i]++
		}
	}
}

// peel assigns fronts by repeatedly removing the solutions no remaining
// solution dominates. Domination is a strict partial order, so each peel
// frees at least one solution and the loop ends after at most N rounds.
// Each next front is collected by sweeping unassigned solutions in index
// order, so fronts come out in input order no matter how the pairwise
// stage was scheduled.
func peel(domCount []int, dominated [][]int) *Result {
	n := len(domCount)
	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = -1
	}

	current := []int{}
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			ranks[i] = 0
			current = append(current, i)
		}
	}

	var fronts [][]int
	for front := 0; len(current) > 0; front++ {
		fronts = append(fronts, current)

		for _, idx := range current {
			for _, d := range dominated[idx] {
				domCount[d]--
			}
		}

		next := []int{}
		for i := 0; i < n; i++ {
			if ranks[i] == -1 && domCount[i] == 0 {
				ranks[i] = front + 1
				next = append(next, i)
			}
		}
		current = next
	}

	return &Result{Ranks: ranks, Fronts: fronts}
}
