package util

import (
	"multiobjective/framework"
	"multiobjective/ranking"
)

// ParetoFront extracts the objective-space points of the first
// non-dominated front from a ranked population.
func ParetoFront(population []framework.Individual, res *ranking.Result) []framework.ObjectiveSpacePoint {
	if res == nil || len(res.Fronts) == 0 {
		return nil
	}

	points := make([]framework.ObjectiveSpacePoint, len(res.Fronts[0]))
	for i, idx := range res.Fronts[0] {
		point := make(framework.ObjectiveSpacePoint, len(population[idx].Objectives))
		copy(point, population[idx].Objectives)
		points[i] = point
	}
	return points
}

// Front returns the members of front k in input order, or nil if no such
// front exists.
func Front(population []framework.Individual, res *ranking.Result, k int) []framework.Individual {
	if res == nil || k < 0 || k >= len(res.Fronts) {
		return nil
	}

	members := make([]framework.Individual, len(res.Fronts[k]))
	for i, idx := range res.Fronts[k] {
		members[i] = population[idx]
	}
	return members
}

// FrontCount reports how many fronts a ranking produced.
func FrontCount(res *ranking.Result) int {
	if res == nil {
		return 0
	}
	return len(res.Fronts)
}
