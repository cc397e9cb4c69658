package framework

import "gonum.org/v1/gonum/floats"

// Dominates checks if individual a dominates individual b: a is no worse
// than b in every objective and strictly better in at least one. Two
// individuals with identical objective vectors dominate neither each other.
//
// NaN is non-ordered, so an objective vector containing NaN cannot satisfy
// the "no worse in every objective" clause in either direction: any pair
// involving a NaN is mutually non-dominated. The HasNaN guard makes that
// the defined behavior rather than an artifact of comparison order.
//
// Both vectors must have the same length; the ranker validates this before
// any pair reaches the predicate.
func Dominates(a, b Individual) bool {
	if floats.HasNaN(a.Objectives) || floats.HasNaN(b.Objectives) {
		return false
	}

	better := false
	for i := range a.Objectives {
		if a.Objectives[i] > b.Objectives[i] {
			return false
		}
		if a.Objectives[i] < b.Objectives[i] {
			better = true
		}
	}
	return better
}
