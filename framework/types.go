package framework

// Individual is a candidate solution as seen by the ranking core: an
// objective vector, one value per optimisation goal, all minimized.
type Individual struct {
	Objectives []float64

	// Rank is the non-domination front index, written by
	// ranking.Result.Apply. Zero means Pareto-optimal within the
	// ranked population.
	Rank int
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64
