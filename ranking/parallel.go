package ranking

import (
	"github.com/sourcegraph/conc/pool"

	"multiobjective/framework"
)

// compareParallel runs the pairwise dominance stage across workers. Rows
// are sharded by solution index: each worker owns a contiguous block and is
// the only writer of its rows' counters and dominated sets, so every
// ordered pair is evaluated exactly once per direction with no
// synchronization beyond the pool join.
func compareParallel(population []framework.Individual, workers int) ([]int, [][]int) {
	n := len(population)
	domCount := make([]int, n)
	dominated := make([][]int, n)

	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	p := pool.New().WithMaxGoroutines(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		p.Go(func() {
			for i := start; i < end; i++ {
				compareRow(population, i, domCount, dominated)
			}
		})
	}
	p.Wait()

	return domCount, dominated
}
