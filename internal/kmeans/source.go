package kmeans

// Source provides the randomness used for seeding.
type Source interface {
	// Intn returns an unbiased random integer in [0, n). n is always > 0.
	Intn(n int) int
}

// Observer receives progress notifications from a run.
// Observers must not retain or modify the slices they are given.
type Observer interface {
	// Seeded is called once with the arena indices chosen as initial
	// centroids; indices[i] seeds cluster i.
	Seeded(indices []int)
	// Iteration is called after each completed loop body with the
	// iteration counter and the number of points that changed cluster.
	Iteration(iteration, moved int)
}

type nopObserver struct{}

func (nopObserver) Seeded([]int)       {}
func (nopObserver) Iteration(int, int) {}
