package kcluster

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/kcluster/internal/kmeans"
)

// Source provides the randomness used to pick the initial centroids.
// *rand.Rand satisfies it.
type Source = kmeans.Source

// lockedSource is a seeded Source that is safe for concurrent use.
type lockedSource struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return &lockedSource{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
	}
}

// NewTimeSource returns a Source seeded from the current time.
func NewTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Intn(n)
}
