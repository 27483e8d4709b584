package simulation

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler produces uniform random draws. The engine takes a Sampler
// instead of a random source directly so tests can substitute a seeded
// generator and assert exact reproducibility.
type Sampler interface {
	// Uniform returns a value uniformly distributed in [lo, hi].
	// When lo == hi the draw is deterministic.
	Uniform(lo, hi float64) float64
}

type randSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a time-seeded sampler.
func NewSampler() Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler returns a sampler with a fixed seed. Given the same
// seed and the same sequence of calls, it produces the same draws.
func NewSeededSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) Uniform(lo, hi float64) float64 {
	if hi == lo {
		return lo
	}

	// rand.Rand is not safe for concurrent use.
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()

	return lo + f*(hi-lo)
}
