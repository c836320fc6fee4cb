package rng

import mrand "math/rand"

// seededSource implements Source using math/rand with a fixed seed.
// Intended for tests and the drop simulator, where reproducible
// sequences matter more than unpredictability.
type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic Source seeded with seed.
//
// Postcondition: Two sources created with the same seed produce
// identical sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return s.r.Intn(n)
}

func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}

// fixedSource always returns the same values. Useful in tests that need
// to force a specific roll.
type fixedSource struct {
	intn    int
	float64 float64
}

// NewFixedSource returns a Source whose Intn always returns intn
// (clamped to [0, n)) and whose Float64 always returns f.
func NewFixedSource(intn int, f float64) Source {
	return &fixedSource{intn: intn, float64: f}
}

func (s *fixedSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	if s.intn >= n {
		return n - 1
	}
	return s.intn
}

func (s *fixedSource) Float64() float64 {
	return s.float64
}
