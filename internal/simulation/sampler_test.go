package simulation

import "testing"

func TestSeededSampler_Reproducible(t *testing.T) {
	a := NewSeededSampler(12345)
	b := NewSeededSampler(12345)

	for i := 0; i < 100; i++ {
		va := a.Uniform(2, 4)
		vb := b.Uniform(2, 4)
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
	}
}

func TestSampler_Bounds(t *testing.T) {
	s := NewSampler()

	for i := 0; i < 1000; i++ {
		v := s.Uniform(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("draw %f outside [3, 6]", v)
		}
	}
}

func TestSampler_DegenerateInterval(t *testing.T) {
	s := NewSampler()

	for i := 0; i < 10; i++ {
		if v := s.Uniform(5, 5); v != 5 {
			t.Fatalf("expected exactly 5 for degenerate interval, got %f", v)
		}
	}
}
