package variant

import (
	"testing"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

func TestIceOrder1ExtremaCoincide(t *testing.T) {
	// S1: order=1, R=C=2. min and max already agree before any CFTP step —
	// there are no interior sites to flip.
	v := NewIce(1)
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)

	want := []int{1, 2, 2, 1}
	for i, got := range min.Data() {
		if got != want[i] {
			t.Fatalf("min[%d] = %d, want %d", i, got, want[i])
		}
	}
	if !min.Equal(max) {
		t.Fatalf("order-1 min and max should already coincide: min=%v max=%v", min.Data(), max.Data())
	}
}

func TestIceBoundaryPreservedAcrossSteps(t *testing.T) {
	// Boundary preservation invariant (spec.md §8 property 2): perimeter
	// values never change regardless of how many steps run.
	v := NewIce(4)
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)

	bits := rng.NewBitStream(rng.NewMT19937(7))
	for step := 0; step < 50; step++ {
		v.Step(min, max, bits)
		assertBoundary(t, v, min)
		assertBoundary(t, v, max)
		assertDomination(t, min, max)
	}
}

func assertBoundary(t *testing.T, v *Ice, h *core.HeightField) {
	t.Helper()
	R := v.size
	for r := 0; r < R; r++ {
		for c := 0; c < R; c++ {
			if r == 0 || c == 0 {
				want := abs(r-c) + 1
				if got := h.At(r, c); got != want {
					t.Fatalf("min-boundary (%d,%d) = %d, want %d", r, c, got, want)
				}
			}
			if r == R-1 || c == R-1 {
				want := R - abs(R-c-r-1)
				if got := h.At(r, c); got != want {
					t.Fatalf("max-boundary (%d,%d) = %d, want %d", r, c, got, want)
				}
			}
		}
	}
}

func assertDomination(t *testing.T, min, max *core.HeightField) {
	t.Helper()
	for i := range min.Data() {
		if min.Data()[i] > max.Data()[i] {
			t.Fatalf("pointwise domination violated at index %d: min=%d > max=%d", i, min.Data()[i], max.Data()[i])
		}
	}
}

func TestIceMonotoneCoupling(t *testing.T) {
	// spec.md §8 property 4: stepping a dominated pair under the same bits
	// preserves domination. The pair starts at the extremal fields; from the
	// second step on it is a non-extremal dominated pair.
	v := NewIce(6)
	lo := core.NewHeightField(v.Rows(), v.Cols())
	hi := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(lo)
	v.InitMax(hi)

	bits := rng.NewBitStream(rng.NewMT19937(123))
	for i := 0; i < 20; i++ {
		v.Step(lo, hi, bits)
		assertDomination(t, lo, hi)
	}
}

func TestIceEligibleAllFourNeighborsEqual(t *testing.T) {
	v := NewIce(3)
	h := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(h)
	R := v.size
	for r := 1; r <= R-2; r++ {
		for c := 1; c <= R-2; c++ {
			got := eligible(h, r, c)
			want := h.At(r-1, c) == h.At(r, c+1) && h.At(r, c+1) == h.At(r+1, c) && h.At(r+1, c) == h.At(r, c-1)
			if got != want {
				t.Fatalf("eligible(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
}
