package variant

import (
	"testing"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

func TestBoxedPPExtrema(t *testing.T) {
	v := NewBoxedPP(3, 4, 5)
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)

	for _, x := range min.Data() {
		if x != 0 {
			t.Fatalf("InitMin produced non-zero entry %d", x)
		}
	}
	for _, x := range max.Data() {
		if x != 5 {
			t.Fatalf("InitMax produced entry %d, want 5", x)
		}
	}
}

func TestBoxedPPRangePreservedAcrossSteps(t *testing.T) {
	v := NewBoxedPP(4, 5, 9)
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)

	bits := rng.NewBitStream(rng.NewMT19937(42))
	for step := 0; step < 100; step++ {
		v.Step(min, max, bits)
		for _, h := range min.Data() {
			if h < 0 || h > v.c {
				t.Fatalf("min out of range [0,%d]: %d", v.c, h)
			}
		}
		for _, h := range max.Data() {
			if h < 0 || h > v.c {
				t.Fatalf("max out of range [0,%d]: %d", v.c, h)
			}
		}
		for i := range min.Data() {
			if min.Data()[i] > max.Data()[i] {
				t.Fatalf("domination violated at %d: min=%d max=%d", i, min.Data()[i], max.Data()[i])
			}
		}
	}
}

func TestBoxedPPSingleCellUniformSupport(t *testing.T) {
	// S4 shape check: a=1,b=1 box only ever takes values in {0,...,c}.
	v := NewBoxedPP(1, 1, 5)
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)

	bits := rng.NewBitStream(rng.NewMT19937(1))
	for i := 0; i < 1000; i++ {
		v.Step(min, max, bits)
		if min.At(0, 0) < 0 || min.At(0, 0) > 5 {
			t.Fatalf("single-cell value %d out of range", min.At(0, 0))
		}
	}
}

func TestBoxedPPVirtualBoundary(t *testing.T) {
	v := NewBoxedPP(2, 2, 3)
	h := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMax(h) // all entries at ceiling: only the bottom-right cell is flip-down eligible
	if got := v.top(h, 0, 0); got != 3 {
		t.Fatalf("top virtual boundary = %d, want box ceiling 3", got)
	}
	if got := v.left(h, 0, 0); got != 3 {
		t.Fatalf("left virtual boundary = %d, want box ceiling 3", got)
	}
	if got := v.bottom(h, 1, 0); got != 0 {
		t.Fatalf("bottom virtual boundary = %d, want 0", got)
	}
	if got := v.right(h, 0, 1); got != 0 {
		t.Fatalf("right virtual boundary = %d, want 0", got)
	}
}
