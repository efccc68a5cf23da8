// Package variant implements the two lattice models the CFTP engine drives:
// Ice (alternating sign matrix height functions) and BoxedPP (boxed plane
// partitions). Both satisfy core.Variant; the shape of the code —
// New/Name/Rows/Cols accessors, a Reset-like pair of initializers, and a Step
// method walking the grid in a fixed order — is grounded directly on the
// teacher's cellular-automaton Sims (pkg/sims/life, internal/sims/briansbrain,
// internal/sims/elementary), generalized from one grid to the coupled
// (min, max) pair CFTP requires.
package variant

import (
	"fmt"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// Ice implements the order-n square-ice / ASM height function lattice.
type Ice struct {
	n    int
	size int // R = C = n+1
}

// NewIce returns an Ice variant of the given order. order must be positive;
// callers validate this before construction (see internal/cliutil).
func NewIce(order int) *Ice {
	return &Ice{n: order, size: order + 1}
}

// Name identifies the variant.
func (v *Ice) Name() string { return fmt.Sprintf("ice(%d)", v.n) }

// Rows returns R = n+1.
func (v *Ice) Rows() int { return v.size }

// Cols returns C = n+1.
func (v *Ice) Cols() int { return v.size }

// InitMin fills h with the minimal ice-rule height function:
// min[r][c] = |r-c|+1.
func (v *Ice) InitMin(h *core.HeightField) {
	for r := 0; r < v.size; r++ {
		for c := 0; c < v.size; c++ {
			h.Set(r, c, abs(r-c)+1)
		}
	}
}

// InitMax fills h with the maximal ice-rule height function:
// max[r][c] = R - |R-c-r-1|.
func (v *Ice) InitMax(h *core.HeightField) {
	R := v.size
	for r := 0; r < R; r++ {
		for c := 0; c < R; c++ {
			h.Set(r, c, R-abs(R-c-r-1))
		}
	}
}

// eligible reports whether (r,c) is a flip-eligible interior site in h: all
// four neighbors share a common value.
func eligible(h *core.HeightField, r, c int) bool {
	up := h.At(r-1, c)
	right := h.At(r, c+1)
	down := h.At(r+1, c)
	left := h.At(r, c-1)
	return up == right && right == down && down == left
}

// Step advances both coupled copies through the two-phase checkerboard
// schedule of spec.md §4.1. Phase 0 then phase 1, each visiting interior
// sites in row-major order; a bit is drawn for every interior site of the
// current phase regardless of eligibility in either copy, so that min and
// max consume identical bits at identical points in the schedule.
func (v *Ice) Step(min, max *core.HeightField, bits *rng.BitStream) {
	R, C := v.size, v.size
	for phase := 0; phase < 2; phase++ {
		for r := 1; r <= R-2; r++ {
			for c := 1; c <= C-2; c++ {
				if (r+c)%2 != phase {
					continue
				}
				b := bits.Next()
				if eligible(min, r, c) {
					min.Set(r, c, min.At(r-1, c)+b)
				}
				if eligible(max, r, c) {
					max.Set(r, c, max.At(r-1, c)+b)
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func init() {
	core.Register("ice", func(cfg map[string]string) (core.Variant, error) {
		order, err := intParam(cfg, "order", 0)
		if err != nil {
			return nil, err
		}
		if order <= 0 {
			return nil, fmt.Errorf("ice: order must be positive, got %d", order)
		}
		return NewIce(order), nil
	})
}
