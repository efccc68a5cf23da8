package variant

import (
	"fmt"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// BoxedPP implements the boxed-plane-partition lattice in an a x b x c box:
// an R=a by C=b grid of heights in {0,...,c}.
type BoxedPP struct {
	a, b, c int
}

// NewBoxedPP returns a BoxedPP variant for the given box dimensions. a, b, c
// must be positive; callers validate this before construction.
func NewBoxedPP(a, b, c int) *BoxedPP {
	return &BoxedPP{a: a, b: b, c: c}
}

// Name identifies the variant.
func (v *BoxedPP) Name() string { return fmt.Sprintf("bpp(%d,%d,%d)", v.a, v.b, v.c) }

// Rows returns R = a.
func (v *BoxedPP) Rows() int { return v.a }

// Cols returns C = b.
func (v *BoxedPP) Cols() int { return v.b }

// InitMin fills h with all zeros, the empty plane partition.
func (v *BoxedPP) InitMin(h *core.HeightField) {
	for i := range h.Data() {
		h.Data()[i] = 0
	}
}

// InitMax fills h with every entry at the box ceiling c.
func (v *BoxedPP) InitMax(h *core.HeightField) {
	data := h.Data()
	for i := range data {
		data[i] = v.c
	}
}

// top returns the virtual-boundary-aware value above (r,c): the box ceiling
// c when r is the top row, else the value one row up.
func (v *BoxedPP) top(h *core.HeightField, r, c int) int {
	if r == 0 {
		return v.c
	}
	return h.At(r-1, c)
}

// left returns the virtual-boundary-aware value to the left of (r,c).
func (v *BoxedPP) left(h *core.HeightField, r, c int) int {
	if c == 0 {
		return v.c
	}
	return h.At(r, c-1)
}

// bottom returns the virtual-boundary-aware value below (r,c): 0 past the
// last row.
func (v *BoxedPP) bottom(h *core.HeightField, r, c int) int {
	if r == v.a-1 {
		return 0
	}
	return h.At(r+1, c)
}

// right returns the virtual-boundary-aware value to the right of (r,c): 0
// past the last column.
func (v *BoxedPP) right(h *core.HeightField, r, c int) int {
	if c == v.b-1 {
		return 0
	}
	return h.At(r, c+1)
}

func (v *BoxedPP) flipUpEligible(h *core.HeightField, r, c int) bool {
	val := h.At(r, c)
	return v.top(h, r, c) >= val+1 && v.left(h, r, c) >= val+1
}

func (v *BoxedPP) flipDownEligible(h *core.HeightField, r, c int) bool {
	val := h.At(r, c)
	return val-1 >= v.right(h, r, c) && val-1 >= v.bottom(h, r, c)
}

// Step advances both coupled copies through a single row-major pass over
// every site. spec.md §9 records that the reference implementation bounds
// the inner loop by the row dimension a rather than the column dimension b
// ("almost certainly a bug"); this port follows the spec's explicit
// recommendation and uses col < b (see DESIGN.md).
func (v *BoxedPP) Step(min, max *core.HeightField, bits *rng.BitStream) {
	for r := 0; r < v.a; r++ {
		for c := 0; c < v.b; c++ {
			b := bits.Next()
			if b == 1 {
				if v.flipUpEligible(min, r, c) {
					min.Set(r, c, min.At(r, c)+1)
				}
				if v.flipUpEligible(max, r, c) {
					max.Set(r, c, max.At(r, c)+1)
				}
				continue
			}
			if v.flipDownEligible(min, r, c) {
				min.Set(r, c, min.At(r, c)-1)
			}
			if v.flipDownEligible(max, r, c) {
				max.Set(r, c, max.At(r, c)-1)
			}
		}
	}
}

func init() {
	core.Register("bpp", func(cfg map[string]string) (core.Variant, error) {
		a, err := intParam(cfg, "a", 0)
		if err != nil {
			return nil, err
		}
		b, err := intParam(cfg, "b", 0)
		if err != nil {
			return nil, err
		}
		c, err := intParam(cfg, "c", 0)
		if err != nil {
			return nil, err
		}
		if a <= 0 || b <= 0 || c <= 0 {
			return nil, fmt.Errorf("bpp: a, b, c must all be positive, got a=%d b=%d c=%d", a, b, c)
		}
		return NewBoxedPP(a, b, c), nil
	})
}
