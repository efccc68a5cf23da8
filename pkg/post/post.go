// Package post holds the pure post-processing surface over a converged
// height field: the ASM and corner-sum derivations of spec.md §6. These are
// contract, not algorithm — arithmetic transforms with no dependency on how
// the field was produced (spec.md §8 property 7, idempotence).
package post

import (
	"fmt"

	"latticecftp/pkg/core"
)

// CornerSum computes the corner-sum matrix of h: entry (r,c) is
// (r + c + 1 - H[r][c]) / 2. It divides exactly for every ice height field,
// where H[r][c] always has the parity of r + c + 1 (H[0][0] = 1); a field
// that breaks this parity returns an error.
func CornerSum(h *core.HeightField) ([][]int, error) {
	out := make([][]int, h.R)
	for r := 0; r < h.R; r++ {
		out[r] = make([]int, h.C)
		for c := 0; c < h.C; c++ {
			num := r + c + 1 - h.At(r, c)
			if num%2 != 0 {
				return nil, fmt.Errorf("post: corner-sum at (%d,%d) is not exact: %d/2", r, c, num)
			}
			out[r][c] = num / 2
		}
	}
	return out, nil
}

// ASM computes the alternating-sign-matrix derived from h, for r,c >= 1:
// (H[r-1][c] + H[r][c-1] - H[r][c] - H[r-1][c-1]) / 2. The result has
// dimensions (R-1) x (C-1).
func ASM(h *core.HeightField) ([][]int, error) {
	if h.R < 2 || h.C < 2 {
		return nil, fmt.Errorf("post: height field too small for ASM derivation: %dx%d", h.R, h.C)
	}
	rows, cols := h.R-1, h.C-1
	out := make([][]int, rows)
	for r := 1; r <= rows; r++ {
		out[r-1] = make([]int, cols)
		for c := 1; c <= cols; c++ {
			num := h.At(r-1, c) + h.At(r, c-1) - h.At(r, c) - h.At(r-1, c-1)
			if num%2 != 0 {
				return nil, fmt.Errorf("post: ASM entry at (%d,%d) is not exact: %d/2", r, c, num)
			}
			v := num / 2
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("post: ASM entry at (%d,%d) out of range {-1,0,1}: %d", r, c, v)
			}
			out[r-1][c-1] = v
		}
	}
	return out, nil
}

// FromCornerSum recovers the height field from a corner-sum matrix:
// H[r][c] = r + c + 1 - 2*csum[r][c], the inverse of CornerSum. Used by the CSV round-trip property
// (spec.md §8 scenario S6) and available to callers that only persisted the
// corner-sum form.
func FromCornerSum(csum [][]int) *core.HeightField {
	r := len(csum)
	c := 0
	if r > 0 {
		c = len(csum[0])
	}
	h := core.NewHeightField(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			h.Set(i, j, i+j+1-2*csum[i][j])
		}
	}
	return h
}
