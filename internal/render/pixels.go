//go:build ebiten

// Package render paints a height field into an ebiten image for the
// optional -gui viewer (SPEC_FULL.md §3). Adapted from the teacher's
// GridPainter, which painted binary cell state; this version maps an
// integer height into a color via a gradient instead of on/off.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a height field into a single RGBA image and draws it
// scaled onto a destination image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit colors each height in [lo, hi] along a blue-to-white gradient,
// uploads the result, and draws it scaled onto dst. Cells where min != max
// (still undetermined during the viewer's forward pass) are drawn in the
// undetermined color regardless of height.
func (gp *GridPainter) Blit(dst *ebiten.Image, heights []int, undetermined []bool, lo, hi int, scale int) {
	if len(heights) != gp.w*gp.h {
		return
	}
	fillGradientRGBA(gp.buf, heights, undetermined, lo, hi)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

var undeterminedColor = color.RGBA{R: 220, G: 60, B: 40, A: 255}

// fillGradientRGBA converts height values into RGBA pixels in buf, via a
// linear blue-to-white gradient over [lo, hi].
func fillGradientRGBA(buf []byte, heights []int, undetermined []bool, lo, hi int) {
	span := float64(hi - lo)
	if span <= 0 {
		span = 1
	}
	for i, v := range heights {
		base := i * 4
		if undetermined != nil && undetermined[i] {
			buf[base+0] = undeterminedColor.R
			buf[base+1] = undeterminedColor.G
			buf[base+2] = undeterminedColor.B
			buf[base+3] = undeterminedColor.A
			continue
		}
		t := (float64(v) - float64(lo)) / span
		t = math.Max(0, math.Min(1, t))
		r := uint8(30 + t*(255-30))
		g := uint8(40 + t*(255-40))
		b := uint8(120 + t*(255-120))
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 255
	}
}
