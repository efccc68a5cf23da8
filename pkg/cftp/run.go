package cftp

import (
	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// Run drives one forward pass of a coupled pair from time -window to time 0,
// reseeding at each epoch boundary exactly as Sample's inner loop does. It
// is exposed so the optional GUI viewer can animate the same forward pass
// Sample already performed, by re-running it against the same ledger and
// window — CFTP is deterministic given (variant, ledger, window), so this
// reproduces the identical trajectory without the viewer needing to reach
// into Sample's internals.
type Run struct {
	v      core.Variant
	ledger *rng.SeedLedger
	bits   *rng.BitStream
	min    *core.HeightField
	max    *core.HeightField

	window     int
	stepsLeft  int
	epoch      int
	maxWindow  int
	lastReport Report
}

// NewRun starts a fresh forward pass of the given window length.
func NewRun(v core.Variant, ledger *rng.SeedLedger, window, maxWindow int, report Report) *Run {
	min := core.NewHeightField(v.Rows(), v.Cols())
	max := core.NewHeightField(v.Rows(), v.Cols())
	v.InitMin(min)
	v.InitMax(max)
	return &Run{
		v:          v,
		ledger:     ledger,
		bits:       rng.NewBitStream(rng.NewMT19937(0)),
		min:        min,
		max:        max,
		window:     window,
		stepsLeft:  window,
		epoch:      -2,
		maxWindow:  maxWindow,
		lastReport: report,
	}
}

// Min and Max expose the coupled copies' current state, for rendering or
// inspection between steps.
func (r *Run) Min() *core.HeightField { return r.min }
func (r *Run) Max() *core.HeightField { return r.max }

// Done reports whether time 0 has been reached.
func (r *Run) Done() bool { return r.stepsLeft <= 0 }

// Coalesced reports whether min and max agree (the driver's zero-test).
func (r *Run) Coalesced() bool { return volumeDiff(r.min, r.max) == 0 }

// Step advances the pair by one time step, reseeding the bit stream first
// if this step crosses into a new epoch. Returns an error if maxWindow is
// set and exceeded.
func (r *Run) Step() error {
	if r.Done() {
		return nil
	}
	e := Ilog2(r.stepsLeft)
	if e != r.epoch {
		if r.maxWindow > 0 && r.window > r.maxWindow {
			return &NonTerminatingError{Window: r.window, Max: r.maxWindow}
		}
		r.bits.Reseed(r.ledger.Seed(e))
		r.epoch = e
		if r.lastReport != nil {
			r.lastReport.Epoch(r.window, r.stepsLeft, volumeDiff(r.min, r.max))
		}
	}
	r.v.Step(r.min, r.max, r.bits)
	r.stepsLeft--
	return nil
}
