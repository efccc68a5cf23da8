// Package cftp implements the Propp-Wilson coupling-from-the-past driver:
// the outer loop that doubles the look-back window until the coupled
// min/max copies collide at time 0 (spec.md §4.5). This is the hard core the
// whole system exists to host.
package cftp

import (
	"fmt"
	"math/bits"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// MaxInitial is the largest accepted initial window, per spec.md §7
// InvalidInitial (2^29).
const MaxInitial = 1 << 29

// Report receives progress lines during CFTP (spec.md §6); nil disables
// reporting. It is the narrow interface the out-of-scope CLI progress
// logger implements — the driver never formats text itself.
type Report interface {
	Epoch(window, stepsFromZero, volumeDiff int)
	Restart(window, finalVolumeDiff int)
}

// Stats carries the driver's diagnostic counters (spec.md §4.5 Outputs).
type Stats struct {
	Restarts    int
	FinalWindow int
	TotalSteps  int
}

// NonTerminatingError is returned when an optional window cap is exceeded
// (spec.md §7 NonTerminating, marked optional).
type NonTerminatingError struct {
	Window int
	Max    int
}

func (e *NonTerminatingError) Error() string {
	return fmt.Sprintf("cftp: window %d would exceed maximum %d without coalescing", e.Window, e.Max)
}

// Ilog2 is the one-based bit length of x-1, exactly as spec.md §4.6 defines
// it: Ilog2(0)=0, Ilog2(1)=0, Ilog2(2)=1, Ilog2(3)=2, Ilog2(8)=3, Ilog2(9)=4,
// Ilog2(16)=4, Ilog2(17)=5. The seed-table index depends on matching this
// precisely, so it gets its own named function rather than being inlined.
func Ilog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x - 1))
}

// NextPowerOfTwo rounds n up to the next power of two, used when an initial
// window isn't already one (spec.md §7 InitialRoundedUp).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Sample runs CFTP for the given variant, returning the converged field and
// diagnostic counters. initial must already be a positive power of two in
// [1, MaxInitial] and ledger must supply at least enough epochs to cover
// maxWindow — callers validate both before calling Sample (see
// internal/cliutil for the spec.md §7 error kinds this guards against).
// maxWindow <= 0 means unbounded.
func Sample(v core.Variant, ledger *rng.SeedLedger, initial, maxWindow int, report Report) (*core.HeightField, Stats, error) {
	var stats Stats
	window := initial

	for {
		run := NewRun(v, ledger, window, maxWindow, report)
		for !run.Done() {
			if err := run.Step(); err != nil {
				return nil, stats, err
			}
			stats.TotalSteps++
		}

		stats.Restarts++
		diff := volumeDiff(run.Min(), run.Max())
		if report != nil {
			report.Restart(window, diff)
		}
		if diff == 0 {
			stats.FinalWindow = window
			return run.Max(), stats, nil
		}
		window *= 2
	}
}

// volumeDiff is the driver's zero-test: sum(max - min). The sign is
// irrelevant to correctness (spec.md §9 records that reference
// implementations differ on this), so long as it is used consistently.
func volumeDiff(min, max *core.HeightField) int {
	return max.Volume() - min.Volume()
}
