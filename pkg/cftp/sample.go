package cftp

import (
	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
	"latticecftp/pkg/variant"
)

// DefaultInitial is the default look-back window (spec.md §6).
const DefaultInitial = 128

// Options configures a Sample call. A zero Options value samples with the
// default initial window, a fresh entropy-seeded ledger, and no reporting.
type Options struct {
	Seed      *uint32
	Initial   int
	MaxWindow int
	Report    Report
}

func (o Options) resolve() (initial int, ledger *rng.SeedLedger) {
	initial = o.Initial
	if initial == 0 {
		initial = DefaultInitial
	}
	return initial, rng.NewSeedLedger(o.Seed)
}

// SampleIce draws an exact sample from the order-n square-ice model, the
// library entry point named sample_ice in spec.md §6.
func SampleIce(order int, opts Options) (*core.HeightField, Stats, error) {
	initial, ledger := opts.resolve()
	v := variant.NewIce(order)
	return Sample(v, ledger, initial, opts.MaxWindow, opts.Report)
}

// SampleBPP draws an exact sample from the a x b x c boxed plane partition
// model, the library entry point named sample_bpp in spec.md §6.
func SampleBPP(a, b, c int, opts Options) (*core.HeightField, Stats, error) {
	initial, ledger := opts.resolve()
	v := variant.NewBoxedPP(a, b, c)
	return Sample(v, ledger, initial, opts.MaxWindow, opts.Report)
}
