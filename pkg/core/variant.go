package core

import "latticecftp/pkg/rng"

// Variant is the capability set the CFTP driver needs from a lattice model:
// its grid dimensions and the three operations spec.md §3 assigns it. This
// plays the role the teacher's Sim interface plays for cellular automata —
// the driver is polymorphic over Variant the same way the teacher's app loop
// is polymorphic over Sim, with no inheritance involved.
type Variant interface {
	// Name identifies the variant for progress reports and metrics labels.
	Name() string
	// Rows and Cols return the grid dimensions R, C.
	Rows() int
	Cols() int
	// InitMin and InitMax fill a freshly sized field with the extremal
	// height functions consistent with the variant's boundary constraints.
	InitMin(h *HeightField)
	InitMax(h *HeightField)
	// Step advances both coupled copies by one time step, consuming random
	// bits from bits and applying the same bit to both min and max at every
	// site that is flip-eligible in that copy. Site-visit order is part of
	// the contract: it determines which bit is consumed at which site.
	Step(min, max *HeightField, bits *rng.BitStream)
}
