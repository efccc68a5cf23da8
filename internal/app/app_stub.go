//go:build !ebiten

package app

import (
	"fmt"

	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// Show reports that the GUI viewer requires the ebiten build tag, matching
// the teacher's cmd/ca/main_stub.go message.
func Show(v core.Variant, ledger *rng.SeedLedger, window, scale, tps, lo, hi int) error {
	return fmt.Errorf("the -gui viewer requires building with `-tags ebiten` (re-run with: go run -tags ebiten)")
}
