package cliutil

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"latticecftp/pkg/cftp"
)

// ParseFlags parses args with fs, surfacing a parse failure as one of
// spec.md §7's typed kinds (MissingArgument for "-flag" given without a
// value, UnknownFlag for anything else — an unrecognized flag or a bad
// value) instead of the stdlib flag package's generic text. It suppresses
// fs's own error/usage output during the parse and re-emits a single typed
// line plus the usage message to errOut, so callers see exactly one error.
func ParseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) error {
	fs.SetOutput(io.Discard)
	err := fs.Parse(args)
	fs.SetOutput(errOut)
	if err == nil {
		return nil
	}

	kind := KindUnknownFlag
	if strings.Contains(err.Error(), "flag needs an argument") {
		kind = KindMissingArgument
	}
	cerr := New(kind, "%s", err)
	fmt.Fprintln(errOut, cerr)
	fs.Usage()
	return cerr
}

// ResolveInitial validates and, if necessary, rounds up the requested
// initial window, following spec.md §7: InvalidInitial is fatal outside
// [1, 2^29]; a non-power-of-two is recovered locally with a warning
// (InitialRoundedUp) written to warnOut.
func ResolveInitial(requested int, warnOut io.Writer) (int, error) {
	if requested < 1 || requested > cftp.MaxInitial {
		return 0, New(KindInvalidInitial, "initial must be in [1, %d], got %d", cftp.MaxInitial, requested)
	}
	rounded := cftp.NextPowerOfTwo(requested)
	if rounded != requested {
		fmt.Fprintf(warnOut, "warning: initial %d is not a power of two, rounding up to %d\n", requested, rounded)
	}
	return rounded, nil
}

// ValidatePositive returns an InvalidDimensions error if any of the named
// values is non-positive (spec.md §7).
func ValidatePositive(values map[string]int) error {
	for name, v := range values {
		if v <= 0 {
			return New(KindInvalidDimensions, "%s must be positive, got %d", name, v)
		}
	}
	return nil
}
