// Package cliutil holds the plumbing shared by the square-ice and bpp
// command-line collaborators: typed error kinds, flag parsing helpers, ASM
// file output, and pretty-printers. None of this is read by the CFTP core;
// it only consumes the data the core exposes (spec.md §1 "out of scope").
package cliutil

import "fmt"

// Kind enumerates the error kinds of spec.md §7, surfaced distinctly to the
// caller rather than as a single generic error type.
type Kind string

const (
	KindInvalidDimensions Kind = "InvalidDimensions"
	KindInvalidInitial    Kind = "InvalidInitial"
	KindInitialRoundedUp  Kind = "InitialRoundedUp"
	KindMissingArgument   Kind = "MissingArgument"
	KindUnknownFlag       Kind = "UnknownFlag"
	KindIOFailure         Kind = "IOFailure"
	KindNonTerminating    Kind = "NonTerminating"
)

// Error is a typed CLI error carrying its spec.md §7 kind. Fatal kinds
// should cause the caller to exit(1); KindInitialRoundedUp is the one
// recoverable kind and is reported as a warning, not returned as an error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// New constructs a typed Error.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
