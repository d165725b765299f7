package core

import "errors"

// Sentinel errors for the engine's configuration surface. Evaluation
// (Value) is contract-enforced rather than error-returning: an unbound
// child slot or an under-populated control-point table is a programming
// error, not a recoverable failure (see ErrMissingSource for the one place
// that contract is surfaced as an error instead of a panic, for explicit
// child lookups outside the hot Value path).
var (
	// ErrInvalidParam is returned by a setter given an out-of-range or
	// otherwise malformed argument (octave count, inverted bounds, a
	// duplicate control-point input, an out-of-range child slot, ...).
	ErrInvalidParam = errors.New("noisegraph: invalid parameter")

	// ErrMissingSource is returned when a required child slot has not been
	// bound.
	ErrMissingSource = errors.New("noisegraph: missing source module")

	// ErrOutOfMemory names the allocation-failure kind of the taxonomy. No
	// code in this module returns it: control-point insertion appends to a
	// slice, and Go's allocator panics rather than returning an error on
	// exhaustion.
	ErrOutOfMemory = errors.New("noisegraph: out of memory")

	// ErrUnknown is reserved for failures that don't fit the other three
	// kinds. The core never returns it itself.
	ErrUnknown = errors.New("noisegraph: unknown error")
)
