package preprocess

import "errors"

// Errors returned by preprocessing stages.
var (
	// ErrEmptySignal reports a zero-size signal matrix; there is nothing to
	// process and the calling pipeline invocation cannot proceed.
	ErrEmptySignal = errors.New("preprocess: empty signal matrix")

	// ErrUnknownChannel reports a reference channel name that is absent from
	// the session's channel index. Rereference returns it together with the
	// untouched defensive copy, so callers can continue with an unreferenced
	// signal instead of aborting.
	ErrUnknownChannel = errors.New("preprocess: unknown reference channel")

	// ErrInvalidFilterParameter reports physically invalid filter design
	// parameters (frequency at or above Nyquist, non-positive bandwidth,
	// inverted band edges).
	ErrInvalidFilterParameter = errors.New("preprocess: invalid filter parameter")
)
