// Package session models a loaded bioelectric recording session: the
// immutable [Metadata] header, the [Reader] capability that supplies raw
// header values and samples, and an EDF/EDF+ backed Reader implementation.
//
// The package does not touch signal content beyond reading it; scaling,
// referencing and filtering live in eeg/preprocess.
package session
