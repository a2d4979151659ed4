// Package preprocess implements the standard EEG preprocessing chain used by
// the CTET analysis pipeline (O'Connell et al., 2009): amplifier-unit
// scaling, re-referencing (common average or specific electrodes), power-line
// notch filtering and band-limiting.
//
// All stages are pure functions over a channels-by-samples float64 matrix.
// Filtering uses cascades of second-order sections applied zero-phase
// (forward and backward), so event latencies in the recording are preserved
// for downstream timing-sensitive analysis.
package preprocess
