// Package biquad provides second-order IIR filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters. [FiltFilt] applies a cascade
// forward and backward for zero-phase filtering of finite signals.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, notch, etc.) lives in dsp/design.
package biquad
