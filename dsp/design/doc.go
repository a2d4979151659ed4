// Package design computes biquad coefficients for the filter shapes used in
// bioelectric signal preprocessing.
//
// Single-section shapes (notch, lowpass, highpass) follow the RBJ Audio EQ
// Cookbook formulas. Higher-order Butterworth filters are returned as
// cascades of second-order sections, which remain numerically well behaved at
// the low corner frequencies typical of EEG work where direct transfer
// function forms become ill-conditioned.
//
// All design functions return zero-valued coefficients (or a nil cascade) for
// parameters that cannot be realized, such as a corner frequency at or above
// Nyquist. Callers that need typed errors validate before designing.
package design
