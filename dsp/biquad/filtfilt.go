package biquad

import "math"

// FiltFilt applies the cascade described by coeffs to signal forward and
// then backward, yielding zero net phase distortion. The magnitude response
// is applied twice, so the effective attenuation is |H(f)|^2.
//
// Edge transients are suppressed by extending the signal at both ends with an
// odd reflection of length 3x the cascade order and by initializing each
// section's delay line to its constant-input steady state, following
// Gustafsson, "Determining the initial states in forward-backward filtering",
// IEEE Trans. Signal Processing 44(4), 1996. The extension is discarded
// before returning.
//
// The input slice is never modified; the result is a newly allocated slice of
// the same length. Signals shorter than the edge extension are filtered with
// a reduced extension; signals of length 0 or 1 are returned as a plain copy.
func FiltFilt(coeffs []Coefficients, signal []float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	if len(coeffs) == 0 || len(signal) < 2 {
		return out
	}

	padlen := 6 * len(coeffs)
	if padlen >= len(signal) {
		padlen = len(signal) - 1
	}

	ext := extendOdd(signal, padlen)

	forwardBackward(coeffs, ext)

	copy(out, ext[padlen:padlen+len(signal)])

	return out
}

// forwardBackward runs the cascade over buf in both directions, in-place.
func forwardBackward(coeffs []Coefficients, buf []float64) {
	applyCascade(coeffs, buf)
	reverse(buf)
	applyCascade(coeffs, buf)
	reverse(buf)
}

// applyCascade filters buf through each section in series, initializing every
// section's delay line to the steady state for a constant input equal to the
// first sample it will see.
func applyCascade(coeffs []Coefficients, buf []float64) {
	if len(buf) == 0 {
		return
	}

	for i := range coeffs {
		var s Section
		s.Coefficients = coeffs[i]

		si0, si1 := steadyState(coeffs[i])
		s.SetState([2]float64{si0 * buf[0], si1 * buf[0]})
		s.ProcessBlock(buf)
	}
}

// steadyState returns the DF2T delay-line values per unit of constant input.
// With a constant input x the output settles at DCGain*x; the corresponding
// internal state is d0 = si0*x, d1 = si1*x.
func steadyState(c Coefficients) (si0, si1 float64) {
	den := 1 + c.A1 + c.A2
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, 0
	}

	kdc := (c.B0 + c.B1 + c.B2) / den
	si1 = c.B2 - kdc*c.A2
	si0 = si1 + c.B1 - kdc*c.A1

	return si0, si1
}

// extendOdd returns signal with padlen odd-reflected samples prepended and
// appended: the extension mirrors the signal around its end points, which
// keeps both value and slope continuous at the seams.
func extendOdd(signal []float64, padlen int) []float64 {
	n := len(signal)
	ext := make([]float64, n+2*padlen)

	for i := 0; i < padlen; i++ {
		ext[i] = 2*signal[0] - signal[padlen-i]
	}

	copy(ext[padlen:], signal)

	for i := 0; i < padlen; i++ {
		ext[padlen+n+i] = 2*signal[n-1] - signal[n-2-i]
	}

	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
