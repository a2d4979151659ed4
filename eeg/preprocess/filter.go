package preprocess

import (
	"fmt"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/dsp/biquad"
	"github.com/Madeline42/EEG-Signal-Analysis-Project/dsp/design"
)

// Default notch parameters for European power-line interference.
const (
	DefaultNotchFreq = 50.0
	DefaultNotchQ    = 30.0
)

// Notch removes a narrow frequency band centered at freq from every channel
// and returns the result as a new matrix. The filter is a second-order IIR
// notch applied zero-phase, so event timing is preserved.
//
// A matrix with more rows than columns is transposed before filtering (see
// orientChannelsFirst); the output is always channels-by-samples.
//
// Returns ErrInvalidFilterParameter when fs or q is non-positive or freq is
// outside (0, fs/2).
func Notch(data [][]float64, fs, freq, q float64) ([][]float64, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: sampling rate %g must be positive", ErrInvalidFilterParameter, fs)
	}

	if q <= 0 {
		return nil, fmt.Errorf("%w: quality factor %g must be positive", ErrInvalidFilterParameter, q)
	}

	if freq <= 0 || freq >= fs/2 {
		return nil, fmt.Errorf("%w: notch frequency %g Hz outside (0, %g)", ErrInvalidFilterParameter, freq, fs/2)
	}

	coeffs := []biquad.Coefficients{design.Notch(freq, q, fs)}

	return filterRows(data, coeffs), nil
}

// Bandpass restricts every channel to the band [lowcut, highcut] and returns
// the result as a new matrix. The filter is a Butterworth cascade of
// second-order sections of the given order per band edge, applied zero-phase.
//
// The same shape correction as Notch applies; the output is always
// channels-by-samples.
//
// Returns ErrInvalidFilterParameter when either bound is non-positive,
// lowcut >= highcut, highcut is at or above Nyquist (fs/2), or order is not
// positive.
func Bandpass(data [][]float64, fs, lowcut, highcut float64, order int) ([][]float64, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: sampling rate %g must be positive", ErrInvalidFilterParameter, fs)
	}

	if order <= 0 {
		return nil, fmt.Errorf("%w: filter order %d must be positive", ErrInvalidFilterParameter, order)
	}

	if lowcut <= 0 || highcut <= 0 {
		return nil, fmt.Errorf("%w: band edges (%g, %g) Hz must be positive", ErrInvalidFilterParameter, lowcut, highcut)
	}

	if lowcut >= highcut {
		return nil, fmt.Errorf("%w: lowcut %g Hz must be below highcut %g Hz", ErrInvalidFilterParameter, lowcut, highcut)
	}

	if highcut >= fs/2 {
		return nil, fmt.Errorf("%w: highcut %g Hz at or above Nyquist %g Hz", ErrInvalidFilterParameter, highcut, fs/2)
	}

	coeffs := design.ButterworthBandpass(lowcut, highcut, order, fs)
	if coeffs == nil {
		return nil, fmt.Errorf("%w: bandpass (%g, %g) Hz at fs %g Hz", ErrInvalidFilterParameter, lowcut, highcut, fs)
	}

	return filterRows(data, coeffs), nil
}

// filterRows applies the cascade zero-phase to each channel row
// independently, after shape correction.
func filterRows(data [][]float64, coeffs []biquad.Coefficients) [][]float64 {
	d := orientChannelsFirst(data)

	out := make([][]float64, len(d))
	for i, row := range d {
		out[i] = biquad.FiltFilt(coeffs, row)
	}

	return out
}
