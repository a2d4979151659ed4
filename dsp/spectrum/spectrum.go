package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptySignal       = errors.New("spectrum: signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// PowerSpectrum computes the one-sided power spectrum of signal.
//
// The signal is zero-padded to the next power of two before the FFT. The
// returned slices hold the bin center frequencies in Hz and the squared
// magnitudes |X[k]|^2 for bins 0..N/2 inclusive.
func PowerSpectrum(signal []float64, sampleRate float64) (freqs, power []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, ErrEmptySignal
	}

	if sampleRate <= 0 {
		return nil, nil, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, padded); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	power = make([]float64, binCount)
	vecmath.Power(power, re, im)

	freqs = make([]float64, binCount)
	binWidth := sampleRate / float64(fftSize)
	for i := 0; i < binCount; i++ {
		freqs[i] = float64(i) * binWidth
	}

	return freqs, power, nil
}

// DominantFrequency returns the bin center frequency with the highest power,
// excluding the DC bin.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	freqs, power, err := PowerSpectrum(signal, sampleRate)
	if err != nil {
		return 0, err
	}

	if len(power) < 2 {
		return 0, nil
	}

	best := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[best] {
			best = i
		}
	}

	return freqs[best], nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
