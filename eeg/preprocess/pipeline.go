package preprocess

import (
	"errors"
	"fmt"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/session"
)

// Pipeline sequences the preprocessing stages over a loaded signal:
// scale, rereference, notch, bandpass, in that fixed order.
//
// A Pipeline holds no mutable state; the same value can run repeatedly and
// concurrently on independent inputs.
type Pipeline struct {
	NotchFreq float64 // notch center frequency in Hz
	NotchQ    float64 // notch quality factor
	LowCut    float64 // bandpass lower edge in Hz
	HighCut   float64 // bandpass upper edge in Hz
	Order     int     // Butterworth order per band edge
}

// DefaultPipeline returns the CTET preprocessing parameters: 50 Hz notch at
// Q=30 and a 1-40 Hz Butterworth bandpass of order 4.
func DefaultPipeline() Pipeline {
	return Pipeline{
		NotchFreq: DefaultNotchFreq,
		NotchQ:    DefaultNotchQ,
		LowCut:    1,
		HighCut:   40,
		Order:     4,
	}
}

// Validate checks the pipeline parameters against a sampling rate without
// running any stage.
func (p Pipeline) Validate(fs float64) error {
	if fs <= 0 {
		return fmt.Errorf("%w: sampling rate %g must be positive", ErrInvalidFilterParameter, fs)
	}

	if p.NotchFreq <= 0 || p.NotchFreq >= fs/2 {
		return fmt.Errorf("%w: notch frequency %g Hz outside (0, %g)", ErrInvalidFilterParameter, p.NotchFreq, fs/2)
	}

	if p.NotchQ <= 0 {
		return fmt.Errorf("%w: quality factor %g must be positive", ErrInvalidFilterParameter, p.NotchQ)
	}

	if p.LowCut <= 0 || p.HighCut <= 0 || p.LowCut >= p.HighCut {
		return fmt.Errorf("%w: band edges (%g, %g) Hz", ErrInvalidFilterParameter, p.LowCut, p.HighCut)
	}

	if p.HighCut >= fs/2 {
		return fmt.Errorf("%w: highcut %g Hz at or above Nyquist %g Hz", ErrInvalidFilterParameter, p.HighCut, fs/2)
	}

	if p.Order <= 0 {
		return fmt.Errorf("%w: filter order %d must be positive", ErrInvalidFilterParameter, p.Order)
	}

	return nil
}

// Run executes scale -> rereference -> notch -> bandpass over the raw matrix
// and returns the preprocessed signal. The raw matrix is scaled in place
// (the only in-place stage); all later stages produce new matrices.
//
// Referencing follows the degraded-failure policy of Rereference: when a
// reference channel name is unknown, the chain continues on the unreferenced
// signal and Run returns the finished matrix together with an error wrapping
// ErrUnknownChannel. Every other error aborts the run with a nil matrix.
func (p Pipeline) Run(raw [][]float64, meta session.Metadata, refChannels []string) ([][]float64, error) {
	scaled, err := Scale(raw)
	if err != nil {
		return nil, err
	}

	referenced, refErr := Rereference(scaled, meta, refChannels)
	if refErr != nil && !errors.Is(refErr, ErrUnknownChannel) {
		return nil, refErr
	}

	notched, err := Notch(referenced, meta.SamplingRate(), p.NotchFreq, p.NotchQ)
	if err != nil {
		return nil, err
	}

	banded, err := Bandpass(notched, meta.SamplingRate(), p.LowCut, p.HighCut, p.Order)
	if err != nil {
		return nil, err
	}

	return banded, refErr
}
