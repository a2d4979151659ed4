package preprocess

import (
	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/session"
)

// VoltageScaling converts the OBCI amplifier's raw ADC units to microvolts.
// Scaling is multiplicative only; the amplifier's calibration model has no
// additive offset term.
const VoltageScaling = 0.0715

// Scale converts a raw signal matrix to microvolts in place and returns it.
// This is the one stage documented as in-place: the raw matrix is owned by
// the extraction step and nothing else reads it afterwards.
//
// Returns ErrEmptySignal when the matrix holds no samples.
func Scale(data [][]float64) ([][]float64, error) {
	if elementCount(data) == 0 {
		return nil, ErrEmptySignal
	}

	for _, row := range data {
		for j := range row {
			row[j] *= VoltageScaling
		}
	}

	return data, nil
}

// ExtractSignal reads the raw samples from a session reader and scales them
// to microvolts. Returns ErrEmptySignal when the reader yields no data.
func ExtractSignal(r session.Reader) ([][]float64, error) {
	samples, err := r.Samples()
	if err != nil {
		return nil, err
	}

	return Scale(samples)
}
