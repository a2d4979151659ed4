package preprocess

import (
	"fmt"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/session"
)

// Rereference removes a common-mode signal from every channel and returns
// the result as a new matrix; the caller's matrix is never mutated.
//
// With no refChannels the stage computes the common average reference: the
// per-sample mean across all channels is subtracted from every channel.
// With refChannels given, only the named channels contribute to the mean,
// which is then subtracted from every channel including the reference
// channels themselves.
//
// If any requested channel name is absent from the session's channel index,
// Rereference returns the untouched copy together with an error wrapping
// ErrUnknownChannel. Referencing failure deliberately degrades to "no
// referencing applied" rather than aborting the pipeline; callers that care
// must check the error.
func Rereference(data [][]float64, meta session.Metadata, refChannels []string) ([][]float64, error) {
	out := Clone(data)
	if len(out) == 0 || len(out[0]) == 0 {
		return out, nil
	}

	rows := make([]int, 0, len(out))
	if len(refChannels) == 0 {
		for i := range out {
			rows = append(rows, i)
		}
	} else {
		for _, name := range refChannels {
			i, ok := meta.Index(name)
			if !ok {
				return out, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
			}
			if i < 0 || i >= len(out) {
				return out, fmt.Errorf("%w: %q resolves to row %d of %d", ErrUnknownChannel, name, i, len(out))
			}

			rows = append(rows, i)
		}
	}

	samples := len(out[0])
	mean := make([]float64, samples)
	for _, r := range rows {
		for j, v := range out[r] {
			mean[j] += v
		}
	}

	scale := 1 / float64(len(rows))
	for j := range mean {
		mean[j] *= scale
	}

	for i := range out {
		for j := range out[i] {
			out[i][j] -= mean[j]
		}
	}

	return out, nil
}
