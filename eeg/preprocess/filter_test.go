package preprocess

import (
	"errors"
	"math"
	"testing"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/dsp/spectrum"
	"github.com/Madeline42/EEG-Signal-Analysis-Project/internal/testutil"
)

const testFs = 512.0

func TestNotch_AttenuatesTargetFrequency(t *testing.T) {
	in := [][]float64{testutil.DeterministicSine(50, testFs, 1, 2048)}

	out, err := Notch(in, testFs, 50, 30)
	if err != nil {
		t.Fatal(err)
	}

	before, err := spectrum.BandPower(in[0], 50, testFs)
	if err != nil {
		t.Fatal(err)
	}

	after, err := spectrum.BandPower(out[0], 50, testFs)
	if err != nil {
		t.Fatal(err)
	}

	// Zero-phase application squares the notch's magnitude response; at the
	// center frequency next to nothing survives.
	if after > 0.0025*before {
		t.Fatalf("power at 50 Hz: %v of %v, want < 0.25%%", after, before)
	}
}

func TestNotch_LeavesDistantFrequenciesAlone(t *testing.T) {
	in := [][]float64{testutil.DeterministicSine(10, testFs, 1, 2048)}

	out, err := Notch(in, testFs, 50, 30)
	if err != nil {
		t.Fatal(err)
	}

	ratio := testutil.RMS(out[0][256:1792]) / testutil.RMS(in[0][256:1792])
	if math.Abs(ratio-1) > 0.01 {
		t.Fatalf("10 Hz gain through 50 Hz notch: %v, want ~1", ratio)
	}
}

func TestNotch_InvalidParameters(t *testing.T) {
	in := [][]float64{{1, 2, 3, 4}}

	tests := []struct {
		name     string
		fs, f, q float64
	}{
		{"zero fs", 0, 50, 30},
		{"zero freq", testFs, 0, 30},
		{"freq at nyquist", testFs, 256, 30},
		{"freq above nyquist", testFs, 300, 30},
		{"zero q", testFs, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Notch(in, tc.fs, tc.f, tc.q); !errors.Is(err, ErrInvalidFilterParameter) {
				t.Fatalf("got %v, want ErrInvalidFilterParameter", err)
			}
		})
	}
}

func TestBandpass_RemovesOutOfBandContent(t *testing.T) {
	in := [][]float64{testutil.Add(
		testutil.DC(10, 2048),
		testutil.DeterministicSine(10, testFs, 1, 2048),
		testutil.DeterministicSine(80, testFs, 1, 2048),
	)}

	out, err := Bandpass(in, testFs, 1, 40, 4)
	if err != nil {
		t.Fatal(err)
	}

	inBand, err := spectrum.BandPower(out[0][256:1792], 10, testFs)
	if err != nil {
		t.Fatal(err)
	}

	outBand, err := spectrum.BandPower(out[0][256:1792], 80, testFs)
	if err != nil {
		t.Fatal(err)
	}

	if outBand > 0.001*inBand {
		t.Fatalf("80 Hz power %v not removed relative to 10 Hz power %v", outBand, inBand)
	}

	// DC offset is removed by the highpass side.
	mean := 0.0
	for _, v := range out[0][256:1792] {
		mean += v
	}
	mean /= 1536

	if math.Abs(mean) > 0.05 {
		t.Fatalf("residual DC offset: %v", mean)
	}
}

func TestBandpass_PreservesInBandEnergy(t *testing.T) {
	in := [][]float64{testutil.DeterministicSine(10, testFs, 1, 2048)}

	out, err := Bandpass(in, testFs, 1, 40, 4)
	if err != nil {
		t.Fatal(err)
	}

	ratio := testutil.RMS(out[0][256:1792]) / testutil.RMS(in[0][256:1792])
	if math.Abs(ratio-1) > 0.02 {
		t.Fatalf("10 Hz gain through 1-40 Hz bandpass: %v, want ~1", ratio)
	}
}

func TestBandpass_ZeroPhase(t *testing.T) {
	in := [][]float64{testutil.DeterministicSine(10, testFs, 1, 2048)}

	out, err := Bandpass(in, testFs, 1, 40, 4)
	if err != nil {
		t.Fatal(err)
	}

	// With ~unity gain and zero net phase the output tracks the input sample
	// for sample away from the edges.
	testutil.RequireSliceNearlyEqual(t, out[0][512:1536], in[0][512:1536], 0.02)
}

func TestBandpass_InvalidParameters(t *testing.T) {
	in := [][]float64{{1, 2, 3, 4}}

	tests := []struct {
		name      string
		fs        float64
		low, high float64
		order     int
	}{
		{"low above high", testFs, 40, 1, 4},
		{"low equals high", testFs, 10, 10, 4},
		{"zero low", testFs, 0, 40, 4},
		{"negative low", testFs, -1, 40, 4},
		{"zero high", testFs, 1, 0, 4},
		{"high at nyquist", testFs, 1, 256, 4},
		{"high above nyquist", testFs, 1, 300, 4},
		{"zero order", testFs, 1, 40, 0},
		{"zero fs", 0, 1, 40, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Bandpass(in, tc.fs, tc.low, tc.high, tc.order); !errors.Is(err, ErrInvalidFilterParameter) {
				t.Fatalf("got %v, want ErrInvalidFilterParameter", err)
			}
		})
	}
}

func TestFilters_TransposeSafetyNet(t *testing.T) {
	// Samples-by-channels input: 1024 rows of 4 columns.
	mis := make([][]float64, 1024)
	channels := make([][]float64, 4)
	for c := range channels {
		channels[c] = testutil.DeterministicSine(10, testFs, float64(c+1), 1024)
	}
	for j := range mis {
		mis[j] = make([]float64, 4)
		for c := range channels {
			mis[j][c] = channels[c][j]
		}
	}

	notched, err := Notch(mis, testFs, 50, 30)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, notched, 4, 1024)

	banded, err := Bandpass(mis, testFs, 1, 40, 4)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, banded, 4, 1024)
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	in := [][]float64{testutil.DeterministicSine(50, testFs, 1, 512)}
	orig := Clone(in)

	if _, err := Notch(in, testFs, 50, 30); err != nil {
		t.Fatal(err)
	}

	if _, err := Bandpass(in, testFs, 1, 40, 4); err != nil {
		t.Fatal(err)
	}

	testutil.RequireMatrixNearlyEqual(t, in, orig, 0)
}
