package spectrum

import (
	"math"
	"testing"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/internal/testutil"
)

func TestGoertzel_DetectsTone(t *testing.T) {
	const (
		fs   = 512.0
		freq = 50.0
		n    = 1024 // integer number of 50 Hz cycles at 512 Hz
	)

	in := testutil.DeterministicSine(freq, fs, 1, n)

	atTone, err := BandPower(in, freq, fs)
	if err != nil {
		t.Fatal(err)
	}

	offTone, err := BandPower(in, 30, fs)
	if err != nil {
		t.Fatal(err)
	}

	if atTone <= 100*offTone {
		t.Fatalf("power at tone %v not dominant over off-tone %v", atTone, offTone)
	}

	// |X[k]|^2 of a unit sine over N samples is (N/2)^2.
	want := float64(n) * float64(n) / 4
	if math.Abs(atTone-want) > 0.01*want {
		t.Fatalf("tone power: got %v, want ~%v", atTone, want)
	}
}

func TestGoertzel_ProcessBlockMatchesProcessSample(t *testing.T) {
	in := testutil.DeterministicNoise(9, 1, 500)

	perSample, err := NewGoertzel(50, 512)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range in {
		perSample.ProcessSample(x)
	}

	block, err := NewGoertzel(50, 512)
	if err != nil {
		t.Fatal(err)
	}
	block.ProcessBlock(in)

	if math.Abs(perSample.Power()-block.Power()) > 1e-6*math.Max(1, block.Power()) {
		t.Fatalf("per-sample power %v != block power %v", perSample.Power(), block.Power())
	}
}

func TestGoertzel_ResetClearsState(t *testing.T) {
	g, err := NewGoertzel(50, 512)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessBlock(testutil.DeterministicSine(50, 512, 1, 256))
	g.Reset()

	if p := g.Power(); p != 0 {
		t.Fatalf("power after reset: %v", p)
	}
}

func TestNewGoertzel_InvalidParameters(t *testing.T) {
	tests := []struct {
		name            string
		frequency, rate float64
	}{
		{"negative frequency", -1, 512},
		{"above nyquist", 300, 512},
		{"zero sample rate", 50, 0},
		{"nan frequency", math.NaN(), 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGoertzel(tc.frequency, tc.rate); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
