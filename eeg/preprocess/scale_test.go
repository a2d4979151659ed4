package preprocess

import (
	"errors"
	"math"
	"testing"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/session"
	"github.com/Madeline42/EEG-Signal-Analysis-Project/internal/testutil"
)

func TestScale_MultipliesByCalibrationConstant(t *testing.T) {
	data := [][]float64{
		{1, 2, 3},
		{-4, 0, 1000},
	}

	scaled, err := Scale(data)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]float64{
		{0.0715, 0.143, 0.2145},
		{-0.286, 0, 71.5},
	}
	testutil.RequireMatrixNearlyEqual(t, scaled, want, 1e-12)
}

func TestScale_IsReversible(t *testing.T) {
	orig := [][]float64{testutil.DeterministicNoise(13, 1000, 256)}

	data := Clone(orig)
	scaled, err := Scale(data)
	if err != nil {
		t.Fatal(err)
	}

	for i, row := range scaled {
		for j, v := range row {
			back := v / VoltageScaling
			if math.Abs(back-orig[i][j]) > 1e-9*math.Max(1, math.Abs(orig[i][j])) {
				t.Fatalf("[%d][%d]: %v / %v = %v, want %v", i, j, v, VoltageScaling, back, orig[i][j])
			}
		}
	}
}

func TestScale_InPlace(t *testing.T) {
	data := [][]float64{{1}}

	scaled, err := Scale(data)
	if err != nil {
		t.Fatal(err)
	}

	if &scaled[0][0] != &data[0][0] {
		t.Fatal("scale allocated a new matrix")
	}
}

func TestScale_EmptyMatrix(t *testing.T) {
	for _, data := range [][][]float64{
		nil,
		{},
		{{}, {}},
	} {
		if _, err := Scale(data); !errors.Is(err, ErrEmptySignal) {
			t.Fatalf("%v: got %v, want ErrEmptySignal", data, err)
		}
	}
}

// failingReader returns an error from Samples.
type failingReader struct{ err error }

func (r *failingReader) Params() (session.Params, error) { return session.Params{}, nil }

func (r *failingReader) Samples() ([][]float64, error) { return nil, r.err }

func (r *failingReader) Tags() any { return nil }

// sliceReader serves a fixed matrix.
type sliceReader struct{ samples [][]float64 }

func (r *sliceReader) Params() (session.Params, error) { return session.Params{}, nil }

func (r *sliceReader) Samples() ([][]float64, error) { return r.samples, nil }

func (r *sliceReader) Tags() any { return nil }

func TestExtractSignal(t *testing.T) {
	r := &sliceReader{samples: [][]float64{{10, 20}, {30, 40}}}

	got, err := ExtractSignal(r)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]float64{{0.715, 1.43}, {2.145, 2.86}}
	testutil.RequireMatrixNearlyEqual(t, got, want, 1e-12)
}

func TestExtractSignal_EmptyReader(t *testing.T) {
	if _, err := ExtractSignal(&sliceReader{}); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("got %v, want ErrEmptySignal", err)
	}
}

func TestExtractSignal_ReaderError(t *testing.T) {
	wantErr := errors.New("disk gone")

	if _, err := ExtractSignal(&failingReader{err: wantErr}); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}
