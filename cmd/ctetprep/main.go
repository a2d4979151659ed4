// Command ctetprep preprocesses an EDF-recorded EEG session.
//
// Usage:
//
//	ctetprep [flags] recording.edf
//
// It loads the recording, applies the standard CTET preprocessing chain
// (microvolt scaling, re-referencing, notch, bandpass) and prints a session
// summary with the dominant frequency per channel.
//
// Examples:
//
//	ctetprep session.edf
//	ctetprep -ref A1,A2 session.edf
//	ctetprep -notch 60 -low 0.5 -high 30 session.edf
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Madeline42/EEG-Signal-Analysis-Project/dsp/spectrum"
	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/preprocess"
	"github.com/Madeline42/EEG-Signal-Analysis-Project/eeg/session"
)

func main() {
	ref := flag.String("ref", "", "comma-separated reference channel names (empty = common average)")
	notch := flag.Float64("notch", preprocess.DefaultNotchFreq, "notch center frequency in Hz")
	q := flag.Float64("q", preprocess.DefaultNotchQ, "notch quality factor")
	low := flag.Float64("low", 1, "bandpass lower edge in Hz")
	high := flag.Float64("high", 40, "bandpass upper edge in Hz")
	order := flag.Int("order", 4, "Butterworth order per band edge")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctetprep [flags] recording.edf\n\n")
		fmt.Fprintf(os.Stderr, "Preprocesses an EDF-recorded EEG session.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var refChannels []string
	if *ref != "" {
		for _, name := range strings.Split(*ref, ",") {
			refChannels = append(refChannels, strings.TrimSpace(name))
		}
	}

	pipeline := preprocess.Pipeline{
		NotchFreq: *notch,
		NotchQ:    *q,
		LowCut:    *low,
		HighCut:   *high,
		Order:     *order,
	}

	if err := run(flag.Arg(0), pipeline, refChannels); err != nil {
		fmt.Fprintf(os.Stderr, "ctetprep: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, pipeline preprocess.Pipeline, refChannels []string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader, err := session.OpenEDF(f)
	if err != nil {
		return err
	}

	meta, err := session.ReadMetadata(reader)
	if err != nil {
		return err
	}

	if err := pipeline.Validate(meta.SamplingRate()); err != nil {
		return err
	}

	raw, err := reader.Samples()
	if err != nil {
		return err
	}
	if len(raw) == 0 || len(raw[0]) == 0 {
		return preprocess.ErrEmptySignal
	}

	fmt.Printf("Loaded %d channels at %g Hz, %d samples per channel\n",
		meta.ChannelCount(), meta.SamplingRate(), len(raw[0]))

	out, err := pipeline.Run(raw, meta, refChannels)
	if err != nil {
		if !errors.Is(err, preprocess.ErrUnknownChannel) {
			return err
		}

		fmt.Fprintf(os.Stderr, "ctetprep: %v; continuing without re-referencing\n", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tDOMINANT Hz\tRMS uV")

	for i, name := range meta.ChannelNames() {
		if i >= len(out) {
			break
		}

		dominant, err := spectrum.DominantFrequency(out[i], meta.SamplingRate())
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", name, dominant, rms(out[i]))
	}

	return w.Flush()
}

func rms(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range signal {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(signal)))
}
