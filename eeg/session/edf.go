package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"
)

// Errors returned by the EDF-backed reader.
var (
	ErrMixedSamplingRates = errors.New("session: edf signals use differing sampling rates")
	ErrNoRecordDuration   = errors.New("session: edf header has no data record duration")
)

// EDFSession adapts an EDF/EDF+ recording to the [Reader] interface.
//
// Sample decoding (digital-to-physical calibration, record interleaving) is
// delegated to github.com/OpenPSG/edf. The library keeps its parsed header
// private, so the few header fields needed here (labels, record layout) are
// re-read from their fixed offsets after the library has validated the file.
type EDFSession struct {
	reader *edf.Reader
	rs     io.ReadSeeker

	labels     []string
	perRecord  []int
	records    int
	recordTime time.Duration
}

// OpenEDF opens an EDF/EDF+ recording as a session reader.
func OpenEDF(rs io.ReadSeeker) (*EDFSession, error) {
	reader, err := edf.Open(rs)
	if err != nil {
		return nil, fmt.Errorf("session: opening edf: %w", err)
	}

	s := &EDFSession{reader: reader, rs: rs}
	if err := s.scanHeader(); err != nil {
		return nil, err
	}

	return s, nil
}

// Params derives the session header values from the EDF header. The sampling
// frequency is samples-per-record divided by the record duration; all signals
// must share one rate.
func (s *EDFSession) Params() (Params, error) {
	if s.recordTime <= 0 {
		return Params{}, ErrNoRecordDuration
	}

	for _, n := range s.perRecord {
		if n != s.perRecord[0] {
			return Params{}, ErrMixedSamplingRates
		}
	}

	fs := 0.0
	if len(s.perRecord) > 0 {
		fs = float64(s.perRecord[0]) / s.recordTime.Seconds()
	}

	return Params{
		SamplingFrequency: fs,
		NumberOfChannels:  len(s.labels),
		ChannelNames:      append([]string(nil), s.labels...),
	}, nil
}

// Samples reads every signal in full and returns the channels-by-samples
// matrix of physical values. Returns nil when the recording carries no data
// records.
func (s *EDFSession) Samples() ([][]float64, error) {
	if s.records <= 0 || len(s.labels) == 0 {
		return nil, nil
	}

	matrix := make([][]float64, len(s.labels))
	for i := range matrix {
		sr, err := s.reader.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("session: edf signal %d: %w", i, err)
		}

		data := make([]float64, s.records*s.perRecord[i])

		n, err := sr.Read(data)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("session: reading edf signal %d: %w", i, err)
		}

		matrix[i] = data[:n]
	}

	return matrix, nil
}

// Tags returns nil: EDF+ annotations are not interpreted by this module.
func (s *EDFSession) Tags() any { return nil }

// EDF header layout: a 256-byte fixed block, then per-signal fields stored
// field-major with widths label=16, transducer=80, physical dimension=8,
// physical min/max=8+8, digital min/max=8+8, prefiltering=80,
// samples-per-record=8, reserved=32.
const (
	edfFixedHeaderLen    = 256
	edfLabelLen          = 16
	edfPerSignalPrefix   = 16 + 80 + 8 + 8 + 8 + 8 + 8 + 80
	edfSamplesFieldLen   = 8
	edfRecordCountOffset = 236
	edfRecordTimeOffset  = 244
	edfSignalCountOffset = 252
)

func (s *EDFSession) scanHeader() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("session: seeking edf header: %w", err)
	}

	fixed := make([]byte, edfFixedHeaderLen)
	if _, err := io.ReadFull(s.rs, fixed); err != nil {
		return fmt.Errorf("session: reading edf header: %w", err)
	}

	signalCount, err := strconv.Atoi(trimField(fixed[edfSignalCountOffset : edfSignalCountOffset+4]))
	if err != nil {
		return fmt.Errorf("session: parsing edf signal count: %w", err)
	}

	s.records, err = strconv.Atoi(trimField(fixed[edfRecordCountOffset : edfRecordCountOffset+8]))
	if err != nil {
		return fmt.Errorf("session: parsing edf record count: %w", err)
	}

	seconds, err := strconv.ParseFloat(trimField(fixed[edfRecordTimeOffset:edfRecordTimeOffset+8]), 64)
	if err != nil {
		return fmt.Errorf("session: parsing edf record duration: %w", err)
	}
	s.recordTime = time.Duration(seconds * float64(time.Second))

	labels := make([]byte, signalCount*edfLabelLen)
	if _, err := io.ReadFull(s.rs, labels); err != nil {
		return fmt.Errorf("session: reading edf labels: %w", err)
	}

	s.labels = make([]string, signalCount)
	for i := range s.labels {
		s.labels[i] = trimField(labels[i*edfLabelLen : (i+1)*edfLabelLen])
	}

	samplesOffset := int64(edfFixedHeaderLen + signalCount*edfPerSignalPrefix)
	if _, err := s.rs.Seek(samplesOffset, io.SeekStart); err != nil {
		return fmt.Errorf("session: seeking edf sample counts: %w", err)
	}

	counts := make([]byte, signalCount*edfSamplesFieldLen)
	if _, err := io.ReadFull(s.rs, counts); err != nil {
		return fmt.Errorf("session: reading edf sample counts: %w", err)
	}

	s.perRecord = make([]int, signalCount)
	for i := range s.perRecord {
		field := trimField(counts[i*edfSamplesFieldLen : (i+1)*edfSamplesFieldLen])

		s.perRecord[i], err = strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("session: parsing edf sample count for signal %d: %w", i, err)
		}
	}

	return nil
}

func trimField(b []byte) string {
	return strings.TrimSpace(string(b))
}
