package session

// DefaultSamplingRate is assumed when a session header does not carry a
// sampling frequency.
const DefaultSamplingRate = 512.0

// Params holds the raw header values a session reader parses from a
// recording. Zero values mean "absent": NewMetadata substitutes the
// documented defaults.
type Params struct {
	SamplingFrequency float64  // Hz; 0 means absent
	NumberOfChannels  int      // 0 means absent
	ChannelNames      []string // insertion order = physical channel order
}

// Reader provides access to a loaded recording session. Implementations
// parse a concrete on-disk format (EDF, OBCI xml/raw/tag triples, ...) into
// header values and a channels-by-samples matrix.
type Reader interface {
	// Params returns the parsed session header values.
	Params() (Params, error)

	// Samples returns the raw signal as a channels-by-samples matrix in the
	// amplifier's native units. May be empty when the recording carries no
	// data records.
	Samples() ([][]float64, error)

	// Tags returns the recording's event/annotation data. The value is
	// opaque to this module and passed through unmodified.
	Tags() any
}
