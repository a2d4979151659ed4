package session

// Metadata is the immutable description of a recording session: sampling
// rate, channel layout and the recording's event tags. It is constructed
// once from the reader's header values and exposes read accessors only;
// the channel order fixes the row order of every signal matrix derived
// from the session.
type Metadata struct {
	samplingRate float64
	channelCount int
	channelNames []string
	channelIndex map[string]int
	tags         any
}

// NewMetadata builds session metadata from raw header values.
//
// An absent sampling frequency defaults to [DefaultSamplingRate]; an absent
// channel count defaults to the number of channel names. The channel index
// maps each name to its position in the name list.
func NewMetadata(p Params, tags any) Metadata {
	fs := p.SamplingFrequency
	if fs <= 0 {
		fs = DefaultSamplingRate
	}

	count := p.NumberOfChannels
	if count <= 0 {
		count = len(p.ChannelNames)
	}

	names := make([]string, len(p.ChannelNames))
	copy(names, p.ChannelNames)

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	return Metadata{
		samplingRate: fs,
		channelCount: count,
		channelNames: names,
		channelIndex: index,
		tags:         tags,
	}
}

// ReadMetadata constructs session metadata from a reader.
func ReadMetadata(r Reader) (Metadata, error) {
	params, err := r.Params()
	if err != nil {
		return Metadata{}, err
	}

	return NewMetadata(params, r.Tags()), nil
}

// SamplingRate returns the sampling frequency in Hz.
func (m Metadata) SamplingRate() float64 { return m.samplingRate }

// ChannelCount returns the number of recorded channels.
func (m Metadata) ChannelCount() int { return m.channelCount }

// ChannelNames returns the channel labels in physical channel order.
// The returned slice is a copy.
func (m Metadata) ChannelNames() []string {
	names := make([]string, len(m.channelNames))
	copy(names, m.channelNames)

	return names
}

// Index returns the matrix row index for a channel name.
func (m Metadata) Index(name string) (int, bool) {
	i, ok := m.channelIndex[name]

	return i, ok
}

// Tags returns the recording's event/annotation data, unmodified.
func (m Metadata) Tags() any { return m.tags }
