package hfpevents

// Builder provides fluent construction of peer events with consistent
// envelope defaults, mirroring the teacher's events.Builder.
type Builder struct{}

// NewBuilder creates an event builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ConnectionState starts building a ConnectionStateChangedEvent.
func (b *Builder) ConnectionState(peer, previous, current string) *ConnectionStateChangedEvent {
	return &ConnectionStateChangedEvent{
		BaseEvent: newBase(ConnectionStateChanged, peer),
		Previous:  previous,
		Current:   current,
	}
}

// AudioState starts building an AudioStateChangedEvent.
func (b *Builder) AudioState(peer, previous, current string) *AudioStateChangedEvent {
	return &AudioStateChangedEvent{
		BaseEvent: newBase(AudioStateChanged, peer),
		Previous:  previous,
		Current:   current,
	}
}
