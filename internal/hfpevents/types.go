// Package hfpevents realizes the broadcast delta notifications spec §4.2
// and §7 require whenever a peer's connection or audio state changes,
// the Go-native form of the Android sendBroadcast(Intent) calls the
// original stack makes. It is adapted from the teacher's call-lifecycle
// event package: the same BaseEvent envelope and Subject() hierarchy,
// re-keyed to a single Bluetooth peer address instead of a call UUID.
package hfpevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the two delta notifications a PeerMachine
// produces.
type EventType int

const (
	ConnectionStateChanged EventType = iota
	AudioStateChanged
)

func (t EventType) String() string {
	switch t {
	case ConnectionStateChanged:
		return "connection_state_changed"
	case AudioStateChanged:
		return "audio_state_changed"
	default:
		return "unknown"
	}
}

// SubjectPrefix is the root of every subject this package builds,
// mirroring the teacher's SubjectPrefix convention.
const SubjectPrefix = "hfp.peers"

// BuildSubject builds a hierarchical subject for a peer event, e.g.
// "hfp.peers.AA:BB:CC:DD:EE:FF.audio_state_changed".
func BuildSubject(peer string, t EventType) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, peer, t.String())
}

// BaseEvent carries the fields common to every event this package
// emits, mirroring the teacher's BaseEvent.
type BaseEvent struct {
	EventID   string
	EventType EventType
	EventTime time.Time
	Peer      string
}

func newBase(t EventType, peer string) BaseEvent {
	return BaseEvent{
		EventID:   uuid.NewString(),
		EventType: t,
		EventTime: time.Now().UTC(),
		Peer:      peer,
	}
}

// Subject returns the hierarchical subject this event should be
// published under.
func (b BaseEvent) Subject() string {
	return BuildSubject(b.Peer, b.EventType)
}

// ConnectionStateChangedEvent reports a signalling-layer state delta.
type ConnectionStateChangedEvent struct {
	BaseEvent
	Previous string
	Current  string
}

// AudioStateChangedEvent reports an audio-layer state delta.
type AudioStateChangedEvent struct {
	BaseEvent
	Previous string
	Current  string
}
