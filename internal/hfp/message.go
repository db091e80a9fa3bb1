package hfp

import "github.com/google/uuid"

// newMessage builds a Message from its kind, peer and payload. It adds
// no trace id; traceID below mints one separately.
func newMessage(kind MessageKind, peer string, payload any) Message {
	return Message{
		Kind:    kind,
		Peer:    peer,
		Payload: payload,
	}
}

// traceID mints a correlation id for a broadcast or AT-command dispatch
// trace, grounded on the teacher's use of google/uuid for event and
// leg identifiers.
func traceID() string {
	return uuid.NewString()
}
