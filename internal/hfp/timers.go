package hfp

import "time"

// armTimer schedules a timeout message of the given kind after d,
// stamping it with the current generation for that kind so a later
// cancellation (or a newer arming) makes any in-flight AfterFunc
// closure's message a no-op when it finally arrives. This is the
// guard spec §6 requires against "stale timers from an earlier
// session" firing into a machine that has since moved on.
func (m *Machine) armTimer(kind MessageKind, d time.Duration) {
	m.cancelTimer(kind)
	m.timerGen[kind]++
	gen := m.timerGen[kind]
	peer := m.peer
	t := time.AfterFunc(d, func() {
		_ = m.Send(Message{Kind: kind, Peer: peer, generation: gen})
	})
	m.timers[kind] = t
}

// cancelTimer stops any outstanding timer of the given kind and bumps
// its generation so a race with an already-fired AfterFunc still
// resolves to a dropped, stale message.
func (m *Machine) cancelTimer(kind MessageKind) {
	if t, ok := m.timers[kind]; ok {
		t.Stop()
		delete(m.timers, kind)
	}
	m.timerGen[kind]++
}

// isCurrentGeneration reports whether msg is the most recently armed
// timer message of its kind, i.e. not stale.
func (m *Machine) isCurrentGeneration(msg Message) bool {
	return msg.generation == m.timerGen[msg.Kind]
}
