package hfp

// legalEdges enumerates, for every state, the states it may
// transition to. It is consulted by transitionTo before any enter/exit
// hook runs, and an edge not present here is an invariant violation
// (spec §7), not a silent no-op.
var legalEdges = map[PeerState][]PeerState{
	StateDisconnected: {
		StateConnecting,
	},
	StateConnecting: {
		StateConnected,
		StateDisconnected,
	},
	StateDisconnecting: {
		StateDisconnected,
		StateConnected, // rare race: SLC_CONNECTED arrives mid-teardown, spec §4.2
	},
	StateConnected: {
		StateDisconnecting,
		StateAudioConnecting,
		StateAudioOn, // native stack may report audio already up
		StateDisconnected,
	},
	StateAudioConnecting: {
		StateAudioOn,
		StateConnected,
		StateDisconnecting,
		StateDisconnected,
	},
	StateAudioOn: {
		StateAudioDisconnecting,
		StateConnected,
		StateDisconnecting,
		StateDisconnected,
	},
	StateAudioDisconnecting: {
		StateConnected,
		StateAudioOn, // compensating edge, spec §9 Open Question
		StateDisconnecting,
		StateDisconnected,
	},
}

// CanTransitionTo reports whether s may legally transition to next.
func (s PeerState) CanTransitionTo(next PeerState) bool {
	allowed, ok := legalEdges[s]
	if !ok {
		return false
	}
	for _, st := range allowed {
		if st == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing edges. No PeerState is
// terminal: a fully disconnected peer can always reconnect, and a
// PeerMachine is destroyed by the registry, not by reaching a dead
// state.
func (s PeerState) IsTerminal() bool {
	return len(legalEdges[s]) == 0
}
