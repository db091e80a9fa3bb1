package hfp

// isScoAcceptable implements spec §4.6's SCO admission gate: an audio
// connection — inbound or outbound — is only acceptable when the peer
// is bonded, the service grants it priority/routing, and (for an
// inbound request) either this peer is the active device or no other
// device currently holds the active audio route.
func (m *Machine) isScoAcceptable(isOutgoing bool) bool {
	if m.service == nil {
		return true
	}
	if !m.service.IsBonded(m.peer) {
		return false
	}
	if !m.service.OkToAcceptConnection(m.peer, isOutgoing) {
		return false
	}
	if !m.service.GetAudioRouteAllowed(m.peer) {
		return false
	}
	if isOutgoing {
		return true
	}
	active := m.service.GetActiveDevice()
	return active == "" || active == m.peer || m.service.GetForceScoAudio()
}
