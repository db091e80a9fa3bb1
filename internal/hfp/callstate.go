package hfp

// processCallState implements spec §4.4's processCallState(cs, isVirtual):
// it updates the telephony snapshot, confirms or clears an in-flight
// dial-out, terminates a masking virtual call when a real one appears,
// and forwards the update to the native stack unless it would be
// redundant with that masking.
func (m *Machine) processCallState(cs CallState, isVirtual bool) {
	if !isVirtual && cs.State != CallIdle && m.virtualCallStarted {
		m.terminateVirtualCall()
	}

	m.telephony = cs

	if m.dialingOut && cs.State == CallDialing {
		if m.service != nil {
			m.service.SetActiveDevice(m.peer)
		}
		m.cancelTimer(MsgDialingOutTimeout)
		m.dialingOut = false
		_ = m.native.AtResponseOK(m.peer)
	}
	if cs.State == CallActive || cs.State == CallIdle {
		m.dialingOut = false
	}

	if m.state == StateDisconnected || m.virtualCallStarted {
		return
	}
	_ = m.native.PhoneStateChange(m.peer, cs)
}
