package hfp

// startVirtualCall implements spec §4.4's initiateScoUsingVirtualVoiceCall:
// a three-message synthetic call-state sequence is reported to the
// peer (so it opens its own SCO path) without the system's real
// telephony stack ever seeing the call, used for voice-assistant and
// app-initiated audio sessions that are not PSTN calls. Refused while
// a real call or voice recognition is in progress.
func (m *Machine) startVirtualCall(payload any) {
	if m.virtualCallStarted {
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	if m.system.IsInCall() || m.voiceRecognitionStarted {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	number, _ := payload.(string)
	m.virtualCallStarted = true

	dialing := CallState{State: CallDialing, Number: number}
	m.telephony = dialing
	_ = m.native.PhoneStateChange(m.peer, dialing)

	alerting := CallState{State: CallAlerting, Number: number}
	m.telephony = alerting
	_ = m.native.PhoneStateChange(m.peer, alerting)

	active := CallState{NumActive: 1, State: CallIdle, Number: number}
	m.telephony = active
	_ = m.native.PhoneStateChange(m.peer, active)

	_ = m.native.AtResponseOK(m.peer)
}

// stopVirtualCall tears down a synthetic call in response to an
// explicit AT request, acknowledging it.
func (m *Machine) stopVirtualCall() {
	if !m.virtualCallStarted {
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	m.terminateVirtualCall()
	_ = m.native.AtResponseOK(m.peer)
}

// terminateVirtualCall is terminateScoUsingVirtualVoiceCall's core
// effect without an AT acknowledgement, for callers — a real call
// arriving (processCallState), a dial-out (handleDialCall) — that are
// not themselves answering a pending AT command. Audio teardown does
// not call it, and entering Disconnected clears the flag without
// sending the idle PhoneStateChange.
func (m *Machine) terminateVirtualCall() {
	if !m.virtualCallStarted {
		return
	}
	m.virtualCallStarted = false
	m.telephony = CallState{State: CallIdle}
	_ = m.native.PhoneStateChange(m.peer, m.telephony)
}
