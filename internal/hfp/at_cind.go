package hfp

// handleCind answers an AT+CIND? status query with the device's
// current indicator bitmap, per spec §4.3. call, callsetup and callheld
// are derived from the telephony snapshot; service, signal, roam and
// battery are fixed values (service up, signal 4, not roaming,
// battery 5).
func (m *Machine) handleCind() {
	cs := m.telephony
	call := cs.State == CallActive || cs.State == CallHeld
	callSetup := cindCallSetup(cs.State)
	if m.virtualCallStarted {
		// spec §4.3: a virtual call forces call=1, callsetup=0
		// regardless of the (masked) telephony snapshot.
		call = true
		callSetup = 0
	}
	status := DeviceStatus{
		Service:   true,
		Call:      call,
		CallSetup: callSetup,
		CallHeld:  boolToInt(cs.State == CallHeld),
		Signal:    4,
		Roam:      false,
		Battery:   5,
	}
	if err := m.native.CindResponse(m.peer, status); err != nil {
		m.logger.Warn("CindResponse failed", "error", err)
	}
}

func cindCallSetup(s CallStateValue) int {
	switch s {
	case CallIncoming:
		return 1
	case CallDialing:
		return 2
	case CallAlerting:
		return 3
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
