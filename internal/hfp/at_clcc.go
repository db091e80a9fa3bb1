package hfp

// handleClcc answers AT+CLCC with the current call list, arming a
// response timeout so a system that never replies to ListCurrentCalls
// does not wedge the peer's dialog forever.
func (m *Machine) handleClcc() {
	calls := m.system.ListCurrentCalls()
	if m.virtualCallStarted {
		calls = append(calls, m.telephony)
	}
	m.armTimer(MsgClccRspTimeout, m.cfg.ClccRspTimeout)
	if err := m.native.ClccResponse(m.peer, calls, true); err != nil {
		m.logger.Warn("ClccResponse failed", "error", err)
	}
}
