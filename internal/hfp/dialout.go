package hfp

import "strings"

// handleDialCall implements spec §4.7's dial-out flow, triggered by an
// ATD<number>; command or a memory/last-number redial (ATD><mem>;,
// AT+BLDN). A memory dial redials the last dialled number. A
// dialing-out response timeout guards against a system that never
// reports the call progressing.
func (m *Machine) handleDialCall(ev StackEvent) bool {
	if m.dialingOut {
		_ = m.native.AtResponseError(m.peer, 0)
		return true
	}
	number := strings.TrimSpace(ev.StringValue)
	var err error
	if number == "" || strings.HasPrefix(number, ">") {
		number, err = m.system.Phonebook().LastDialledNumber()
		if err != nil {
			m.logger.Warn("last dialled number lookup failed", "error", err)
			_ = m.native.AtResponseError(m.peer, 0)
			return true
		}
	} else {
		number = strings.TrimSuffix(number, ";")
	}
	if m.virtualCallStarted {
		m.terminateVirtualCall()
	}
	if m.service != nil {
		m.service.SetActiveDevice(m.peer)
	}
	m.dialingOut = true
	m.armTimer(MsgDialingOutTimeout, m.cfg.DialingOutTimeout)
	if err := m.system.Dial(number); err != nil {
		m.logger.Warn("Dial failed", "error", err)
		m.dialingOut = false
		m.cancelTimer(MsgDialingOutTimeout)
		_ = m.native.AtResponseError(m.peer, 0)
		return true
	}
	// OK is confirmed asynchronously once telephony reports the call
	// progressing to Dialing (processCallState); ERROR is sent instead
	// if DialingOutTimeout fires first, per spec §4.7.
	return true
}
