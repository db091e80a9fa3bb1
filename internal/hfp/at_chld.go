package hfp

// handleChld implements AT+CHLD<n> call-control actions (spec §4.3).
func (m *Machine) handleChld(ev StackEvent) {
	action := ChldAction(ev.IntValue)
	if err := m.system.ProcessChld(action, ev.IntValue2); err != nil {
		m.logger.Warn("ProcessChld failed", "action", ev.IntValue, "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

func (m *Machine) handleAnswerCall() {
	if err := m.system.AnswerCall(); err != nil {
		m.logger.Warn("AnswerCall failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

func (m *Machine) handleHangupCall() {
	if m.virtualCallStarted {
		m.stopVirtualCall()
		return
	}
	if err := m.system.HangupCall(); err != nil {
		m.logger.Warn("HangupCall failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

func (m *Machine) handleSendDtmf(ev StackEvent) {
	if ev.StringValue == "" {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	if err := m.system.SendDtmf(ev.StringValue[0]); err != nil {
		m.logger.Warn("SendDtmf failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

func (m *Machine) handleVolumeChanged(ev StackEvent) {
	volType := VolumeSpeaker
	if ev.IntValue2 == 1 {
		volType = VolumeMicrophone
	}
	if volType == VolumeMicrophone {
		m.micVolume = ev.IntValue
	} else {
		m.speakerVolume = ev.IntValue
	}
	if err := m.system.SetStreamVolume(volType, ev.IntValue); err != nil {
		m.logger.Warn("SetStreamVolume failed", "error", err)
	}
	_ = m.native.AtResponseOK(m.peer)
}
