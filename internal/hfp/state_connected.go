package hfp

func enterConnected(m *Machine) bool {
	m.dialingOut = false
	return true
}

func processConnected(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgDisconnect:
		m.transitionTo(StateDisconnecting)
		return true
	case MsgConnect:
		// Already connected; ack silently.
		return true
	case MsgConnectAudio:
		if !m.isScoAcceptable(true) {
			_ = m.native.AtResponseError(m.peer, 0)
			return true
		}
		m.transitionTo(StateAudioConnecting)
		return true
	case MsgDisconnectAudio:
		// No audio link up; ack silently.
		return true
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		return m.handleConnectedStackEvent(ev)
	case MsgVoiceRecognitionStart:
		m.startVoiceRecognition()
		return true
	case MsgVoiceRecognitionStop:
		m.stopVoiceRecognition()
		return true
	case MsgVirtualCallStart:
		m.startVirtualCall(msg.Payload)
		return true
	case MsgVirtualCallStop:
		m.stopVirtualCall()
		return true
	case MsgCallStateChanged:
		cs, ok := msg.Payload.(CallState)
		if !ok {
			return false
		}
		m.processCallState(cs, false)
		return true
	case MsgDeviceStateChanged:
		status, ok := msg.Payload.(DeviceStatus)
		if !ok {
			return false
		}
		_ = m.native.NotifyDeviceStatus(m.peer, status)
		return true
	case MsgIntentScoVolumeChanged:
		m.applyVolumeEvent(msg)
		return true
	case MsgSendClccResponse:
		m.cancelTimer(MsgClccRspTimeout)
		return true
	case MsgClccRspTimeout:
		if !m.isCurrentGeneration(msg) {
			return true
		}
		m.logger.Warn("clcc response timeout")
		_ = m.native.ClccResponse(m.peer, nil, true)
		return true
	case MsgStartVrTimeout:
		return m.onStartVrTimeout(msg)
	case MsgDialingOutTimeout:
		if !m.isCurrentGeneration(msg) {
			return true
		}
		if m.dialingOut {
			m.logger.Warn("dial-out timeout")
			m.dialingOut = false
			_ = m.native.AtResponseError(m.peer, 0)
		}
		return true
	default:
		return false
	}
}

// handleConnectedStackEvent routes a native stack event while no SCO
// is up: AT-command events go through the AT dispatcher, audio
// indications drive the audio sub-machine.
func (m *Machine) handleConnectedStackEvent(ev StackEvent) bool {
	switch ev.Type {
	case EventAudioStateChanged:
		switch ev.IntValue {
		case AudioIndConnecting:
			if !m.isScoAcceptable(false) {
				return true
			}
			m.transitionTo(StateAudioConnecting)
			return true
		case AudioIndConnected:
			if !m.isScoAcceptable(false) {
				_ = m.native.DisconnectAudio(m.nativeContext(), m.peer)
				return true
			}
			m.transitionTo(StateAudioOn)
			return true
		}
		return true
	case EventConnectionStateChanged:
		if ev.IntValue == ConnStateDisconnected {
			m.transitionTo(StateDisconnected)
		}
		return true
	default:
		return m.dispatchAtEvent(ev)
	}
}
