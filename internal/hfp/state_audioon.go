package hfp

func enterAudioOn(m *Machine) bool {
	if m.service != nil {
		m.service.SetActiveDevice(m.peer)
	}
	return true
}

func processAudioOn(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgDisconnectAudio:
		m.transitionTo(StateAudioDisconnecting)
		return true
	case MsgConnectAudio:
		// Already up; ack silently.
		return true
	case MsgDisconnect:
		m.transitionTo(StateAudioDisconnecting)
		m.deferMessage(msg)
		return true
	case MsgIntentScoVolumeChanged:
		m.applyVolumeEvent(msg)
		return true
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		switch ev.Type {
		case EventAudioStateChanged:
			if ev.IntValue == AudioIndDisconnecting {
				m.transitionTo(StateAudioDisconnecting)
				return true
			}
			if ev.IntValue == AudioIndDisconnected {
				m.transitionTo(StateConnected)
				return true
			}
			return true
		case EventConnectionStateChanged:
			if ev.IntValue == ConnStateDisconnected {
				m.transitionTo(StateDisconnected)
				return true
			}
			return true
		default:
			return m.dispatchAtEvent(ev)
		}
	case MsgVoiceRecognitionStart, MsgVoiceRecognitionStop,
		MsgVirtualCallStart, MsgVirtualCallStop,
		MsgCallStateChanged, MsgDeviceStateChanged,
		MsgSendClccResponse, MsgClccRspTimeout, MsgStartVrTimeout, MsgDialingOutTimeout:
		return processConnected(m, msg)
	default:
		return false
	}
}
