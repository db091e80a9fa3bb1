package hfp

func enterAudioDisconnecting(m *Machine) bool {
	if err := m.native.DisconnectAudio(m.nativeContext(), m.peer); err != nil {
		m.logger.Warn("native DisconnectAudio failed, staying audio-on", "error", err)
		return false
	}
	return true
}

func processAudioDisconnecting(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		switch ev.Type {
		case EventAudioStateChanged:
			if ev.IntValue == AudioIndDisconnected {
				m.transitionTo(StateConnected)
				return true
			}
			if ev.IntValue == AudioIndConnected {
				// Compensating edge, spec §9 Open Question: the
				// native stack reconnected audio mid-teardown.
				m.transitionTo(StateAudioOn)
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
			// AT traffic is not meaningful while audio is tearing
			// down; swallow it rather than defer, matching the
			// source behaviour of dropping stale CLCC/CIND chatter.
			return true
		}
	case MsgDisconnect:
		m.deferMessage(msg)
		return true
	case MsgConnectAudio, MsgDisconnectAudio:
		m.deferMessage(msg)
		return true
	case MsgSendClccResponse, MsgClccRspTimeout, MsgStartVrTimeout, MsgDialingOutTimeout:
		return processConnected(m, msg)
	default:
		return false
	}
}
