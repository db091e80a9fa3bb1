package hfp

import "time"

func enterAudioConnecting(m *Machine) bool {
	if err := m.native.ConnectAudio(m.nativeContext(), m.peer); err != nil {
		m.logger.Warn("native ConnectAudio failed", "error", err)
		return false
	}
	m.armTimer(MsgConnectTimeout, 5*time.Second)
	return true
}

func exitAudioConnecting(m *Machine) {
	m.cancelTimer(MsgConnectTimeout)
}

func processAudioConnecting(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		switch ev.Type {
		case EventAudioStateChanged:
			switch ev.IntValue {
			case AudioIndConnected:
				m.transitionTo(StateAudioOn)
				return true
			case AudioIndDisconnected:
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
			// AT-command traffic continues to flow while audio is
			// coming up; route it, but defer anything that would
			// itself mutate the audio state.
			return m.dispatchAtEvent(ev)
		}
	case MsgConnectTimeout:
		if !m.isCurrentGeneration(msg) {
			return true
		}
		m.logger.Warn("audio connect timeout")
		_ = m.native.DisconnectAudio(m.nativeContext(), m.peer)
		m.transitionTo(StateConnected)
		return true
	case MsgDisconnectAudio:
		m.deferMessage(msg)
		return true
	case MsgDisconnect:
		m.deferMessage(msg)
		return true
	case MsgSendClccResponse, MsgClccRspTimeout, MsgStartVrTimeout, MsgDialingOutTimeout:
		return processConnected(m, msg)
	default:
		return false
	}
}
