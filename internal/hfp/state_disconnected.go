package hfp

import "time"

func enterDisconnected(m *Machine) bool {
	m.connectingTimestamp = time.Time{}
	m.virtualCallStarted = false
	m.voiceRecognitionStarted = false
	m.waitingForVoiceRecogResp = false
	m.dialingOut = false
	m.cancelTimer(MsgConnectTimeout)
	m.cancelTimer(MsgDialingOutTimeout)
	m.cancelTimer(MsgStartVrTimeout)
	m.cancelTimer(MsgClccRspTimeout)
	return true
}

func processDisconnected(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgConnect:
		m.transitionTo(StateConnecting)
		return true
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		if ev.Type == EventConnectionStateChanged {
			switch ev.IntValue {
			case ConnStateConnecting, ConnStateConnected:
				if m.service == nil || m.service.OkToAcceptConnection(m.peer, false) {
					m.transitionTo(StateConnecting)
				} else {
					m.logger.Warn("rejecting inbound connection", "peer", m.peer)
					_ = m.native.DisconnectHfp(m.nativeContext(), m.peer)
					m.emitIdentityConnectionBroadcast()
				}
				return true
			}
		}
		// Any other stack event in Disconnected is ignored: the
		// native layer is not expected to talk to a peer with no
		// signalling connection, but spurious late events should not
		// abort the machine.
		m.logger.Debug("ignoring stack event while disconnected", "event_type", ev.Type.String())
		return true
	case MsgDisconnect:
		// Already disconnected; treat as a harmless no-op ack.
		return true
	default:
		return false
	}
}
