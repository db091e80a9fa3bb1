package hfp

func enterDisconnecting(m *Machine) bool {
	if err := m.native.DisconnectHfp(m.nativeContext(), m.peer); err != nil {
		m.logger.Warn("native DisconnectHfp failed, staying connected", "error", err)
		return false
	}
	return true
}

func processDisconnecting(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		if ev.Type == EventConnectionStateChanged {
			switch ev.IntValue {
			case ConnStateDisconnected:
				m.transitionTo(StateDisconnected)
				return true
			case ConnStateConnected:
				m.logger.Warn("SLC reconnected while disconnecting", "peer", m.peer)
				m.transitionTo(StateConnected)
				return true
			}
		}
		// Swallow any other late event; the link is going down.
		return true
	case MsgDisconnect:
		// Already disconnecting; ack silently.
		return true
	case MsgConnect:
		// Let the caller retry once disconnection completes.
		m.deferMessage(msg)
		return true
	default:
		return false
	}
}
