package hfp

import "time"

func enterConnecting(m *Machine) bool {
	m.connectingTimestamp = time.Now()
	if err := m.native.ConnectHfp(m.nativeContext(), m.peer); err != nil {
		m.logger.Warn("native ConnectHfp failed", "error", err)
		return false
	}
	m.armTimer(MsgConnectTimeout, m.cfg.ConnectTimeout)
	return true
}

func exitConnecting(m *Machine) {
	m.cancelTimer(MsgConnectTimeout)
}

func processConnecting(m *Machine, msg Message) bool {
	switch msg.Kind {
	case MsgStackEvent:
		ev, ok := msg.Payload.(StackEvent)
		if !ok {
			return false
		}
		switch ev.Type {
		case EventConnectionStateChanged:
			switch ev.IntValue {
			case ConnStateConnected:
				m.transitionTo(StateConnected)
				return true
			case ConnStateDisconnected:
				m.transitionTo(StateDisconnected)
				return true
			}
			return true
		case EventAtCind, EventAtChld, EventAtBind, EventWbs:
			// HFP 1.7.1 §4.2 requires responses to these before
			// SLC_CONNECTED is even sent; answer them with the same
			// handlers Connected uses instead of deferring.
			return m.dispatchAtEvent(ev)
		default:
			// Any other AT traffic this early is unexpected but still
			// answered, never deferred — a peer waiting on a response
			// here will not send SLC_CONNECTED.
			m.logger.Warn("unexpected AT event before SLC established, answering anyway",
				"event_type", ev.Type.String())
			_ = m.native.AtResponseOK(m.peer)
			return true
		}
	case MsgConnectTimeout:
		if !m.isCurrentGeneration(msg) {
			return true
		}
		m.logger.Warn("connect timeout")
		_ = m.native.DisconnectHfp(m.nativeContext(), m.peer)
		m.transitionTo(StateDisconnected)
		return true
	case MsgDisconnect:
		m.deferMessage(msg)
		return true
	default:
		return false
	}
}
