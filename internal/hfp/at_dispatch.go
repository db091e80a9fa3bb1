package hfp

// dispatchAtEvent routes a native stack event that was not a
// connection/audio indication to the AT-command or vendor-specific
// handler that understands it, per spec §4.3/§4.7.
func (m *Machine) dispatchAtEvent(ev StackEvent) bool {
	switch ev.Type {
	case EventAtCind:
		m.handleCind()
	case EventAtChld:
		m.handleChld(ev)
	case EventAtClcc:
		m.handleClcc()
	case EventAtCops:
		m.handleCops()
	case EventSubscriberNumberRequest:
		m.handleCnum()
	case EventAnswerCall:
		m.handleAnswerCall()
	case EventHangupCall:
		m.handleHangupCall()
	case EventSendDtmf:
		m.handleSendDtmf(ev)
	case EventDialCall:
		return m.handleDialCall(ev)
	case EventVolumeChanged:
		m.handleVolumeChanged(ev)
	case EventVrStateChanged:
		m.onVrStateChanged(ev.IntValue == VrIndStarted)
	case EventAtBind:
		m.handleBind(ev)
	case EventAtBiev:
		m.handleBiev(ev)
	case EventAtCpbs:
		m.handlePhonebookCpbs(ev)
	case EventAtCpbr:
		m.handlePhonebookCpbr(ev)
	case EventAtCscs:
		m.handlePhonebookCscs(ev)
	case EventNoiseReduction, EventWbs, EventKeyPressed:
		m.logger.Debug("acknowledging vendor feature toggle", "event_type", ev.Type.String())
		_ = m.native.AtResponseOK(m.peer)
	case EventUnknownAt:
		m.handleUnknownAt(ev)
	default:
		m.logger.Debug("unhandled stack event in connected group", "event_type", ev.Type.String())
		_ = m.native.AtResponseOK(m.peer)
	}
	return true
}
