package hfp

// handleUnknownAt acknowledges a vendor-specific command this machine
// does not recognize (XEVENT/ANDROID/XAPL/IPHONEACCEV and similar) so
// the peer's AT dialog does not stall waiting for a response it will
// never get, per spec §4.3's UnknownAt dispatch.
func (m *Machine) handleUnknownAt(ev StackEvent) {
	m.logger.Debug("acknowledging unrecognized vendor AT command", "raw", ev.StringValue)
	_ = m.native.AtResponseOK(m.peer)
}
