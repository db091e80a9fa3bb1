package hfp

// applyVolumeEvent handles an IntentScoVolumeChanged message. Per the
// Open Question decision recorded in DESIGN.md, the volume is applied
// to the stream even when the system reports this peer does not
// currently hold audio focus — the original stack logs a warning and
// proceeds rather than dropping the update.
func (m *Machine) applyVolumeEvent(msg Message) {
	v, ok := msg.Payload.(int)
	if !ok {
		return
	}
	if m.state != StateAudioOn {
		m.logger.Warn("applying volume change without audio focus", "state", m.state.String())
	}
	m.speakerVolume = v
	if err := m.system.SetStreamVolume(VolumeSpeaker, v); err != nil {
		m.logger.Warn("SetStreamVolume failed", "error", err)
	}
	_ = m.native.SetVolume(m.peer, VolumeSpeaker, v)
}
