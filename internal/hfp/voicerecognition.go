package hfp

// startVoiceRecognition implements spec §4.5's VR start sub-protocol:
// acquire the wake lock for the duration of the round trip to the
// native stack, arm a response timeout, and release the lock either
// when the native stack confirms VR is active or the timeout fires.
func (m *Machine) startVoiceRecognition() {
	if m.voiceRecognitionStarted {
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	if m.wake != nil {
		m.wake.Acquire()
	}
	m.waitingForVoiceRecogResp = true
	if err := m.native.StartVoiceRecognition(m.peer); err != nil {
		m.logger.Warn("StartVoiceRecognition failed", "error", err)
		m.waitingForVoiceRecogResp = false
		if m.wake != nil {
			m.wake.Release()
		}
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	m.system.AcquireVoiceRecognitionWakeLock()
	m.armTimer(MsgStartVrTimeout, m.cfg.StartVrTimeout)
}

// stopVoiceRecognition tears down an active VR session.
func (m *Machine) stopVoiceRecognition() {
	if !m.voiceRecognitionStarted {
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	if err := m.native.StopVoiceRecognition(m.peer); err != nil {
		m.logger.Warn("StopVoiceRecognition failed", "error", err)
	}
	m.finishVoiceRecognition(false)
}

// onVrStateChanged is called from the AT/stack-event dispatcher when
// the native layer reports the VR indication changed.
func (m *Machine) onVrStateChanged(started bool) {
	if started {
		m.cancelTimer(MsgStartVrTimeout)
		if m.waitingForVoiceRecogResp {
			m.system.ReleaseVoiceRecognitionWakeLock()
			if m.wake != nil {
				m.wake.Release()
			}
		}
		m.waitingForVoiceRecogResp = false
		m.voiceRecognitionStarted = true
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	m.finishVoiceRecognition(true)
}

func (m *Machine) finishVoiceRecognition(notify bool) {
	wasWaiting := m.waitingForVoiceRecogResp
	m.voiceRecognitionStarted = false
	m.waitingForVoiceRecogResp = false
	if wasWaiting {
		m.cancelTimer(MsgStartVrTimeout)
		m.system.ReleaseVoiceRecognitionWakeLock()
		if m.wake != nil {
			m.wake.Release()
		}
	}
	if notify {
		_ = m.native.AtResponseOK(m.peer)
	}
}

// onStartVrTimeout is invoked for a MsgStartVrTimeout dispatched while
// Connected* and still waiting for the native VR confirmation.
func (m *Machine) onStartVrTimeout(msg Message) bool {
	if !m.isCurrentGeneration(msg) {
		return true
	}
	if !m.waitingForVoiceRecogResp {
		return true
	}
	m.logger.Warn("voice recognition start timeout")
	m.finishVoiceRecognition(false)
	_ = m.native.AtResponseError(m.peer, 0)
	return true
}
