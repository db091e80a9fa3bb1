package hfp

// buildStateDefs assembles the dispatch table consulted by dispatch()
// and transitionTo(). One map lookup replaces the virtual dispatch a
// class-per-state design would use (spec §9).
func (m *Machine) buildStateDefs() map[PeerState]stateDef {
	return map[PeerState]stateDef{
		StateDisconnected:       {enter: enterDisconnected, process: processDisconnected},
		StateConnecting:         {enter: enterConnecting, exit: exitConnecting, process: processConnecting},
		StateDisconnecting:      {enter: enterDisconnecting, process: processDisconnecting},
		StateConnected:          {enter: enterConnected, process: processConnected},
		StateAudioConnecting:    {enter: enterAudioConnecting, exit: exitAudioConnecting, process: processAudioConnecting},
		StateAudioOn:            {enter: enterAudioOn, process: processAudioOn},
		StateAudioDisconnecting: {enter: enterAudioDisconnecting, process: processAudioDisconnecting},
	}
}
