package hfp

// handleCops answers AT+COPS? with the current network operator name.
func (m *Machine) handleCops() {
	op := m.system.GetNetworkOperator()
	if err := m.native.CopsResponse(m.peer, op); err != nil {
		m.logger.Warn("CopsResponse failed", "error", err)
	}
}

// handleCnum answers AT+CNUM with the subscriber's own number.
func (m *Machine) handleCnum() {
	number, numberType := m.system.GetSubscriberNumber()
	if err := m.native.CnumResponse(m.peer, number, numberType); err != nil {
		m.logger.Warn("CnumResponse failed", "error", err)
	}
}
