package hfp

import "strconv"

// handleBind records every indicator id listed by AT+BIND=<n>[,<n>...]
// in audioParams under a "bind:<id>" key. handleBiev consults those
// keys: an AT+BIEV update for an id not listed is acknowledged and
// ignored, one for a listed id is logged and acknowledged. Neither
// handler emits an indicator-changed notification.
func (m *Machine) handleBind(ev StackEvent) {
	args, err := splitAtArgs(ev.StringValue)
	if err != nil {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	if m.audioParams == nil {
		m.audioParams = make(map[string]string)
	}
	for _, a := range args {
		if a == "" {
			continue
		}
		m.audioParams["bind:"+a] = "enabled"
	}
	_ = m.native.AtResponseOK(m.peer)
}

// handleBiev processes an AT+BIEV=<indID>,<value> indicator update.
func (m *Machine) handleBiev(ev StackEvent) {
	args, err := splitAtArgs(ev.StringValue)
	if err != nil || len(args) != 2 {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	indID, err1 := strconv.Atoi(args[0])
	value, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	if _, enabled := m.audioParams["bind:"+args[0]]; !enabled {
		m.logger.Debug("ignoring BIEV for indicator not enabled via BIND", "indicator", indID)
		_ = m.native.AtResponseOK(m.peer)
		return
	}
	m.logger.Debug("hf indicator updated", "indicator", indID, "value", value)
	_ = m.native.AtResponseOK(m.peer)
}
