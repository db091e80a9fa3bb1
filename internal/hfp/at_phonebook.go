package hfp

import "strconv"

// handlePhonebookCpbs delegates AT+CPBS=<storage> to the phonebook
// collaborator, per spec §4.3's CPBR/CPBS/CSCS delegation requirement.
func (m *Machine) handlePhonebookCpbs(ev StackEvent) {
	args, err := splitAtArgs(ev.StringValue)
	if err != nil || len(args) < 1 {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	if err := m.system.Phonebook().HandleCpbs(m.peer, args[0]); err != nil {
		m.logger.Warn("HandleCpbs failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

// handlePhonebookCpbr delegates AT+CPBR=<from>[,<to>] range reads.
func (m *Machine) handlePhonebookCpbr(ev StackEvent) {
	args, err := splitAtArgs(ev.StringValue)
	if err != nil || len(args) < 1 {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	to := from
	if len(args) > 1 {
		if to, err = strconv.Atoi(args[1]); err != nil {
			_ = m.native.AtResponseError(m.peer, 0)
			return
		}
	}
	if err := m.system.Phonebook().HandleCpbr(m.peer, from, to); err != nil {
		m.logger.Warn("HandleCpbr failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}

// handlePhonebookCscs delegates AT+CSCS=<charset> selection.
func (m *Machine) handlePhonebookCscs(ev StackEvent) {
	args, err := splitAtArgs(ev.StringValue)
	if err != nil || len(args) < 1 {
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	if err := m.system.Phonebook().HandleCscs(m.peer, args[0]); err != nil {
		m.logger.Warn("HandleCscs failed", "error", err)
		_ = m.native.AtResponseError(m.peer, 0)
		return
	}
	_ = m.native.AtResponseOK(m.peer)
}
