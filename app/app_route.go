package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushPanelMsg:
		m.Push(msg.Panel)
		return m, nil
	case CommandMsg:
		return m.runCommand(msg.ID)
	case tea.KeyMsg:
		keyName := msg.String()
		if keyName == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()

		if m.topPanel() != nil {
			// The dismiss binding always targets the controller, never
			// the panel. Everything else goes to the top panel.
			if m.keys.IsAction(keyName, ActionDismiss, scope) {
				m.nav.CloseTop()
				return m, nil
			}
			return m.updateTopPanel(msg)
		}

		switch {
		case m.keys.IsAction(keyName, ActionQuit, scope):
			return m.runCommand(CmdQuit)
		case m.keys.IsAction(keyName, ActionMenu, scope):
			return m.runCommand(CmdOpenPause)
		case m.keys.IsAction(keyName, ActionPalette, scope) && m.OpenPalette != nil:
			m.Push(m.OpenPalette())
			return m, nil
		case m.keys.IsAction(keyName, ActionToggleLock, scope):
			return m.runCommand(CmdToggleLock)
		}
		return m, m.stage.Update(msg)
	}

	if m.topPanel() != nil {
		return m.updateTopPanel(msg)
	}
	return m, m.stage.Update(msg)
}

// updateTopPanel routes msg to the top panel. A close request from the
// panel is its requestClose path: bookkeeping first through Remove with
// the panel's own handle, teardown only if the controller accepted.
func (m Model) updateTopPanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.topPanel()
	cmd, closeRequested := top.Update(msg)
	if closeRequested {
		if m.nav.Remove(top.Handle()) {
			top.Close()
		}
	}
	return m, cmd
}

func (m Model) runCommand(id string) (tea.Model, tea.Cmd) {
	switch id {
	case CmdOpenPause:
		if m.OpenPause != nil {
			m.Push(m.OpenPause())
		}
		return m, nil
	case CmdOpenSettings:
		if m.OpenSettings != nil {
			m.Push(m.OpenSettings())
		}
		return m, nil
	case CmdOpenSaves:
		if m.OpenSaves != nil {
			m.Push(m.OpenSaves())
		}
		return m, nil
	case CmdToggleLock:
		m.stage.ToggleLock()
		if m.stage.Locked() {
			return m, StatusCmd("Pause lock engaged")
		}
		return m, StatusCmd("Pause lock released")
	case CmdQuit:
		if m.OpenConfirmQuit != nil {
			m.Push(m.OpenConfirmQuit())
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case CmdQuitConfirmed:
		m.quitting = true
		return m, tea.Quit
	default:
		return m, StatusCmd("Unknown command: " + id)
	}
}
