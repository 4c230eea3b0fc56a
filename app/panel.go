package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"menustack/nav"
)

// Panel is what the shell needs from a modal panel on top of the stack,
// over and above the nav.Panel capability the controller tracks.
//
// Update's second result is the panel's own close request: true means the
// panel's internal close control fired and the shell should hand the
// panel's handle back to the controller, then run the panel's teardown if
// the controller accepts. Panels are pointer-backed, so Update mutates in
// place rather than returning a replacement.
type Panel interface {
	nav.Panel
	Title() string
	Scope() string
	Bind(h nav.Handle)
	Handle() nav.Handle
	Update(msg tea.Msg) (tea.Cmd, bool)
	View(width, height int) string
}

// Stage is the backdrop the panels open over. It owns the pause lock;
// the navigation controller only ever reads it.
type Stage interface {
	Title() string
	Scope() string
	Locked() bool
	ToggleLock()
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// PushPanelMsg opens a panel on top of the stack.
type PushPanelMsg struct {
	Panel Panel
}

// CommandMsg asks the shell to run a named command (palette selections,
// pause menu entries).
type CommandMsg struct {
	ID string
}

// StatusMsg updates the status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func PushPanelCmd(p Panel) tea.Cmd {
	return func() tea.Msg { return PushPanelMsg{Panel: p} }
}

func CommandCmd(id string) tea.Cmd {
	return func() tea.Msg { return CommandMsg{ID: id} }
}
