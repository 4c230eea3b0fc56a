package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"menustack/nav"
)

// Command IDs understood by the shell. The palette and the pause menu
// both emit these through CommandMsg.
const (
	CmdOpenPause     = "open-pause"
	CmdOpenSettings  = "open-settings"
	CmdOpenSaves     = "open-saves"
	CmdToggleLock    = "toggle-lock"
	CmdQuit          = "quit"
	CmdQuitConfirmed = "quit-confirmed"
)

// Model is the shell: one stage, one navigation controller, one key
// registry. Panel constructors are injected as fields so this package
// never depends on concrete panel types.
type Model struct {
	width     int
	height    int
	keys      *KeyRegistry
	nav       *nav.Controller
	stage     Stage
	status    string
	statusErr bool
	quitting  bool

	OpenPause       func() Panel
	OpenSettings    func() Panel
	OpenSaves       func() Panel
	OpenPalette     func() Panel
	OpenConfirmQuit func() Panel
}

func NewModel(stage Stage, keys *KeyRegistry, controller *nav.Controller) Model {
	return Model{
		keys:   keys,
		nav:    controller,
		stage:  stage,
		status: "Ready",
		width:  100,
		height: 32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope is the key scope of the top panel, or the stage's when no
// panel is open.
func (m Model) ActiveScope() string {
	if top := m.topPanel(); top != nil {
		return top.Scope()
	}
	return m.stage.Scope()
}

// Push registers a panel with the controller and hands the panel its
// handle so its own close control can identify itself later.
func (m *Model) Push(p Panel) {
	if p == nil {
		return
	}
	p.Bind(m.nav.Open(p))
}

// Nav exposes the controller for tests and wiring.
func (m Model) Nav() *nav.Controller {
	return m.nav
}

// topPanel returns the top of the stack as a shell panel. Everything on
// the stack went through Push, so the assertion cannot fail.
func (m Model) topPanel() Panel {
	top := m.nav.Top()
	if top == nil {
		return nil
	}
	return top.(Panel)
}
