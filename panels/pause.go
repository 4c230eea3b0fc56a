package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
)

type pauseEntry struct {
	label   string
	command string // empty = resume (close this panel)
}

// Pause is the pause menu. It is lockable: while the stage's pause lock
// is active the controller refuses to pop it, whatever the input.
type Pause struct {
	base
	cursor  int
	entries []pauseEntry
}

func NewPause() *Pause {
	return &Pause{
		base: base{lockable: true},
		entries: []pauseEntry{
			{label: "Resume"},
			{label: "Settings", command: app.CmdOpenSettings},
			{label: "Save game", command: app.CmdOpenSaves},
			{label: "Quit", command: app.CmdQuit},
		},
	}
}

func (p *Pause) Title() string { return "Paused" }
func (p *Pause) Scope() string { return app.ScopePause }

// Close is the pause menu's teardown: here just a cursor reset, since
// the menu has no resources to release.
func (p *Pause) Close() {
	p.closed = true
	p.cursor = 0
}

func (p *Pause) Update(msg tea.Msg) (tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch km.String() {
	case "j", "down":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "enter":
		entry := p.entries[p.cursor]
		if entry.command == "" {
			return nil, true
		}
		return app.CommandCmd(entry.command), false
	}
	return nil, false
}

func (p *Pause) View(width, height int) string {
	lines := []string{titleStyle.Render("Paused"), ""}
	for i, entry := range p.entries {
		prefix := "  "
		label := entry.label
		if i == p.cursor {
			prefix = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", mutedStyle.Render("enter select · esc resume"))
	return strings.Join(lines, "\n")
}
