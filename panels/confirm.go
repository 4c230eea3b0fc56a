package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
)

// Confirm is a yes/no dialog. Yes emits the wired command; both answers
// request close through the panel's own control path.
type Confirm struct {
	base
	prompt  string
	command string
	yes     bool
}

func NewConfirm(prompt, command string) *Confirm {
	return &Confirm{prompt: prompt, command: command}
}

// NewConfirmQuit asks before quitting to desktop.
func NewConfirmQuit() *Confirm {
	return NewConfirm("Quit to desktop?", app.CmdQuitConfirmed)
}

func (c *Confirm) Title() string { return "Confirm" }
func (c *Confirm) Scope() string { return app.ScopeConfirm }

func (c *Confirm) Close() {
	c.closed = true
	c.yes = false
}

func (c *Confirm) Update(msg tea.Msg) (tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch km.String() {
	case "h", "l", "left", "right":
		c.yes = !c.yes
	case "y":
		return app.CommandCmd(c.command), true
	case "n":
		return nil, true
	case "enter":
		if c.yes {
			return app.CommandCmd(c.command), true
		}
		return nil, true
	}
	return nil, false
}

func (c *Confirm) View(width, height int) string {
	yes, no := "  Yes  ", "  No  "
	if c.yes {
		yes = cursorStyle.Render("[ Yes ]")
	} else {
		no = cursorStyle.Render("[ No ]")
	}
	lines := []string{
		titleStyle.Render(c.prompt),
		"",
		yes + "   " + no,
		"",
		mutedStyle.Render("h/l choose · enter confirm · y/n shortcut"),
	}
	return strings.Join(lines, "\n")
}
