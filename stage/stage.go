// Package stage provides the backdrop the panels open over. It stands in
// for the running game and owns the pause lock the navigation controller
// consults.
package stage

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"menustack/app"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	lockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)
)

// Stage is the demo backdrop. The lock models a supervising system
// pinning the pause panel open (sync in progress, forced tutorial); the
// controller reads it, only the stage writes it.
type Stage struct {
	title     string
	locked    bool
	keystroke string
}

func New(title string) *Stage {
	return &Stage{title: title}
}

func (s *Stage) Title() string { return s.title }
func (s *Stage) Scope() string { return app.ScopeStage }
func (s *Stage) Locked() bool  { return s.locked }
func (s *Stage) ToggleLock()   { s.locked = !s.locked }

func (s *Stage) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.keystroke = km.String()
	}
	return nil
}

func (s *Stage) View(width, height int) string {
	lines := []string{
		"",
		"  " + titleStyle.Render(s.title),
		"",
		"  " + hintStyle.Render("The game would render here."),
		"",
		"  " + hintStyle.Render("m      open the pause menu"),
		"  " + hintStyle.Render("ctrl+k command palette"),
		"  " + hintStyle.Render("l      toggle the pause lock"),
		"  " + hintStyle.Render("q      quit"),
	}
	if s.locked {
		lines = append(lines, "", "  "+lockStyle.Render("Pause lock active: the pause menu will refuse to close."))
	}
	if s.keystroke != "" {
		lines = append(lines, "", "  "+hintStyle.Render("last unhandled key: "+s.keystroke))
	}
	return strings.Join(lines, "\n")
}
