package panels

import (
	"github.com/charmbracelet/lipgloss"

	"menustack/nav"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b4befe")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// base carries the pieces every panel shares: the handle it got when it
// was pushed, its lock capability, and whether teardown already ran.
type base struct {
	handle   nav.Handle
	lockable bool
	closed   bool
}

func (b *base) Bind(h nav.Handle)  { b.handle = h }
func (b *base) Handle() nav.Handle { return b.handle }
func (b *base) Lockable() bool     { return b.lockable }

// Closed reports whether teardown has run, for tests.
func (b *base) Closed() bool { return b.closed }
