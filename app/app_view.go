package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	status := m.renderStatusBar()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	var body string
	if bodyHeight > 0 {
		body = m.stage.View(maxInt(1, m.width), bodyHeight)
		if top := m.topPanel(); top != nil {
			popup := top.View(maxInt(20, m.width-12), maxInt(6, bodyHeight-4))
			body = renderPopup(body, popup, m.width, bodyHeight)
		}
		body = fitHeight(body, bodyHeight)
	}
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, maxInt(1, m.height))
	return appStyle.Width(maxInt(1, m.width)).MaxWidth(maxInt(1, m.width)).Render(view)
}

func (m Model) renderHeader() string {
	left := headerAppStyle.Render("menustack") + headerBarStyle.Render(" · "+m.stage.Title())
	lock := lockOffStyle.Render("unlocked")
	if m.stage.Locked() {
		lock = lockOnStyle.Render("LOCKED")
	}
	right := lock
	if top := m.topPanel(); top != nil {
		right = headerBarStyle.Render(top.Title()+" ") + lock
	}
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, maxInt(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, maxInt(1, m.width), msg)
	}
	return renderBar(statusBarStyle, maxInt(1, m.width), msg)
}

func (m Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, maxInt(1, m.width), line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
