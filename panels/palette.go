package panels

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
)

// PaletteCommand is one runnable entry in the command palette.
type PaletteCommand struct {
	ID   string
	Name string
	Desc string
}

// DefaultCommands lists the shell commands the palette exposes.
func DefaultCommands() []PaletteCommand {
	return []PaletteCommand{
		{ID: app.CmdOpenSettings, Name: "Open settings", Desc: "edit persisted settings"},
		{ID: app.CmdOpenSaves, Name: "Save game", Desc: "manage save slots"},
		{ID: app.CmdToggleLock, Name: "Toggle pause lock", Desc: "pin or release the pause menu"},
		{ID: app.CmdQuit, Name: "Quit", Desc: "quit to desktop"},
	}
}

// Palette is a fuzzy command search. Matching keeps substring hits and
// near-misses ranked by edit distance, so "setings" still finds
// "Open settings".
type Palette struct {
	base
	commands []PaletteCommand
	matches  []PaletteCommand
	input    textinput.Model
	cursor   int
}

func NewPalette(commands []PaletteCommand) *Palette {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	p := &Palette{commands: commands, input: inp}
	p.refresh()
	return p
}

func (p *Palette) Title() string { return "Command Palette" }
func (p *Palette) Scope() string { return app.ScopePalette }

func (p *Palette) Close() {
	p.closed = true
	p.input.Blur()
	p.input.SetValue("")
	p.cursor = 0
}

func (p *Palette) Update(msg tea.Msg) (tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "down", "ctrl+n":
			if p.cursor < len(p.matches)-1 {
				p.cursor++
			}
			return nil, false
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return nil, false
		case "enter":
			if p.cursor < len(p.matches) {
				return app.CommandCmd(p.matches[p.cursor].ID), true
			}
			return nil, false
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.refresh()
	return cmd, false
}

func (p *Palette) refresh() {
	p.matches = rankCommands(p.commands, p.input.Value())
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

// rankCommands orders commands for a query: substring matches first (by
// position, then name), then near-misses whose normalized edit distance
// stays under 0.7. An empty query keeps the declared order.
func rankCommands(commands []PaletteCommand, query string) []PaletteCommand {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]PaletteCommand(nil), commands...)
	}
	type scored struct {
		cmd   PaletteCommand
		score float64
	}
	ranked := make([]scored, 0, len(commands))
	for _, cmd := range commands {
		name := strings.ToLower(cmd.Name)
		var score float64
		if idx := strings.Index(name, query); idx >= 0 {
			score = float64(idx) / float64(len(name)+1)
		} else {
			dist := levenshtein.ComputeDistance(query, name)
			maxlen := len(name)
			if len(query) > maxlen {
				maxlen = len(query)
			}
			norm := float64(dist) / float64(maxlen)
			if norm >= 0.7 {
				continue
			}
			score = 1 + norm
		}
		ranked = append(ranked, scored{cmd: cmd, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].cmd.Name < ranked[j].cmd.Name
	})
	out := make([]PaletteCommand, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.cmd)
	}
	return out
}

func (p *Palette) View(width, height int) string {
	lines := []string{titleStyle.Render("Command Palette"), p.input.View(), ""}
	if len(p.matches) == 0 {
		lines = append(lines, mutedStyle.Render("  No matching commands"))
	}
	for i, cmd := range p.matches {
		prefix := "  "
		label := cmd.Name
		if i == p.cursor {
			prefix = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		lines = append(lines, prefix+label+"  "+mutedStyle.Render(cmd.Desc))
	}
	lines = append(lines, "", mutedStyle.Render("enter run · esc close"))
	return strings.Join(lines, "\n")
}
