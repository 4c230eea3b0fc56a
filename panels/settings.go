package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
)

// SettingsStore is the slice of the store the settings panel needs.
type SettingsStore interface {
	Setting(key, fallback string) (string, error)
	SetSetting(key, value string) error
}

type settingsField struct {
	key      string
	label    string
	fallback string
}

var settingsFields = []settingsField{
	{key: "player_name", label: "Player name", fallback: "Player"},
	{key: "difficulty", label: "Difficulty", fallback: "normal"},
}

// Settings edits persisted values. Enter saves every field and requests
// close; esc abandons the edit through the normal dismiss path.
type Settings struct {
	base
	store   SettingsStore
	inputs  []textinput.Model
	focus   int
	loadErr error
}

func NewSettings(store SettingsStore) *Settings {
	s := &Settings{store: store}
	s.inputs = make([]textinput.Model, 0, len(settingsFields))
	for i, f := range settingsFields {
		inp := textinput.New()
		inp.Prompt = f.label + ": "
		value, err := store.Setting(f.key, f.fallback)
		if err != nil {
			s.loadErr = err
			value = f.fallback
		}
		inp.SetValue(value)
		if i == 0 {
			inp.Focus()
		}
		s.inputs = append(s.inputs, inp)
	}
	return s
}

func (s *Settings) Title() string { return "Settings" }
func (s *Settings) Scope() string { return app.ScopeSettings }

func (s *Settings) Close() {
	s.closed = true
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
}

func (s *Settings) Update(msg tea.Msg) (tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab", "shift+tab":
			dir := 1
			if km.String() == "shift+tab" {
				dir = -1
			}
			s.inputs[s.focus].Blur()
			s.focus = (s.focus + dir + len(s.inputs)) % len(s.inputs)
			s.inputs[s.focus].Focus()
			return nil, false
		case "enter":
			for i, f := range settingsFields {
				value := strings.TrimSpace(s.inputs[i].Value())
				if value == "" {
					value = f.fallback
				}
				if err := s.store.SetSetting(f.key, value); err != nil {
					return app.ErrorCmd(fmt.Errorf("save %s: %w", f.key, err)), false
				}
			}
			return app.StatusCmd("Settings saved"), true
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd, false
}

func (s *Settings) View(width, height int) string {
	lines := []string{titleStyle.Render("Settings"), ""}
	for _, in := range s.inputs {
		lines = append(lines, in.View())
	}
	if s.loadErr != nil {
		lines = append(lines, "", errStyle.Render("load failed, showing defaults: "+s.loadErr.Error()))
	}
	lines = append(lines, "", mutedStyle.Render("enter save · esc cancel · tab next field"))
	return strings.Join(lines, "\n")
}
