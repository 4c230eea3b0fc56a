package panels

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
	"menustack/internal/store"
)

// SavesStore is the slice of the store the saves panel needs.
type SavesStore interface {
	SaveSlots() ([]store.SaveSlot, error)
	CreateSaveSlot(name string) (store.SaveSlot, error)
	DeleteSaveSlot(id string) error
}

// Saves lists save slots, newest first. Slots are created and deleted
// synchronously; the panel reloads after every mutation so the list
// always reflects the database.
type Saves struct {
	base
	store  SavesStore
	slots  []store.SaveSlot
	cursor int
	now    func() time.Time
}

func NewSaves(st SavesStore) *Saves {
	s := &Saves{store: st, now: time.Now}
	s.reload()
	return s
}

func (s *Saves) Title() string { return "Save game" }
func (s *Saves) Scope() string { return app.ScopeSaves }

func (s *Saves) Close() {
	s.closed = true
	s.cursor = 0
}

func (s *Saves) Update(msg tea.Msg) (tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch km.String() {
	case "j", "down":
		if s.cursor < len(s.slots)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "n":
		name := "Save " + s.now().Format("2006-01-02 15:04:05")
		if _, err := s.store.CreateSaveSlot(name); err != nil {
			return app.ErrorCmd(err), false
		}
		if cmd := s.reload(); cmd != nil {
			return cmd, false
		}
		s.cursor = 0
		return app.StatusCmd("Created " + name), false
	case "d":
		if s.cursor >= len(s.slots) {
			return nil, false
		}
		slot := s.slots[s.cursor]
		if err := s.store.DeleteSaveSlot(slot.ID); err != nil {
			return app.ErrorCmd(err), false
		}
		if cmd := s.reload(); cmd != nil {
			return cmd, false
		}
		if s.cursor >= len(s.slots) && s.cursor > 0 {
			s.cursor--
		}
		return app.StatusCmd("Deleted " + slot.Name), false
	}
	return nil, false
}

func (s *Saves) reload() tea.Cmd {
	slots, err := s.store.SaveSlots()
	if err != nil {
		return app.ErrorCmd(fmt.Errorf("load save slots: %w", err))
	}
	s.slots = slots
	return nil
}

func (s *Saves) View(width, height int) string {
	lines := []string{titleStyle.Render("Save game"), ""}
	if len(s.slots) == 0 {
		lines = append(lines, mutedStyle.Render("  No saves yet"))
	}
	for i, slot := range s.slots {
		prefix := "  "
		label := fmt.Sprintf("%s  %s", slot.Name, mutedStyle.Render(slot.CreatedAt))
		if i == s.cursor {
			prefix = cursorStyle.Render("> ")
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", mutedStyle.Render("n new · d delete · esc back"))
	return strings.Join(lines, "\n")
}
