package panels

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
	"menustack/internal/store"
)

func press(s string) tea.Msg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ---------------------------------------------------------------------------
// Pause
// ---------------------------------------------------------------------------

func TestPauseIsLockable(t *testing.T) {
	if !NewPause().Lockable() {
		t.Fatal("pause panel must be lockable")
	}
}

func TestPauseResumeRequestsClose(t *testing.T) {
	p := NewPause()
	cmd, closeReq := p.Update(press("enter"))
	if !closeReq || cmd != nil {
		t.Fatalf("resume should request close with no command, closeReq=%v", closeReq)
	}
}

func TestPauseMenuEntriesEmitCommands(t *testing.T) {
	p := NewPause()
	p.Update(press("j"))
	cmd, closeReq := p.Update(press("enter"))
	if closeReq {
		t.Fatal("opening settings must keep the pause menu on the stack")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(app.CommandMsg)
	if !ok || msg.ID != app.CmdOpenSettings {
		t.Fatalf("got %#v, want open-settings", cmd())
	}
}

func TestPauseCursorClamps(t *testing.T) {
	p := NewPause()
	for i := 0; i < 10; i++ {
		p.Update(press("j"))
	}
	if p.cursor != len(p.entries)-1 {
		t.Fatalf("cursor = %d", p.cursor)
	}
	for i := 0; i < 10; i++ {
		p.Update(press("k"))
	}
	if p.cursor != 0 {
		t.Fatalf("cursor = %d", p.cursor)
	}
}

func TestPauseCloseResets(t *testing.T) {
	p := NewPause()
	p.Update(press("j"))
	p.Close()
	if !p.Closed() || p.cursor != 0 {
		t.Fatalf("close should reset: closed=%v cursor=%d", p.Closed(), p.cursor)
	}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

type fakeSettings struct {
	values map[string]string
	err    error
}

func (f *fakeSettings) Setting(key, fallback string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return fallback, nil
}

func (f *fakeSettings) SetSetting(key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func TestSettingsSaveAndClose(t *testing.T) {
	st := &fakeSettings{values: map[string]string{"player_name": "Zed"}}
	s := NewSettings(st)
	cmd, closeReq := s.Update(press("enter"))
	if !closeReq {
		t.Fatal("enter should save and request close")
	}
	if cmd == nil {
		t.Fatal("expected status command")
	}
	if msg := cmd().(app.StatusMsg); msg.IsErr {
		t.Fatalf("unexpected error status: %+v", msg)
	}
	if st.values["player_name"] != "Zed" || st.values["difficulty"] != "normal" {
		t.Fatalf("stored values = %+v", st.values)
	}
}

func TestSettingsSaveErrorKeepsPanelOpen(t *testing.T) {
	st := &fakeSettings{values: map[string]string{}}
	s := NewSettings(st)
	st.err = errors.New("disk full")
	cmd, closeReq := s.Update(press("enter"))
	if closeReq {
		t.Fatal("a failed save must not close the panel")
	}
	msg, ok := cmd().(app.StatusMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("expected error status, got %#v", cmd())
	}
}

func TestSettingsTypingEditsFocusedField(t *testing.T) {
	st := &fakeSettings{values: map[string]string{}}
	s := NewSettings(st)
	s.Update(press("X"))
	if got := s.inputs[0].Value(); got != "PlayerX" {
		t.Fatalf("input value = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Saves
// ---------------------------------------------------------------------------

type fakeSaves struct {
	slots []store.SaveSlot
	err   error
	seq   int
}

func (f *fakeSaves) SaveSlots() ([]store.SaveSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]store.SaveSlot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

func (f *fakeSaves) CreateSaveSlot(name string) (store.SaveSlot, error) {
	if f.err != nil {
		return store.SaveSlot{}, f.err
	}
	f.seq++
	slot := store.SaveSlot{ID: fmt.Sprintf("id-%d", f.seq), Name: name, CreatedAt: "now"}
	f.slots = append([]store.SaveSlot{slot}, f.slots...)
	return slot, nil
}

func (f *fakeSaves) DeleteSaveSlot(id string) error {
	if f.err != nil {
		return f.err
	}
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestSavesCreateUsesClock(t *testing.T) {
	f := &fakeSaves{}
	s := NewSaves(f)
	s.now = func() time.Time { return time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC) }
	cmd, closeReq := s.Update(press("n"))
	if closeReq {
		t.Fatal("creating a slot must not close the panel")
	}
	if cmd == nil {
		t.Fatal("expected status command")
	}
	if len(f.slots) != 1 || f.slots[0].Name != "Save 2026-08-25 10:30:00" {
		t.Fatalf("slots = %+v", f.slots)
	}
	if len(s.slots) != 1 {
		t.Fatal("panel should reload after create")
	}
}

func TestSavesDeleteClampsCursor(t *testing.T) {
	f := &fakeSaves{}
	f.CreateSaveSlot("one")
	f.CreateSaveSlot("two")
	s := NewSaves(f)
	s.Update(press("j"))
	if s.cursor != 1 {
		t.Fatalf("cursor = %d", s.cursor)
	}
	s.Update(press("d"))
	if len(s.slots) != 1 {
		t.Fatalf("slots = %+v", s.slots)
	}
	if s.cursor != 0 {
		t.Fatalf("cursor should clamp after delete, got %d", s.cursor)
	}
}

func TestSavesStoreErrorSurfacesStatus(t *testing.T) {
	f := &fakeSaves{}
	s := NewSaves(f)
	f.err = errors.New("locked database")
	cmd, _ := s.Update(press("n"))
	msg, ok := cmd().(app.StatusMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("expected error status, got %#v", cmd())
	}
}

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

func TestRankCommandsEmptyQueryKeepsOrder(t *testing.T) {
	cmds := DefaultCommands()
	got := rankCommands(cmds, "")
	if len(got) != len(cmds) || got[0].ID != cmds[0].ID {
		t.Fatalf("order changed: %+v", got)
	}
}

func TestRankCommandsSubstringFirst(t *testing.T) {
	got := rankCommands(DefaultCommands(), "save")
	if len(got) == 0 || got[0].Name != "Save game" {
		t.Fatalf("matches = %+v", got)
	}
}

func TestRankCommandsToleratesTypos(t *testing.T) {
	got := rankCommands(DefaultCommands(), "open setings")
	if len(got) == 0 || got[0].Name != "Open settings" {
		t.Fatalf("matches = %+v", got)
	}
}

func TestRankCommandsFiltersGarbage(t *testing.T) {
	if got := rankCommands(DefaultCommands(), "zzzzzzzzzzzz"); len(got) != 0 {
		t.Fatalf("matches = %+v", got)
	}
}

func TestPaletteEnterRunsSelection(t *testing.T) {
	p := NewPalette(DefaultCommands())
	cmd, closeReq := p.Update(press("enter"))
	if !closeReq {
		t.Fatal("running a command should close the palette")
	}
	msg, ok := cmd().(app.CommandMsg)
	if !ok || msg.ID != app.CmdOpenSettings {
		t.Fatalf("got %#v", cmd())
	}
}

// ---------------------------------------------------------------------------
// Confirm
// ---------------------------------------------------------------------------

func TestConfirmDefaultsToNo(t *testing.T) {
	c := NewConfirmQuit()
	cmd, closeReq := c.Update(press("enter"))
	if !closeReq || cmd != nil {
		t.Fatalf("enter on No should just close, cmd=%v closeReq=%v", cmd, closeReq)
	}
}

func TestConfirmYesEmitsCommand(t *testing.T) {
	c := NewConfirmQuit()
	c.Update(press("h"))
	cmd, closeReq := c.Update(press("enter"))
	if !closeReq || cmd == nil {
		t.Fatal("enter on Yes should close and emit")
	}
	msg, ok := cmd().(app.CommandMsg)
	if !ok || msg.ID != app.CmdQuitConfirmed {
		t.Fatalf("got %#v", cmd())
	}
}

func TestConfirmShortcuts(t *testing.T) {
	c := NewConfirmQuit()
	cmd, closeReq := c.Update(press("y"))
	if !closeReq || cmd == nil {
		t.Fatal("y should confirm")
	}
	c2 := NewConfirmQuit()
	cmd, closeReq = c2.Update(press("n"))
	if !closeReq || cmd != nil {
		t.Fatal("n should decline and close")
	}
}
