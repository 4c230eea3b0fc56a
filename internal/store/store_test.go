package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettingFallbackAndUpsert(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Setting("difficulty", "normal")
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if got != "normal" {
		t.Fatalf("unset setting = %q, want fallback", got)
	}

	if err := s.SetSetting("difficulty", "hard"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := s.SetSetting("difficulty", "brutal"); err != nil {
		t.Fatalf("SetSetting upsert: %v", err)
	}
	got, err = s.Setting("difficulty", "normal")
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if got != "brutal" {
		t.Fatalf("setting = %q, want brutal", got)
	}
}

func TestSaveSlotRoundTrip(t *testing.T) {
	s := openTestStore(t)

	slot, err := s.CreateSaveSlot("Chapter 1")
	if err != nil {
		t.Fatalf("CreateSaveSlot: %v", err)
	}
	if slot.ID == "" || slot.CreatedAt == "" {
		t.Fatalf("slot missing generated fields: %+v", slot)
	}

	slots, err := s.SaveSlots()
	if err != nil {
		t.Fatalf("SaveSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].Name != "Chapter 1" {
		t.Fatalf("slots = %+v", slots)
	}

	if err := s.DeleteSaveSlot(slot.ID); err != nil {
		t.Fatalf("DeleteSaveSlot: %v", err)
	}
	if err := s.DeleteSaveSlot(slot.ID); err != nil {
		t.Fatalf("deleting a missing slot should not error: %v", err)
	}
	slots, err = s.SaveSlots()
	if err != nil {
		t.Fatalf("SaveSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slots after delete = %+v", slots)
	}
}
