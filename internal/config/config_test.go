package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MENUSTACK_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Keys.Dismiss != "esc" {
		t.Fatalf("default dismiss = %q", c.Keys.Dismiss)
	}
	if c.Keys.Menu != "m" || c.Keys.Palette != "ctrl+k" {
		t.Fatalf("default keys = %+v", c.Keys)
	}
	if c.Database.Path == "" {
		t.Fatal("default db path empty")
	}
}

func TestLoadFromFileAndNormalization(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[keys]\ndismiss = \"Control+D\"\n\n[ui]\nstage_title = \"Arena\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MENUSTACK_CONFIG", path)
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Keys.Dismiss != "ctrl+d" {
		t.Fatalf("dismiss = %q, want ctrl+d", c.Keys.Dismiss)
	}
	if c.UI.StageTitle != "Arena" {
		t.Fatalf("stage title = %q", c.UI.StageTitle)
	}
}

func TestLoadRejectsDuplicateBindings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[keys]\ndismiss = \"m\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MENUSTACK_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("expected duplicate-binding error")
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Esc":       "esc",
		"Control+K": "ctrl+k",
		"Return":    "enter",
		" ":         "space",
		"spacebar":  "space",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
