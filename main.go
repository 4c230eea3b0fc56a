package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"menustack/app"
	"menustack/internal/config"
	"menustack/internal/store"
	"menustack/nav"
	"menustack/panels"
	"menustack/stage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	stg := stage.New(cfg.UI.StageTitle)

	var opts []nav.Option
	if diag := navDiagnostics(cfg); diag != nil {
		opts = append(opts, nav.WithDiagnostics(diag))
	}
	controller := nav.New(stg.Locked, opts...)

	m := app.NewModel(stg, app.NewKeyRegistry(cfg.Keys), controller)
	m.OpenPause = func() app.Panel { return panels.NewPause() }
	m.OpenSettings = func() app.Panel { return panels.NewSettings(st) }
	m.OpenSaves = func() app.Panel { return panels.NewSaves(st) }
	m.OpenPalette = func() app.Panel { return panels.NewPalette(panels.DefaultCommands()) }
	m.OpenConfirmQuit = func() app.Panel { return panels.NewConfirmQuit() }

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "menustack: %v\n", err)
		os.Exit(1)
	}
}

// navDiagnostics wires refused-operation logging to a file next to the
// database when MENUSTACK_DEBUG is set. Refusals stay silent otherwise.
func navDiagnostics(cfg config.Config) func(string, ...any) {
	if os.Getenv("MENUSTACK_DEBUG") == "" {
		return nil
	}
	path := filepath.Join(filepath.Dir(cfg.Database.Path), "menustack.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("nav diagnostics disabled: %v", err)
		return nil
	}
	return log.New(f, "nav ", log.LstdFlags).Printf
}
