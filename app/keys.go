package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"menustack/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// Key scopes. Panels report theirs through Panel.Scope; the footer and
// dispatch resolve bindings scope-first with a global fallback.
const (
	ScopeGlobal   = "global"
	ScopeStage    = "stage"
	ScopePause    = "panel:pause"
	ScopeSettings = "panel:settings"
	ScopeSaves    = "panel:saves"
	ScopePalette  = "panel:palette"
	ScopeConfirm  = "panel:confirm"
)

const (
	ActionDismiss    Action = "dismiss"
	ActionQuit       Action = "quit"
	ActionMenu       Action = "menu"
	ActionPalette    Action = "palette"
	ActionToggleLock Action = "toggle_lock"
	ActionNavigate   Action = "navigate"
	ActionSelect     Action = "select"
	ActionField      Action = "field"
	ActionSave       Action = "save"
	ActionNew        Action = "new"
	ActionDelete     Action = "delete"
)

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

// NewKeyRegistry builds the binding table. The dismiss, menu and palette
// chords come from configuration; everything else is fixed.
func NewKeyRegistry(keys config.KeysConfig) *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(ScopeGlobal, ActionDismiss, []string{keys.Dismiss}, "close top panel")
	reg(ScopeGlobal, ActionQuit, []string{"ctrl+c"}, "quit")

	reg(ScopeStage, ActionMenu, []string{keys.Menu}, "menu")
	reg(ScopeStage, ActionPalette, []string{keys.Palette}, "commands")
	reg(ScopeStage, ActionToggleLock, []string{"l"}, "toggle lock")
	reg(ScopeStage, ActionQuit, []string{"q"}, "quit")

	reg(ScopePause, ActionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(ScopePause, ActionSelect, []string{"enter"}, "select")

	reg(ScopeSettings, ActionField, []string{"tab", "shift+tab"}, "next field")
	reg(ScopeSettings, ActionSave, []string{"enter"}, "save")

	reg(ScopeSaves, ActionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(ScopeSaves, ActionNew, []string{"n"}, "new slot")
	reg(ScopeSaves, ActionDelete, []string{"d"}, "delete")

	reg(ScopePalette, ActionNavigate, []string{"up", "down", "ctrl+p", "ctrl+n"}, "navigate")
	reg(ScopePalette, ActionSelect, []string{"enter"}, "run")

	reg(ScopeConfirm, ActionNavigate, []string{"h/l", "h", "l", "left", "right"}, "choose")
	reg(ScopeConfirm, ActionSelect, []string{"enter"}, "confirm")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}
		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

// IsAction reports whether the pressed key maps to action in scope,
// falling back to the global scope.
func (r *KeyRegistry) IsAction(keyName string, action Action, scope string) bool {
	b := r.Lookup(keyName, scope)
	return b != nil && b.Action == action
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = config.NormalizeKey(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		if b := r.lookupInScope(keyName, ScopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// BindingsForScope returns scope bindings followed by global ones whose
// keys the scope has not shadowed, for footer hints.
func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindingsByScope[scope])+2)
	for _, b := range r.bindingsByScope[scope] {
		out = append(out, *b)
	}
	if scope != ScopeGlobal {
		for _, b := range r.bindingsByScope[ScopeGlobal] {
			if !r.scopeHasAnyKey(scope, b.Keys) {
				out = append(out, *b)
			}
		}
	}
	return out
}

// HelpBindings converts scope bindings for bubbles help rendering.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := config.NormalizeKey(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
