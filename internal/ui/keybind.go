package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/nav"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC t" for SPC then t.
// Single keys: "q", "1", "ctrl+c", "left".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	screens      map[string][]nav.Screen // nil/empty = applies to all screens
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		screens:      make(map[string][]nav.Screen),
	}
}

// Bind registers a key sequence that applies on every screen.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindOn(seq, cmd, desc)
}

// BindOn registers a key sequence limited to the given screens.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) BindOn(seq string, cmd tea.Cmd, desc string, screens ...nav.Screen) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(screens) > 0 {
		r.screens[n] = screens
	} else {
		delete(r.screens, n)
	}
}

// Lookup returns the command for a key sequence on screen, or nil.
func (r *KeybindRegistry) Lookup(seq string, screen nav.Screen) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, screen) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding on screen starts with seq and a space.
func (r *KeybindRegistry) HasPrefix(seq string, screen nav.Screen) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) && r.appliesTo(k, screen) {
			return true
		}
	}
	return false
}

// groupLabel names leader groups in the help bar.
var groupLabel = map[string]string{
	"t": "Tab",
	"a": "Account",
}

// LeaderHints returns hints for the next key after currentSeq on screen.
// An empty currentSeq means "just pressed SPC".
func (r *KeybindRegistry) LeaderHints(currentSeq string, screen nav.Screen) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, screen) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix+next, screen) {
			if label, ok := groupLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if d, ok := r.descriptions[seq]; ok {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, screen nav.Screen) bool {
	screens, ok := r.screens[seq]
	if !ok {
		return true
	}
	for _, s := range screens {
		if s == screen {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "q" -> "q".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if len(parts) == 0 && seq == " " {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string // tea.KeyMsg.String() format
	LeaderSeq     string
	LeaderWaiting bool
	Buffer        []string
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg for the given screen. Returns (consumed, cmd).
// Consumed keys must not reach the views. The leader key only activates on
// screens that have leader bindings, so forms receive spaces as text.
func (h *KeyHandler) Handle(msg tea.KeyMsg, screen nav.Screen) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, screen); c != nil {
			h.Reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq, screen) {
			h.Reset()
		}
		return true, nil
	}

	if s == h.LeaderKey && h.Registry.HasPrefix(h.LeaderSeq, screen) {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), screen); c != nil {
		return true, c
	}
	return false, nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// defaultKeybinds wires the global bindings. Form screens only get ctrl+c so
// that every printable key reaches the focused input.
func defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")

	selectTab := func(t nav.Tab) tea.Cmd {
		return func() tea.Msg { return SelectTabMsg{Tab: t} }
	}
	cycle := func(step int) tea.Cmd {
		return func() tea.Msg { return CycleTabMsg{Step: step} }
	}
	showLogout := func() tea.Msg { return ShowLogoutMsg{} }

	reg.BindOn("q", tea.Quit, "Quit", nav.ScreenMain)
	reg.BindOn("1", selectTab(nav.TabHome), "Home", nav.ScreenMain)
	reg.BindOn("2", selectTab(nav.TabExplore), "Explore", nav.ScreenMain)
	reg.BindOn("3", selectTab(nav.TabProfile), "Profile", nav.ScreenMain)
	reg.BindOn("right", cycle(1), "Next tab", nav.ScreenMain)
	reg.BindOn("l", cycle(1), "Next tab", nav.ScreenMain)
	reg.BindOn("left", cycle(-1), "Previous tab", nav.ScreenMain)
	reg.BindOn("h", cycle(-1), "Previous tab", nav.ScreenMain)

	reg.BindOn("SPC t h", selectTab(nav.TabHome), "Home", nav.ScreenMain)
	reg.BindOn("SPC t e", selectTab(nav.TabExplore), "Explore", nav.ScreenMain)
	reg.BindOn("SPC t p", selectTab(nav.TabProfile), "Profile", nav.ScreenMain)
	reg.BindOn("SPC a o", showLogout, "Log out", nav.ScreenMain)
	reg.BindOn("SPC q", tea.Quit, "Quit", nav.ScreenMain)
	return reg
}
