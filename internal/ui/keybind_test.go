package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/nav"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.BindOn("q", tea.Quit, "Quit", nav.ScreenMain)
	reg.BindOn("SPC q", tea.Quit, "Quit", nav.ScreenMain)

	if reg.Lookup("ctrl+c", nav.ScreenRegister) == nil {
		t.Error("expected ctrl+c bound on every screen")
	}
	if reg.Lookup("q", nav.ScreenMain) == nil {
		t.Error("expected q bound on Main")
	}
	if reg.Lookup("q", nav.ScreenLogin) != nil {
		t.Error("q must not be bound on Login; it is typed into inputs")
	}
	if reg.Lookup("SPC q", nav.ScreenMain) == nil {
		t.Error("expected SPC q bound on Main")
	}
	if reg.Lookup("unknown", nav.ScreenMain) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.BindOn("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "", nav.ScreenMain)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), nav.ScreenMain)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), nav.ScreenMain)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_SpaceIsTextOnForms(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	for _, s := range []nav.Screen{nav.ScreenRegister, nav.ScreenLogin} {
		consumed, _ := h.Handle(keyMsg(" "), s)
		if consumed {
			t.Errorf("%s: space consumed by leader", s)
		}
		if h.LeaderWaiting {
			t.Errorf("%s: leader armed", s)
		}
		for _, k := range []string{"q", "1", "h", "l"} {
			if consumed, _ := h.Handle(keyMsg(k), s); consumed {
				t.Errorf("%s: %q consumed; it should reach the input", s, k)
			}
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())

	h.Handle(keyMsg(" "), nav.ScreenMain)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}
	consumed, cmd := h.Handle(keyMsg("esc"), nav.ScreenMain)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_NestedLeader(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())

	h.Handle(keyMsg(" "), nav.ScreenMain)
	consumed, cmd := h.Handle(keyMsg("t"), nav.ScreenMain)
	if !consumed || cmd != nil || !h.LeaderWaiting {
		t.Fatalf("SPC t should wait for more keys: consumed=%v cmd=%v waiting=%v", consumed, cmd, h.LeaderWaiting)
	}
	_, cmd = h.Handle(keyMsg("p"), nav.ScreenMain)
	if cmd == nil {
		t.Fatal("expected command for SPC t p")
	}
	if msg, ok := cmd().(SelectTabMsg); !ok || msg.Tab != nav.TabProfile {
		t.Errorf("SPC t p = %#v, want SelectTabMsg{Profile}", cmd())
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	h.Handle(keyMsg(" "), nav.ScreenMain)
	consumed, cmd := h.Handle(keyMsg("z"), nav.ScreenMain)
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestLeaderHints(t *testing.T) {
	reg := defaultKeybinds()

	top := reg.LeaderHints("", nav.ScreenMain)
	if top["t"] != "Tab" || top["a"] != "Account" || top["q"] != "Quit" {
		t.Errorf("top-level hints = %v", top)
	}
	tabs := reg.LeaderHints("SPC t", nav.ScreenMain)
	if tabs["h"] != "Home" || tabs["e"] != "Explore" || tabs["p"] != "Profile" {
		t.Errorf("SPC t hints = %v", tabs)
	}
	if got := reg.LeaderHints("", nav.ScreenLogin); len(got) != 0 {
		t.Errorf("Login has no leader bindings, got %v", got)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	if got := RenderKeybindHelp(h, nav.ScreenMain); got != "" {
		t.Errorf("help shown without leader: %q", got)
	}
	h.Handle(keyMsg(" "), nav.ScreenMain)
	got := RenderKeybindHelp(h, nav.ScreenMain)
	for _, want := range []string{"SPC", "Tab", "Account", "esc"} {
		if !strings.Contains(got, want) {
			t.Errorf("help missing %q:\n%s", want, got)
		}
	}
}

// keyMsg builds the tea.KeyMsg a terminal would deliver for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
