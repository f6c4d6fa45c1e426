package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"orbit/internal/nav"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// With a buffer such as "SPC t" it lists the next-level keys.
func RenderKeybindHelp(keyHandler *KeyHandler, screen nav.Screen) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := strings.Join(keyHandler.Buffer, " ")
	hints := keyHandler.Registry.LeaderHints(currentSeq, screen)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	return boxStyle.Render(Styles.Muted.Render(currentSeq) + " " + helpModel.ShortHelpView(bindings))
}

// screenHints is the static footer for each screen.
func screenHints(screen nav.Screen) string {
	switch screen {
	case nav.ScreenMain:
		return "1-3/h/l: tabs  SPC: commands  q: quit"
	default:
		return "tab/shift+tab: move  enter: select  ctrl+c: quit"
	}
}
