package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/form"
)

// NoticeModal shows a success or error message until acknowledged.
type NoticeModal struct {
	Notice form.Notice
}

var _ View = (*NoticeModal)(nil)

// NewNoticeModal wraps n in a modal.
func NewNoticeModal(n form.Notice) *NoticeModal {
	return &NoticeModal{Notice: n}
}

// Init implements View.
func (m *NoticeModal) Init() tea.Cmd { return nil }

// Update implements View. Enter, Esc or space dismiss; other keys are swallowed.
func (m *NoticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *NoticeModal) View() string {
	box, title := Styles.Box, Styles.TitleSuccess
	if m.Notice.Title == form.TitleError {
		box, title = Styles.BoxDanger, Styles.TitleWarning
	}
	content := title.Render(m.Notice.Title) + "\n\n" +
		Styles.Label.Render(m.Notice.Text) + "\n\n" +
		Styles.Hint.Render("Enter: OK")
	return box.Render(content)
}
