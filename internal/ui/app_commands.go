package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/form"
	"orbit/internal/nav"
)

// submitCmd performs one auth call off the UI goroutine. The client applies
// its own request timeout; ctx only carries cancellation from the program.
func submitCmd(ctx context.Context, a form.Authenticator, req form.Request, screen nav.Screen) tea.Cmd {
	return func() tea.Msg {
		return SubmitResultMsg{Screen: screen, Result: req.Do(ctx, a)}
	}
}

func outcomeCmd(o form.Outcome) tea.Cmd {
	return func() tea.Msg { return OutcomeMsg{Outcome: o} }
}

func noticeCmd(n form.Notice) tea.Cmd {
	return func() tea.Msg { return ShowNoticeMsg{Notice: n} }
}

func navigateCmd(t nav.Transition) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Transition: t} }
}
