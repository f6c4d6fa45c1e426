package ui

import (
	"orbit/internal/auth"
	"orbit/internal/form"
	"orbit/internal/nav"
)

// SubmitResultMsg carries the reply to a register or login call.
// Screen is the screen that issued the request; results for a screen that
// is no longer active are dropped.
type SubmitResultMsg struct {
	Screen nav.Screen
	Result auth.Result
}

// OutcomeMsg is emitted by a form once it has resolved a result.
type OutcomeMsg struct {
	Outcome form.Outcome
}

// NavigateMsg asks the app to apply a transition (e.g. following a form link).
type NavigateMsg struct {
	Transition nav.Transition
}

// BackMsg asks the app to pop the back stack (Esc on a form).
type BackMsg struct{}

// ShowNoticeMsg pushes a blocking notification.
type ShowNoticeMsg struct {
	Notice form.Notice
}

// DismissModalMsg is sent when the user dismisses a modal (Esc, Enter on a notice).
type DismissModalMsg struct{}

// SelectTabMsg switches the Main screen to Tab.
type SelectTabMsg struct {
	Tab nav.Tab
}

// CycleTabMsg moves the active tab by Step (wrapping).
type CycleTabMsg struct {
	Step int
}

// ShowLogoutMsg opens the logout confirmation (Profile "Log Out" or SPC a o).
type ShowLogoutMsg struct{}

// LogoutMsg is sent when the user confirms logout.
type LogoutMsg struct{}
