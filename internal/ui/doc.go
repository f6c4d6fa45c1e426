// Package ui is the Bubble Tea front end of orbit.
//
// Building blocks:
//   - View: a screen, a tab or a modal (Elm-style Init/Update/View)
//   - AppModel: root model; owns nav.Controller and rebuilds the screen view
//     on each transition
//   - FormView: the Register and Login screens, driving form.RegisterForm and
//     form.LoginForm
//   - MainView: tab bar over Home, Explore and Profile
//   - OverlayStack: blocking modals (notices, logout confirmation)
//   - FocusManager: tab order across form controls
//   - KeybindRegistry / KeyHandler: per-screen bindings with an SPC leader
//
// Network calls run as tea.Cmds and report back with SubmitResultMsg, so the
// update loop never blocks.
package ui
