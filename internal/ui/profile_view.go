package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/auth"
	"orbit/internal/ui/textutil"
)

// Settings entries on the Profile tab. Only Log Out does anything.
const (
	SettingChangePassword = "🔒 Change Password"
	SettingUpdateEmail    = "✉️ Update Email"
	SettingLogOut         = "🚪 Log Out"
)

// profileWidth is the widest greeting kept on one line.
const profileWidth = 48

var profileSettings = []string{SettingChangePassword, SettingUpdateEmail, SettingLogOut}

// ProfileView shows the signed-in user. It takes a session, so it cannot be
// built without a non-empty username.
type ProfileView struct {
	session  auth.Session
	Selected int
}

var _ View = (*ProfileView)(nil)

// NewProfileView creates the Profile tab for sess.
func NewProfileView(sess auth.Session) *ProfileView {
	return &ProfileView{session: sess}
}

// Init implements View.
func (v *ProfileView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "j", "down":
		if v.Selected < len(profileSettings)-1 {
			v.Selected++
		}
	case "k", "up":
		if v.Selected > 0 {
			v.Selected--
		}
	case "enter":
		if profileSettings[v.Selected] == SettingLogOut {
			return v, func() tea.Msg { return ShowLogoutMsg{} }
		}
	}
	return v, nil
}

// View implements View.
func (v *ProfileView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Profile") + "\n")
	b.WriteString(Styles.Avatar.Render(v.session.Initial()) + "\n")
	b.WriteString(Styles.Normal.Render(greeting(v.session.Username())) + "\n")
	b.WriteString(Styles.Card.Render(
		Styles.CardTitle.Render("Your Space Journey") + "\n" +
			Styles.CardText.Render(`"You are the navigator of your own universe."`),
	) + "\n")
	b.WriteString(Styles.Subtitle.Render("Settings:") + "\n")
	for i, s := range profileSettings {
		if i == v.Selected {
			b.WriteString(Styles.Selected.Render("> "+s) + "\n")
		} else {
			b.WriteString("  " + Styles.Normal.Render(s) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// greeting never shortens the username; a long one moves to its own line.
func greeting(username string) string {
	g := "Welcome, " + username + "!"
	if textutil.VisualWidth(g) <= profileWidth {
		return g
	}
	return "Welcome,\n" + username + "!"
}
