package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orbit/internal/auth"
	"orbit/internal/nav"
)

// MainView is the signed-in screen: a tab bar over Home, Explore and Profile.
// The active tab is owned by nav.Controller; the app pushes it in via SetTab.
type MainView struct {
	tab     nav.Tab
	home    *HomeView
	explore *ExploreView
	profile *ProfileView
}

var _ View = (*MainView)(nil)

// NewMainView builds the tab views for sess.
func NewMainView(sess auth.Session, tab nav.Tab) *MainView {
	return &MainView{
		tab:     tab,
		home:    &HomeView{},
		explore: &ExploreView{},
		profile: NewProfileView(sess),
	}
}

// Tab returns the active tab.
func (v *MainView) Tab() nav.Tab { return v.tab }

// SetTab switches the visible tab.
func (v *MainView) SetTab(t nav.Tab) { v.tab = t }

// Profile exposes the profile tab.
func (v *MainView) Profile() *ProfileView { return v.profile }

// Init implements View.
func (v *MainView) Init() tea.Cmd { return nil }

// Update implements View. Input goes to the active tab.
func (v *MainView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch v.tab {
	case nav.TabProfile:
		_, cmd = v.profile.Update(msg)
	case nav.TabExplore:
		_, cmd = v.explore.Update(msg)
	default:
		_, cmd = v.home.Update(msg)
	}
	return v, cmd
}

// View implements View.
func (v *MainView) View() string {
	var body string
	switch v.tab {
	case nav.TabProfile:
		body = v.profile.View()
	case nav.TabExplore:
		body = v.explore.View()
	default:
		body = v.home.View()
	}
	return v.tabBar() + "\n\n" + body
}

var tabIcons = map[nav.Tab]string{
	nav.TabHome:    "⌂",
	nav.TabExplore: "✦",
	nav.TabProfile: "☺",
}

func (v *MainView) tabBar() string {
	cells := make([]string, 0, len(nav.Tabs))
	for i, t := range nav.Tabs {
		label := tabIcons[t] + " " + t.String()
		style := Styles.Tab
		if t == v.tab {
			style = Styles.TabActive
		}
		cells = append(cells, style.Render(string(rune('1'+i))+" "+label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// HomeView is the Home tab. It is static.
type HomeView struct{}

var homeTopics = []string{
	"🌌 Milky Way Galaxy",
	"🚀 Space Exploration",
	"🔭 Astronomy Basics",
	"🌍 Earth from Space",
}

func (v *HomeView) Init() tea.Cmd { return nil }
func (v *HomeView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Welcome to Space") + "\n")
	b.WriteString(Styles.Card.Render(
		Styles.CardTitle.Render("Discover the Universe") + "\n" +
			Styles.CardText.Render(`"The universe is under no obligation to make sense to you." – Neil deGrasse Tyson`),
	) + "\n")
	b.WriteString(Styles.Subtitle.Render("Popular Topics:") + "\n")
	for _, t := range homeTopics {
		b.WriteString("  " + Styles.Normal.Render(t) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ExploreView is the Explore tab. It is static.
type ExploreView struct{}

var planets = []string{"Earth", "Mars", "Moon"}

func (v *ExploreView) Init() tea.Cmd { return nil }
func (v *ExploreView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *ExploreView) View() string {
	cards := make([]string, 0, len(planets))
	for _, p := range planets {
		cards = append(cards, Styles.Card.Width(12).Align(lipgloss.Center).Render(Styles.CardTitle.Render(p)))
	}
	return Styles.Title.Render("Explore the Universe") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n" +
		Styles.Normal.Render("Explore different celestial bodies and learn about their unique features.")
}
