package ui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orbit/internal/auth"
	"orbit/internal/form"
	"orbit/internal/nav"
)

// AppModel is the root model. It owns the navigation controller and the
// overlay stack, and rebuilds the screen view on every transition so form
// state never survives a screen change.
type AppModel struct {
	Nav        *nav.Controller
	Client     form.Authenticator
	Logger     *slog.Logger
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	ctx    context.Context
	screen View
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model starting on the Register screen.
func NewAppModel(ctx context.Context, client form.Authenticator, logger *slog.Logger) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &AppModel{
		Nav:        nav.NewController(),
		Client:     client,
		Logger:     logger,
		KeyHandler: NewKeyHandler(defaultKeybinds()),
		ctx:        ctx,
	}
	m.screen = m.newScreenView()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// A modal blocks everything underneath it.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Nav.Current()); consumed {
			return a, cmd
		}
	case SubmitResultMsg:
		if msg.Screen != a.Nav.Current() {
			a.Logger.Warn("dropping stale auth result",
				"issued_on", msg.Screen.String(), "current", a.Nav.Current().String())
			return a, nil
		}
	case OutcomeMsg:
		// The transition happens first so the notice overlays the new screen.
		var cmd tea.Cmd
		if t := msg.Outcome.Transition; t != nil {
			cmd = a.apply(*t)
		}
		a.Overlays.Push(Overlay{View: NewNoticeModal(msg.Outcome.Notice)})
		return a, cmd
	case NavigateMsg:
		return a, a.apply(msg.Transition)
	case BackMsg:
		if err := a.Nav.Back(); err != nil {
			a.Logger.Debug("back ignored", "screen", a.Nav.Current().String(), "err", err)
			return a, nil
		}
		a.KeyHandler.Reset()
		a.screen = a.newScreenView()
		return a, a.screen.Init()
	case ShowNoticeMsg:
		a.Overlays.Push(Overlay{View: NewNoticeModal(msg.Notice)})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case SelectTabMsg:
		if err := a.Nav.SelectTab(msg.Tab); err != nil {
			a.Logger.Debug("tab selection ignored", "tab", msg.Tab.String(), "err", err)
			return a, nil
		}
		a.syncTab()
		return a, nil
	case CycleTabMsg:
		var err error
		if msg.Step < 0 {
			err = a.Nav.PrevTab()
		} else {
			err = a.Nav.NextTab()
		}
		if err == nil {
			a.syncTab()
		}
		return a, nil
	case ShowLogoutMsg:
		if a.Nav.Current() == nav.ScreenMain {
			a.Overlays.Push(Overlay{View: NewLogoutConfirmModal()})
		}
		return a, nil
	case LogoutMsg:
		a.Overlays.Pop()
		return a, a.apply(nav.Logout())
	}

	v, cmd := a.screen.Update(msg)
	a.screen = v
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Overlays.Len() > 0 {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.Overlays.View())
		}
		return a.Overlays.View()
	}
	var b strings.Builder
	b.WriteString(a.screen.View())
	if help := RenderKeybindHelp(a.KeyHandler, a.Nav.Current()); help != "" {
		b.WriteString("\n" + help)
	} else {
		b.WriteString("\n\n" + Styles.Hint.Render(screenHints(a.Nav.Current())))
	}
	return b.String()
}

// apply runs t through the controller and swaps in a fresh screen view.
func (m *AppModel) apply(t nav.Transition) tea.Cmd {
	from := m.Nav.Current()
	if err := m.Nav.Apply(t); err != nil {
		m.Logger.Error("navigation rejected", "from", from.String(), "transition", t.String(), "err", err)
		return nil
	}
	m.Logger.Info("navigated", "from", from.String(), "to", m.Nav.Current().String(), "depth", m.Nav.Depth())
	m.KeyHandler.Reset()
	m.screen = m.newScreenView()
	return m.screen.Init()
}

func (m *AppModel) newScreenView() View {
	switch m.Nav.Current() {
	case nav.ScreenLogin:
		return NewLoginView(m.ctx, m.Client)
	case nav.ScreenMain:
		sess, ok := m.Nav.Session()
		if !ok {
			// Unreachable: the controller only enters Main with a session.
			return NewLoginView(m.ctx, m.Client)
		}
		return NewMainView(sess, m.Nav.Tab())
	default:
		return NewRegisterView(m.ctx, m.Client)
	}
}

func (m *AppModel) syncTab() {
	if mv, ok := m.screen.(*MainView); ok {
		mv.SetTab(m.Nav.Tab())
	}
}

// Session returns the signed-in session, if any.
func (m *AppModel) Session() (auth.Session, bool) {
	return m.Nav.Session()
}
