package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orbit/internal/auth"
	"orbit/internal/form"
	"orbit/internal/nav"
	"orbit/internal/ui/textutil"
)

const (
	focusSubmit = "submit"
	focusLink   = "link"
	inputWidth  = 32
)

// credentials is the part of form.RegisterForm / form.LoginForm the view drives.
type credentials interface {
	Status() form.Status
	Begin() (form.Request, error)
	Resolve(auth.Result) form.Outcome
}

// FormView renders a credential form: inputs, a submit button and a link to
// the sibling screen. While a request is outstanding it shows a spinner and
// ignores input; after a success it stays locked until the screen changes.
type FormView struct {
	screen      nav.Screen
	title       string
	submitLabel string
	prompt      string
	linkLabel   string
	link        nav.Transition

	labels []string
	inputs []textinput.Model
	focus  *FocusManager

	spinner spinner.Model
	form    credentials
	store   func(values []string)

	ctx    context.Context
	client form.Authenticator
}

var _ View = (*FormView)(nil)

type fieldSpec struct {
	label  string
	secret bool
}

func newFormView(ctx context.Context, client form.Authenticator, screen nav.Screen, fields []fieldSpec) *FormView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Selected

	v := &FormView{
		screen:  screen,
		spinner: s,
		ctx:     ctx,
		client:  client,
	}
	order := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.label
		ti.CharLimit = 256
		ti.Width = inputWidth
		if f.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		v.labels = append(v.labels, f.label)
		v.inputs = append(v.inputs, ti)
		order = append(order, f.label)
	}
	order = append(order, focusSubmit, focusLink)
	v.focus = NewFocusManager(order...)
	v.focus.OnChange = func(from, to string) { v.syncFocus() }
	v.syncFocus()
	return v
}

// NewRegisterView builds the Register screen.
func NewRegisterView(ctx context.Context, client form.Authenticator) *FormView {
	f := &form.RegisterForm{}
	v := newFormView(ctx, client, nav.ScreenRegister, []fieldSpec{
		{label: "Username"},
		{label: "Email"},
		{label: "Password", secret: true},
	})
	v.title = "Register"
	v.submitLabel = "Register"
	v.prompt = "Already have an account?"
	v.linkLabel = "Login"
	v.link = nav.ToLogin()
	v.form = f
	v.store = func(vals []string) {
		f.Username, f.Email, f.Password = vals[0], vals[1], vals[2]
	}
	return v
}

// NewLoginView builds the Login screen.
func NewLoginView(ctx context.Context, client form.Authenticator) *FormView {
	f := &form.LoginForm{}
	v := newFormView(ctx, client, nav.ScreenLogin, []fieldSpec{
		{label: "Email"},
		{label: "Password", secret: true},
	})
	v.title = "Login"
	v.submitLabel = "Login"
	v.prompt = "Don't have an account?"
	v.linkLabel = "Register"
	v.link = nav.ToRegister()
	v.form = f
	v.store = func(vals []string) {
		f.Email, f.Password = vals[0], vals[1]
	}
	return v
}

// Screen reports which screen this form belongs to.
func (v *FormView) Screen() nav.Screen { return v.screen }

// Status returns the submission state of the underlying form.
func (v *FormView) Status() form.Status { return v.form.Status() }

// Value returns the current text of the input labelled label.
func (v *FormView) Value(label string) string {
	for i, l := range v.labels {
		if l == label {
			return v.inputs[i].Value()
		}
	}
	return ""
}

// Init implements View.
func (v *FormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		if v.form.Status() != form.StatusSubmitting {
			return v, nil
		}
		return v, outcomeCmd(v.form.Resolve(msg.Result))
	case spinner.TickMsg:
		if v.form.Status() != form.StatusSubmitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if v.locked() {
			return v, nil
		}
		return v, v.handleKey(msg)
	}
	return v, v.updateFocusedInput(msg)
}

func (v *FormView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		v.focus.Next()
		return nil
	case "shift+tab", "up":
		v.focus.Prev()
		return nil
	case "esc":
		return func() tea.Msg { return BackMsg{} }
	case "enter":
		switch v.focus.Current {
		case focusSubmit:
			return v.submit()
		case focusLink:
			return navigateCmd(v.link)
		case v.labels[len(v.labels)-1]:
			return v.submit()
		default:
			v.focus.Next()
			return nil
		}
	}
	return v.updateFocusedInput(msg)
}

func (v *FormView) updateFocusedInput(msg tea.Msg) tea.Cmd {
	i := v.focusedInput()
	if i < 0 {
		return nil
	}
	var cmd tea.Cmd
	v.inputs[i], cmd = v.inputs[i].Update(msg)
	return cmd
}

// submit snapshots the inputs into the form and starts the request.
func (v *FormView) submit() tea.Cmd {
	vals := make([]string, len(v.inputs))
	for i := range v.inputs {
		vals[i] = v.inputs[i].Value()
	}
	v.store(vals)
	req, err := v.form.Begin()
	if err != nil {
		if n, ok := form.NoticeFor(err); ok {
			return noticeCmd(n)
		}
		return nil
	}
	return tea.Batch(v.spinner.Tick, submitCmd(v.ctx, v.client, req, v.screen))
}

// locked reports whether input is ignored: a request is in flight or one has
// already succeeded.
func (v *FormView) locked() bool {
	st := v.form.Status()
	return st == form.StatusSubmitting || st == form.StatusSucceeded
}

func (v *FormView) focusedInput() int {
	for i, l := range v.labels {
		if v.focus.Is(l) {
			return i
		}
	}
	return -1
}

func (v *FormView) syncFocus() {
	for i := range v.inputs {
		if v.focus.Is(v.labels[i]) {
			v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
}

// View implements View.
func (v *FormView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.title) + "\n")

	labelWidth := 0
	for _, l := range v.labels {
		if w := textutil.VisualWidth(l); w > labelWidth {
			labelWidth = w
		}
	}
	for i, l := range v.labels {
		label := textutil.PadRightVisual(l, labelWidth)
		if v.focus.Is(l) {
			label = Styles.Selected.Render(label)
		} else {
			label = Styles.Muted.Render(label)
		}
		b.WriteString(label + "  " + v.inputs[i].View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case v.form.Status() == form.StatusSubmitting:
		b.WriteString(Styles.ButtonDisabled.Render(v.submitLabel) + " " + v.spinner.View())
	case v.locked():
		b.WriteString(Styles.ButtonDisabled.Render(v.submitLabel))
	case v.focus.Is(focusSubmit):
		b.WriteString(Styles.ButtonFocused.Render(v.submitLabel))
	default:
		b.WriteString(Styles.Button.Render(v.submitLabel))
	}
	b.WriteString("\n\n")

	link := Styles.Link.Render(v.linkLabel)
	if v.focus.Is(focusLink) && !v.locked() {
		link = Styles.LinkFocused.Render(v.linkLabel)
	}
	b.WriteString(Styles.Normal.Render(v.prompt) + " " + link)
	return b.String()
}
