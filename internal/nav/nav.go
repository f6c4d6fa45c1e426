// Package nav is the navigation controller: a finite-state machine over the
// outer flow (Register -> Login -> Main) and the tab set inside Main.
//
// Screens never mutate navigation state. They build a Transition with one of
// the constructors below and hand it to Controller.Apply, which checks it
// against the transition table.
package nav

import (
	"errors"
	"fmt"

	"orbit/internal/auth"
)

var (
	// ErrTransitionNotAllowed is returned for transitions missing from the table.
	ErrTransitionNotAllowed = errors.New("nav: transition not allowed")
	// ErrNoSession is returned when Main is requested without a logged-in session.
	ErrNoSession = errors.New("nav: main requires a session")
	// ErrNotInMain is returned for tab operations outside Main.
	ErrNotInMain = errors.New("nav: not in main")
)

// Screen identifies a top-level state.
type Screen int

const (
	ScreenRegister Screen = iota
	ScreenLogin
	ScreenMain
)

func (s Screen) String() string {
	switch s {
	case ScreenRegister:
		return "Register"
	case ScreenLogin:
		return "Login"
	case ScreenMain:
		return "Main"
	default:
		return "Unknown"
	}
}

// Tab identifies a sub-state of Main.
type Tab int

const (
	TabHome Tab = iota
	TabExplore
	TabProfile
)

// Tabs lists the Main sub-states in display order.
var Tabs = []Tab{TabHome, TabExplore, TabProfile}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabExplore:
		return "Explore"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Transition is a request to move to another screen.
// The zero value is not a valid transition.
type Transition struct {
	target  Screen
	replace bool // discard the current entry instead of stacking on it
	session auth.Session
	valid   bool
}

// Target returns the screen the transition leads to.
func (t Transition) Target() Screen { return t.target }

// Replace reports whether the current stack entry is discarded.
func (t Transition) Replace() bool { return t.replace }

func (t Transition) String() string {
	if !t.valid {
		return "<invalid>"
	}
	if t.replace {
		return "replace " + t.target.String()
	}
	return "navigate " + t.target.String()
}

// ToLogin is the Register -> Login transition (link or after registration).
func ToLogin() Transition {
	return Transition{target: ScreenLogin, valid: true}
}

// ToRegister is the Login -> Register link.
func ToRegister() Transition {
	return Transition{target: ScreenRegister, valid: true}
}

// ToMain is the post-login transition. It replaces Login so that back
// navigation from Main never returns to the login form.
func ToMain(s auth.Session) (Transition, error) {
	if s.IsZero() {
		return Transition{}, ErrNoSession
	}
	return Transition{target: ScreenMain, replace: true, session: s, valid: true}, nil
}

// Logout leaves Main for Login and drops the session.
func Logout() Transition {
	return Transition{target: ScreenLogin, replace: true, valid: true}
}

type edge struct {
	from, to Screen
	replace  bool
}

// allowed is the transition table.
var allowed = map[edge]bool{
	{ScreenRegister, ScreenLogin, false}: true,
	{ScreenLogin, ScreenRegister, false}: true,
	{ScreenLogin, ScreenMain, true}:      true,
	{ScreenMain, ScreenLogin, true}:      true,
}

// Controller owns the navigation state.
type Controller struct {
	stack   []Screen
	tab     Tab
	session auth.Session
}

// NewController starts at Register.
func NewController() *Controller {
	return &Controller{stack: []Screen{ScreenRegister}}
}

// Current returns the active top-level screen.
func (c *Controller) Current() Screen {
	return c.stack[len(c.stack)-1]
}

// Depth returns the number of entries on the back stack.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Tab returns the active tab. Only meaningful in Main.
func (c *Controller) Tab() Tab {
	return c.tab
}

// Session returns the session carried into Main.
func (c *Controller) Session() (auth.Session, bool) {
	if c.Current() != ScreenMain || c.session.IsZero() {
		return auth.Session{}, false
	}
	return c.session, true
}

// Apply performs t if the table allows it from the current screen.
func (c *Controller) Apply(t Transition) error {
	if !t.valid {
		return fmt.Errorf("%w: %s", ErrTransitionNotAllowed, t)
	}
	from := c.Current()
	if !allowed[edge{from, t.target, t.replace}] {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, t)
	}
	if t.target == ScreenMain && t.session.IsZero() {
		return ErrNoSession
	}

	if t.replace {
		c.stack[len(c.stack)-1] = t.target
	} else if i := c.indexOf(t.target); i >= 0 {
		// Navigating to a screen already on the stack returns to it.
		c.stack = c.stack[:i+1]
	} else {
		c.stack = append(c.stack, t.target)
	}

	switch {
	case t.target == ScreenMain:
		c.session = t.session
		c.tab = TabHome
	case from == ScreenMain:
		c.session = auth.Session{}
		c.tab = TabHome
	}
	return nil
}

// Back pops the top entry. It is rejected at the root and from Main.
func (c *Controller) Back() error {
	from := c.Current()
	if len(c.stack) < 2 || from == ScreenMain {
		return fmt.Errorf("%w: back from %s", ErrTransitionNotAllowed, from)
	}
	to := c.stack[len(c.stack)-2]
	if !allowed[edge{from, to, false}] {
		return fmt.Errorf("%w: back %s -> %s", ErrTransitionNotAllowed, from, to)
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// SelectTab switches the active tab inside Main.
func (c *Controller) SelectTab(t Tab) error {
	if c.Current() != ScreenMain {
		return ErrNotInMain
	}
	if t < TabHome || t > TabProfile {
		return fmt.Errorf("nav: unknown tab %d", int(t))
	}
	c.tab = t
	return nil
}

// NextTab cycles forward through the tabs.
func (c *Controller) NextTab() error {
	return c.SelectTab(Tab((int(c.tab) + 1) % len(Tabs)))
}

// PrevTab cycles backward through the tabs.
func (c *Controller) PrevTab() error {
	return c.SelectTab(Tab((int(c.tab) + len(Tabs) - 1) % len(Tabs)))
}

func (c *Controller) indexOf(s Screen) int {
	for i, e := range c.stack {
		if e == s {
			return i
		}
	}
	return -1
}
