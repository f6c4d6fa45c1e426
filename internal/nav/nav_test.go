package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit/internal/auth"
	"orbit/internal/auth/authtest"
)

func loggedIn(t *testing.T, username string) *Controller {
	t.Helper()
	c := NewController()
	require.NoError(t, c.Apply(ToLogin()))
	tr, err := ToMain(authtest.Session(t, username))
	require.NoError(t, err)
	require.NoError(t, c.Apply(tr))
	return c
}

func TestController_InitialState(t *testing.T) {
	c := NewController()
	assert.Equal(t, ScreenRegister, c.Current())
	assert.Equal(t, 1, c.Depth())
	_, ok := c.Session()
	assert.False(t, ok)
}

func TestController_RegisterLoginLinks(t *testing.T) {
	c := NewController()

	require.NoError(t, c.Apply(ToLogin()))
	assert.Equal(t, ScreenLogin, c.Current())
	assert.Equal(t, 2, c.Depth())

	// Login -> Register returns to the existing entry rather than stacking.
	require.NoError(t, c.Apply(ToRegister()))
	assert.Equal(t, ScreenRegister, c.Current())
	assert.Equal(t, 1, c.Depth())

	require.NoError(t, c.Apply(ToLogin()))
	require.NoError(t, c.Back())
	assert.Equal(t, ScreenRegister, c.Current())
}

func TestController_LoginToMainCarriesSession(t *testing.T) {
	c := loggedIn(t, "nova")

	assert.Equal(t, ScreenMain, c.Current())
	assert.Equal(t, TabHome, c.Tab())
	s, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, "nova", s.Username())
	assert.Equal(t, 2, c.Depth(), "Main replaces Login")
}

func TestController_BackFromMainRejected(t *testing.T) {
	c := loggedIn(t, "nova")
	err := c.Back()
	assert.True(t, errors.Is(err, ErrTransitionNotAllowed))
	assert.Equal(t, ScreenMain, c.Current())
}

func TestController_BackAtRootRejected(t *testing.T) {
	c := NewController()
	assert.ErrorIs(t, c.Back(), ErrTransitionNotAllowed)
}

func TestController_DisallowedTransitions(t *testing.T) {
	sess := authtest.Session(t, "nova")
	toMain, err := ToMain(sess)
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(c *Controller)
		tr    Transition
	}{
		{"register to main", func(c *Controller) {}, toMain},
		{"register to register", func(c *Controller) {}, ToRegister()},
		{"register logout", func(c *Controller) {}, Logout()},
		{"login to login", func(c *Controller) { _ = c.Apply(ToLogin()) }, ToLogin()},
		{"main to register", func(c *Controller) { _ = c.Apply(ToLogin()); _ = c.Apply(toMain) }, ToRegister()},
		{"main to main", func(c *Controller) { _ = c.Apply(ToLogin()); _ = c.Apply(toMain) }, toMain},
		{"zero transition", func(c *Controller) {}, Transition{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			tt.setup(c)
			before := c.Current()
			err := c.Apply(tt.tr)
			assert.ErrorIs(t, err, ErrTransitionNotAllowed)
			assert.Equal(t, before, c.Current())
		})
	}
}

func TestToMain_RequiresSession(t *testing.T) {
	_, err := ToMain(auth.Session{})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestController_Tabs(t *testing.T) {
	c := loggedIn(t, "nova")

	require.NoError(t, c.SelectTab(TabProfile))
	assert.Equal(t, TabProfile, c.Tab())
	require.NoError(t, c.SelectTab(TabExplore))
	assert.Equal(t, TabExplore, c.Tab())
	require.NoError(t, c.SelectTab(TabHome))
	assert.Equal(t, TabHome, c.Tab())

	require.NoError(t, c.PrevTab())
	assert.Equal(t, TabProfile, c.Tab())
	require.NoError(t, c.NextTab())
	assert.Equal(t, TabHome, c.Tab())

	assert.Error(t, c.SelectTab(Tab(7)))

	// Tab changes never touch the session.
	s, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, "nova", s.Username())
}

func TestController_TabsOutsideMain(t *testing.T) {
	c := NewController()
	assert.ErrorIs(t, c.SelectTab(TabProfile), ErrNotInMain)
	assert.ErrorIs(t, c.NextTab(), ErrNotInMain)
}

func TestController_LogoutClearsSession(t *testing.T) {
	c := loggedIn(t, "nova")
	require.NoError(t, c.SelectTab(TabProfile))

	require.NoError(t, c.Apply(Logout()))
	assert.Equal(t, ScreenLogin, c.Current())
	assert.Equal(t, TabHome, c.Tab())
	_, ok := c.Session()
	assert.False(t, ok)

	// A fresh login is required to get back in.
	tr, err := ToMain(authtest.Session(t, "orion"))
	require.NoError(t, err)
	require.NoError(t, c.Apply(tr))
	s, _ := c.Session()
	assert.Equal(t, "orion", s.Username())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Register", ScreenRegister.String())
	assert.Equal(t, "Login", ScreenLogin.String())
	assert.Equal(t, "Main", ScreenMain.String())
	assert.Equal(t, "Unknown", Screen(9).String())
	assert.Equal(t, "Home", TabHome.String())
	assert.Equal(t, "Explore", TabExplore.String())
	assert.Equal(t, "Profile", TabProfile.String())
	assert.Equal(t, "navigate Login", ToLogin().String())
	assert.Equal(t, "replace Login", Logout().String())
	assert.Equal(t, "<invalid>", Transition{}.String())
}
