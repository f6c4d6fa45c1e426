package auth

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyUsername is returned when a session would be built for an empty username.
var ErrEmptyUsername = errors.New("auth: empty username")

// Session is the authenticated user's identity for the lifetime of the main
// tab set. It can only be obtained from a successful Login via Result.Session,
// so holding a non-zero Session proves a login happened.
type Session struct {
	username string
}

func newSession(username string) (Session, error) {
	if strings.TrimSpace(username) == "" {
		return Session{}, ErrEmptyUsername
	}
	return Session{username: username}, nil
}

// Username returns the name reported by the backend at login.
func (s Session) Username() string {
	return s.username
}

// Initial returns the first character of the username, used as the avatar label.
func (s Session) Initial() string {
	r, _ := utf8.DecodeRuneInString(s.username)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// IsZero reports whether s is the zero Session (no login).
func (s Session) IsZero() bool {
	return s.username == ""
}
