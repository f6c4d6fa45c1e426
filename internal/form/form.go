// Package form holds per-screen credential state and the submission state
// machine shared by the register and login screens:
//
//	Idle -> Submitting -> Succeeded | Failed
//
// A submission is split in three steps so that the network call can run off
// the UI loop: Begin validates and locks the form, Request.Do performs the
// single HTTP call, and Resolve turns the result into an Outcome.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orbit/internal/auth"
	"orbit/internal/nav"
)

// MsgMissingFields is the validation notification text.
const MsgMissingFields = "Please fill in all fields."

// Notification titles.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"
)

// ErrSubmitting is returned by Begin while a request is outstanding.
var ErrSubmitting = errors.New("form: submission in progress")

// ErrCompleted is returned by Begin once a submission has succeeded. The
// screen is about to change, so the form accepts nothing further.
var ErrCompleted = errors.New("form: submission already succeeded")

// ValidationError reports required fields left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form: missing %s", strings.Join(e.Missing, ", "))
}

// Status is the submission state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSubmitting:
		return "Submitting"
	case StatusSucceeded:
		return "Succeeded"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Authenticator is the subset of auth.Client the forms need.
type Authenticator interface {
	Register(ctx context.Context, username, email, password string) auth.Result
	Login(ctx context.Context, email, password string) auth.Result
}

// Notice is a blocking notification for the user.
type Notice struct {
	Title string
	Text  string
}

// Outcome is what the screen should do after a submission resolves.
type Outcome struct {
	Notice     Notice
	Transition *nav.Transition // nil: stay on the current screen
}

// Field is one named form input.
type Field struct {
	Name  string
	Value string
}

// Request is a snapshot of the credentials taken by Begin.
type Request struct {
	kind     kind
	username string
	email    string
	password string
}

type kind int

const (
	kindRegister kind = iota
	kindLogin
)

// Do performs exactly one call against a.
func (r Request) Do(ctx context.Context, a Authenticator) auth.Result {
	if r.kind == kindRegister {
		return a.Register(ctx, r.username, r.email, r.password)
	}
	return a.Login(ctx, r.email, r.password)
}

// submission tracks the state machine shared by both forms.
type submission struct {
	status Status
}

func (s *submission) begin(fields []Field) error {
	switch s.status {
	case StatusSubmitting:
		return ErrSubmitting
	case StatusSucceeded:
		return ErrCompleted
	}
	if err := validate(fields); err != nil {
		return err
	}
	s.status = StatusSubmitting
	return nil
}

func (s *submission) finish(ok bool) {
	if ok {
		s.status = StatusSucceeded
	} else {
		s.status = StatusFailed
	}
}

// validate checks presence only. Any typed character, a space included,
// counts as present.
func validate(fields []Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NoticeFor maps a Begin error to the notification to show.
// ErrSubmitting and ErrCompleted yield no notice; the duplicate submit is
// simply ignored.
func NoticeFor(err error) (Notice, bool) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return Notice{Title: TitleError, Text: MsgMissingFields}, true
	case err == nil, errors.Is(err, ErrSubmitting), errors.Is(err, ErrCompleted):
		return Notice{}, false
	default:
		return Notice{Title: TitleError, Text: err.Error()}, true
	}
}

func failureNotice(res auth.Result) Notice {
	return Notice{Title: TitleError, Text: res.ErrorMessage}
}
