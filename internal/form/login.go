package form

import (
	"orbit/internal/auth"
	"orbit/internal/nav"
)

// LoginForm holds the login fields.
type LoginForm struct {
	Email    string
	Password string

	sub submission
}

// Status returns the submission state.
func (f *LoginForm) Status() Status { return f.sub.status }

// Fields returns the required fields in display order.
func (f *LoginForm) Fields() []Field {
	return []Field{
		{Name: "Email", Value: f.Email},
		{Name: "Password", Value: f.Password},
	}
}

// Begin validates the form and moves it to Submitting.
func (f *LoginForm) Begin() (Request, error) {
	if err := f.sub.begin(f.Fields()); err != nil {
		return Request{}, err
	}
	return Request{kind: kindLogin, email: f.Email, password: f.Password}, nil
}

// Resolve records the result. Success leads into Main carrying the session.
func (f *LoginForm) Resolve(res auth.Result) Outcome {
	sess, ok := res.Session()
	if !ok {
		f.sub.finish(false)
		if res.Success {
			// A successful result without a session cannot enter Main.
			return Outcome{Notice: Notice{Title: TitleError, Text: auth.MsgLoginFailed}}
		}
		return Outcome{Notice: failureNotice(res)}
	}
	t, err := nav.ToMain(sess)
	if err != nil {
		f.sub.finish(false)
		return Outcome{Notice: Notice{Title: TitleError, Text: auth.MsgLoginFailed}}
	}
	f.sub.finish(true)
	return Outcome{
		Notice:     Notice{Title: TitleSuccess, Text: "Login successful!"},
		Transition: &t,
	}
}
