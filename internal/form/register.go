package form

import (
	"orbit/internal/auth"
	"orbit/internal/nav"
)

// RegisterForm holds the registration fields.
type RegisterForm struct {
	Username string
	Email    string
	Password string

	sub submission
}

// Status returns the submission state.
func (f *RegisterForm) Status() Status { return f.sub.status }

// Fields returns the required fields in display order.
func (f *RegisterForm) Fields() []Field {
	return []Field{
		{Name: "Username", Value: f.Username},
		{Name: "Email", Value: f.Email},
		{Name: "Password", Value: f.Password},
	}
}

// Begin validates the form and moves it to Submitting.
func (f *RegisterForm) Begin() (Request, error) {
	if err := f.sub.begin(f.Fields()); err != nil {
		return Request{}, err
	}
	return Request{kind: kindRegister, username: f.Username, email: f.Email, password: f.Password}, nil
}

// Resolve records the result. Success leads to the login screen without a
// username; failure keeps the fields and stays put.
func (f *RegisterForm) Resolve(res auth.Result) Outcome {
	f.sub.finish(res.Success)
	if !res.Success {
		return Outcome{Notice: failureNotice(res)}
	}
	t := nav.ToLogin()
	return Outcome{
		Notice:     Notice{Title: TitleSuccess, Text: "Registration successful!"},
		Transition: &t,
	}
}
