package auth

// Notification texts shown to the user. The fallbacks are used when the
// backend rejects a request without a readable message.
const (
	MsgConnectFailed  = "Failed to connect to server."
	MsgRegisterFailed = "Registration failed."
	MsgLoginFailed    = "Login failed."
)

// ErrorKind classifies a failed Result.
type ErrorKind int

const (
	KindNone        ErrorKind = iota
	KindApplication           // non-2xx response, message from the server or fallback
	KindTransport             // network failure or unreadable success body
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindApplication:
		return "application"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single register or login call.
// It is consumed immediately by the form that requested it.
type Result struct {
	Success      bool
	Username     string // set by a successful Login
	ErrorMessage string // set on failure, ready for display
	Kind         ErrorKind

	session Session
}

// Session returns the session established by a successful Login.
// ok is false for failures and for Register results.
func (r Result) Session() (s Session, ok bool) {
	if !r.Success || r.session.IsZero() {
		return Session{}, false
	}
	return r.session, true
}

func failure(kind ErrorKind, msg string) Result {
	return Result{Kind: kind, ErrorMessage: msg}
}
