// Package authtest provides an in-process fake of the orbit backend for tests.
package authtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"orbit/internal/auth"
)

// Reply is a canned response.
type Reply struct {
	Status int
	Body   string
}

// Call is a request received by the fake backend.
type Call struct {
	Path string
	Body map[string]string
}

// Backend is a fake backend answering /register and /login with canned replies.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	register Reply
	login    Reply
	calls    []Call
}

// NewBackend starts a fake backend. By default registration succeeds and
// login answers {"username":"nova"}. The server is closed on test cleanup.
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		register: Reply{Status: http.StatusCreated},
		login:    Reply{Status: http.StatusOK, Body: `{"username":"nova"}`},
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// SetRegister changes the reply for /register.
func (b *Backend) SetRegister(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.register = Reply{Status: status, Body: body}
}

// SetLogin changes the reply for /login.
func (b *Backend) SetLogin(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.login = Reply{Status: status, Body: body}
}

// Calls returns a copy of the requests received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// Client returns an auth.Client pointed at the backend.
func (b *Backend) Client(opts ...auth.Option) *auth.Client {
	return auth.NewClient(b.URL, opts...)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	b.calls = append(b.calls, Call{Path: r.URL.Path, Body: body})
	var reply Reply
	switch r.URL.Path {
	case "/register":
		reply = b.register
	case "/login":
		reply = b.login
	default:
		reply = Reply{Status: http.StatusNotFound, Body: `{"message":"not found"}`}
	}
	b.mu.Unlock()

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}

// Session logs in against a throwaway backend reporting username and returns
// the resulting session. It fails the test if the login does not succeed.
func Session(t testing.TB, username string) auth.Session {
	t.Helper()
	b := NewBackend(t)
	body, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		t.Fatalf("encode username: %v", err)
	}
	b.SetLogin(http.StatusOK, string(body))
	res := b.Client().Login(context.Background(), "test@example.com", "test")
	s, ok := res.Session()
	if !ok {
		t.Fatalf("login as %q failed: %s", username, res.ErrorMessage)
	}
	return s
}

// UnreachableURL returns the address of a server that is no longer listening.
func UnreachableURL(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
