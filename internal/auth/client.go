// Package auth is the HTTP session client for the orbit backend.
//
// Two calls are supported, each a single POST with a JSON body:
//
//	POST {base}/register  {username, email, password}  -> 2xx, body ignored
//	POST {base}/login     {email, password}            -> 2xx {username}
//
// Failures never surface as Go errors; they are mapped to a Result carrying
// a display-ready message and an ErrorKind.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"orbit/internal/jsonutil"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://192.168.56.1:3000"

// RequestIDHeader carries a per-call id for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client talks to the authentication backend. It holds no per-user state;
// every call is independent and attempted exactly once.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request through its context, so it holds whatever
// http.Client is in use and leaves that client untouched. Zero means no
// timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracerProvider sets where request spans are recorded.
// Defaults to the global provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer("orbit/auth") }
}

// NewClient creates a client for the backend at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:  otel.Tracer("orbit/auth"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register creates an account. A 2xx status is success regardless of body.
func (c *Client) Register(ctx context.Context, username, email, password string) Result {
	ctx, span := c.tracer.Start(ctx, "auth.register", oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	status, body, err := c.post(ctx, "/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return c.transportFailure(ctx, span, "register", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if !isSuccess(status) {
		return c.applicationFailure(ctx, span, "register", status, body, MsgRegisterFailed)
	}

	c.logger.InfoContext(ctx, "register succeeded", "email", email)
	span.SetAttributes(attribute.String("orbit.auth.outcome", "success"))
	return Result{Success: true}
}

// Login authenticates and returns the username reported by the backend.
// A 2xx body that cannot be read as {"username": ...} is a transport failure;
// a readable body with an empty username is rejected as a failed login.
func (c *Client) Login(ctx context.Context, email, password string) Result {
	ctx, span := c.tracer.Start(ctx, "auth.login", oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	status, body, err := c.post(ctx, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return c.transportFailure(ctx, span, "login", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if !isSuccess(status) {
		return c.applicationFailure(ctx, span, "login", status, body, MsgLoginFailed)
	}

	obj, err := jsonutil.DecodeObject(body, "login response")
	if err != nil {
		return c.transportFailure(ctx, span, "login", err)
	}
	username := jsonutil.GetString(obj, "username")
	sess, err := newSession(username)
	if err != nil {
		c.logger.WarnContext(ctx, "login response without username", "status", status)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(
			attribute.String("orbit.auth.outcome", "failure"),
			attribute.String("orbit.auth.error_kind", KindApplication.String()),
		)
		return failure(KindApplication, MsgLoginFailed)
	}

	c.logger.InfoContext(ctx, "login succeeded", "username", username)
	span.SetAttributes(attribute.String("orbit.auth.outcome", "success"))
	return Result{Success: true, Username: username, session: sess}
}

// post sends payload as JSON and returns the status and (capped) body.
func (c *Client) post(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	oteltrace.SpanFromContext(ctx).SetAttributes(
		attribute.String("http.request.method", http.MethodPost),
		attribute.String("url.full", req.URL.String()),
		attribute.String("orbit.request_id", reqID),
	)
	c.logger.DebugContext(ctx, "sending request", "url", req.URL.String(), "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", path, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) transportFailure(ctx context.Context, span oteltrace.Span, op string, err error) Result {
	c.logger.WarnContext(ctx, op+" failed", "kind", KindTransport.String(), "err", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(
		attribute.String("orbit.auth.outcome", "failure"),
		attribute.String("orbit.auth.error_kind", KindTransport.String()),
	)
	return failure(KindTransport, MsgConnectFailed)
}

// applicationFailure reads {"message": ...} from a non-2xx body, falling back
// to fallback when the body is absent or unreadable.
func (c *Client) applicationFailure(ctx context.Context, span oteltrace.Span, op string, status int, body []byte, fallback string) Result {
	msg := fallback
	if obj, err := jsonutil.DecodeObject(body, op+" error body"); err == nil {
		msg = jsonutil.GetStringOr(obj, "message", fallback)
	}
	c.logger.WarnContext(ctx, op+" rejected", "status", status, "message", msg)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(
		attribute.String("orbit.auth.outcome", "failure"),
		attribute.String("orbit.auth.error_kind", KindApplication.String()),
	)
	return failure(KindApplication, msg)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
