package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// restoreGlobals puts back the otel globals Setup replaces.
func restoreGlobals(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	eh := otel.GetErrorHandler()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetErrorHandler(eh)
	})
}

func clearOTLPEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "")
}

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	clearOTLPEnv(t)

	p, err := Setup(context.Background(), "test", nil)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, Enabled())
	assert.NoError(t, p.Shutdown(context.Background()), "nil provider shuts down cleanly")
}

func TestSetup_ExportsToURLEndpoint(t *testing.T) {
	clearOTLPEnv(t)
	restoreGlobals(t)

	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", srv.URL)

	var logs bytes.Buffer
	p, err := Setup(context.Background(), "test", slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	require.NotNil(t, p)

	_, span := otel.Tracer("test").Start(context.Background(), "export-check")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/v1/traces"}, paths)
	assert.Empty(t, logs.String())
}

func TestSetup_ErrorsGoToLogger(t *testing.T) {
	clearOTLPEnv(t)
	restoreGlobals(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4318")

	var logs bytes.Buffer
	p, err := Setup(context.Background(), "test", slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	defer p.Shutdown(context.Background())

	otel.Handle(errors.New("export refused"))
	assert.Contains(t, logs.String(), "export refused")
}

func TestNewResource_ServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	attrs := newResource("1.2.3").Attributes()
	assert.Contains(t, attrs, attribute.String("service.name", "orbit"))
	assert.Contains(t, attrs, attribute.String("service.version", "1.2.3"))

	t.Setenv("OTEL_SERVICE_NAME", "orbit-dev")
	assert.Contains(t, newResource("1.2.3").Attributes(), attribute.String("service.name", "orbit-dev"))
}
