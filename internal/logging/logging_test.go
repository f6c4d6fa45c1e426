package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_LevelsAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.DebugContext(ctx, "dropped", "k", "v")
	log.InfoContext(ctx, "login succeeded", "username", "nova")
	log.WarnContext(ctx, "login rejected", "status", 401)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("debug record should be filtered at info level:\n%s", out)
	}
	for _, want := range []string{
		"level=INFO",
		`msg="login succeeded"`,
		"username=nova",
		"level=WARN",
		"status=401",
		"app=orbit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestOpen_CreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orbit.log")

	for i := 0; i < 2; i++ {
		log, closer, err := Open(path, slog.LevelDebug)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		log.Debug("run", "n", i)
		if err := closer.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "msg=run"); got != 2 {
		t.Errorf("expected 2 records after two opens, got %d:\n%s", got, data)
	}
}

func TestOpen_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	// A regular file cannot be used as a parent directory.
	if _, _, err := Open(filepath.Join(blocker, "orbit.log"), slog.LevelInfo); err == nil {
		t.Error("expected error when parent is a file")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
