package shared

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogger(t *testing.T) {
	t.Run("writes to provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello", "key", "value")

		if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "key=value") {
			t.Errorf("unexpected log output: %q", buf.String())
		}
	})

	t.Run("ApplyLogLevel", func(t *testing.T) {
		logger := NewLogger(&bytes.Buffer{})

		if err := ApplyLogLevel(logger, "debug"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", logger.GetLevel())
		}

		if err := ApplyLogLevel(logger, ""); err != nil {
			t.Errorf("empty level should be a no-op, got %v", err)
		}

		if err := ApplyLogLevel(logger, "loud"); err == nil {
			t.Error("expected error for unknown level")
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("in-memory", func(t *testing.T) {
		db, err := NewDatabase(ctx, ":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if got := db.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected in-memory pool pinned to 1 connection, got %d", got)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.db")
		db, err := NewDatabase(ctx, path)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, path, 4, 2)
		if got := db.Stats().MaxOpenConnections; got != 4 {
			t.Errorf("expected 4 max open connections, got %d", got)
		}
	})

	t.Run("unreachable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "customers.db")
		_, err := NewDatabase(ctx, path)
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Errorf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("IsMemoryPath", func(t *testing.T) {
		tc := map[string]bool{
			":memory:":                                true,
			"file:customers?mode=memory&cache=shared": true,
			"./customers.db":                          false,
		}
		for path, want := range tc {
			if got := IsMemoryPath(path); got != want {
				t.Errorf("IsMemoryPath(%q) = %v, want %v", path, got, want)
			}
		}
	})
}
