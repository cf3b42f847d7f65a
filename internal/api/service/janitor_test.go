package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitorSweep(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	j := NewJanitorService(dir, logger, time.Hour, time.Hour)

	stale := filepath.Join(dir, "stale_upload")
	fresh := filepath.Join(dir, "fresh_upload")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o600))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	j.Sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale file removed")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh file kept")
}

func TestJanitorSweepMissingDir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	j := NewJanitorService(filepath.Join(t.TempDir(), "never-created"), logger, time.Hour, time.Hour)

	// Must not panic or log an error for a directory that does not exist yet.
	j.Sweep()
}

func TestJanitorStartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	j := NewJanitorService(t.TempDir(), logger, 10*time.Millisecond, time.Hour)

	j.Start()
	time.Sleep(30 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
