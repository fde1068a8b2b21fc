package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megal/resourced/internal/watcher"
)

func startWatcher(t *testing.T, files ...string) <-chan struct{} {
	t.Helper()
	w, err := watcher.New(watcher.Config{
		Files:       files,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return onChange
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("namespace: resourced\n"), 0644))

	onChange := startWatcher(t, configPath)

	// Rapid writes should coalesce into single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(configPath, []byte(fmt.Sprintf("namespace: mod%d\n", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(configPath, []byte("namespace: resourced\n"), 0644))
	require.NoError(t, os.WriteFile(otherPath, []byte("initial"), 0644))

	onChange := startWatcher(t, configPath)

	require.NoError(t, os.WriteFile(otherPath, []byte("other content"), 0644))

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_DetectsReplaceOnSave(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("namespace: resourced\n"), 0644))

	onChange := startWatcher(t, configPath)

	// Editors often write a temp file and rename it over the original.
	tmp := filepath.Join(dir, ".config.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("namespace: alloys\n"), 0644))
	require.NoError(t, os.Rename(tmp, configPath))

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification for replaced file")
	}
}

func TestWatcher_MultipleFiles(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	a := filepath.Join(dirA, "config.yaml")
	b := filepath.Join(dirB, "config.yaml")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0644))

	onChange := startWatcher(t, a, b)

	require.NoError(t, os.WriteFile(b, []byte("b2"), 0644))

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification for second file")
	}
}

func TestWatcher_Stop(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("test"), 0644))

	w, err := watcher.New(watcher.Config{Files: []string{configPath}, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop(), "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestNew_RequiresFiles(t *testing.T) {
	_, err := watcher.New(watcher.Config{})
	require.ErrorContains(t, err, "no files to watch")
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/test/.resourced/config.yaml")

	assert.Equal(t, []string{"/test/.resourced/config.yaml"}, cfg.Files)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
