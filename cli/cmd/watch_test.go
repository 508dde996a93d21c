package cmd

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.json", pickaxeManifest)

	ctx, cancel := context.WithCancel(t.Context())

	var runs atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, []string{dir}, 20*time.Millisecond, func(context.Context) {
			runs.Add(1)
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	writeManifest(t, dir, "b.yaml", "output: b.json\n")
	writeManifest(t, dir, "notes.txt", "ignored")

	assert.Eventually(t, func() bool { return runs.Load() >= 1 },
		5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_MissingPath(t *testing.T) {
	err := watch(t.Context(), []string{filepath.Join(t.TempDir(), "gone")},
		time.Millisecond, func(context.Context) {})
	assert.ErrorIs(t, err, ErrWatch)
}
