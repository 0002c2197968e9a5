package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	assert.ErrorIs(t, w.Start(ctx), ErrAlreadyStarted)

	// Several writes in a burst collapse into one callback
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "deck.yaml"), func() {})
	require.NoError(t, err)
	w.Stop()
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}

func TestNoCallbackAfterStop(t *testing.T) {
	var calls atomic.Int32
	w, err := New(filepath.Join(t.TempDir(), "deck.yaml"), func() { calls.Add(1) }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	// A change handled while Stop runs must not arm a new timer
	w.Stop()
	w.schedule()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// A timer that expires after Stop does not call back either
	require.NoError(t, w.Start(context.Background()))
	w.schedule()
	w.mu.Lock()
	w.started = false
	w.mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	w.mu.Lock()
	w.started = true
	w.mu.Unlock()
	w.Stop()
}
