package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hookdeck/internal/eventbus"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hookdeck.log")
	logger, err := New(path, "info")
	require.NoError(t, err)

	logger.Info("slide mounted", zap.String("slide", "overview"))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"slide mounted"`)
	assert.Contains(t, out, `"slide":"overview"`)
	assert.False(t, strings.Contains(out, "hidden"), "debug is below info")
}

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestInvalidLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)

	logger, err := NewOrNop(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
	assert.NotNil(t, logger)
}

func TestObserveEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bus := eventbus.New(nil)

	unsub := ObserveEvents(bus, zap.New(core))
	bus.Publish(eventbus.SlideMountedEvent{Index: 2, SlideID: "use-state"})
	bus.Publish(eventbus.SelectionChangedEvent{Scope: eventbus.ScopeSteps, Old: 0, New: 1})
	bus.Publish(eventbus.DeckReloadedEvent{Path: "d.yaml", Err: assert.AnError})
	bus.(eventbus.Closer).Close()
	unsub()

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "slide mounted", entries[0].Message)
	assert.Equal(t, "use-state", entries[0].ContextMap()["slide"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}
