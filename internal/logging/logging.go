// Package logging builds the zap logger. The terminal belongs to the UI, so
// logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hookdeck/internal/eventbus"
)

// New returns a JSON logger appending to path at the given level.
// An empty path disables logging.
func New(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewOrNop is New, falling back to a no-op logger. The error is returned so
// the caller can report it once the UI is gone.
func NewOrNop(path, level string) (*zap.Logger, error) {
	logger, err := New(path, level)
	if err != nil {
		return zap.NewNop(), err
	}
	return logger, nil
}

// ObserveEvents logs every domain event published on bus. Selection changes
// are logged at debug level, everything else at info.
func ObserveEvents(bus eventbus.EventBus, logger *zap.Logger) func() {
	types := []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventSlideMounted,
		eventbus.EventCrossReference,
		eventbus.EventDeckLoaded,
		eventbus.EventDeckReloaded,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	}

	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logEvent(logger, e)
		}))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func logEvent(logger *zap.Logger, e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.SelectionChangedEvent:
		logger.Debug("selection changed",
			zap.String("scope", string(ev.Scope)), zap.Int("old", ev.Old), zap.Int("new", ev.New))
	case eventbus.SlideMountedEvent:
		logger.Info("slide mounted", zap.Int("index", ev.Index), zap.String("slide", ev.SlideID))
	case eventbus.CrossReferenceEvent:
		logger.Info("cross reference", zap.String("entry", ev.EntryID), zap.Int("target", ev.Target))
	case eventbus.DeckLoadedEvent:
		logger.Info("deck loaded", zap.String("path", ev.Path), zap.Int("slides", ev.Slides))
	case eventbus.DeckReloadedEvent:
		if ev.Err != nil {
			logger.Warn("deck reload failed", zap.String("path", ev.Path), zap.Error(ev.Err))
			return
		}
		logger.Info("deck reloaded", zap.String("path", ev.Path), zap.Int("slides", ev.Slides))
	case eventbus.ErrorEvent:
		logger.Error(ev.Message, zap.Error(ev.Err))
	default:
		logger.Info("event", zap.String("type", string(e.Type())))
	}
}
