package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hookdeck/internal/eventbus"
)

// DefaultMaxDepth is how deep below a root the scan descends
const DefaultMaxDepth = 5

// skipDirs are never deck locations and are often large
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	"venv":         true,
}

// SkippedPath is a path the scan could not read
type SkippedPath struct {
	Path string
	Err  error
}

// Service finds deck files below a set of roots
type Service struct {
	bus      eventbus.EventBus
	log      *zap.Logger
	maxDepth int
	walk     func(root string, fn fs.WalkDirFunc) error
	skipped  []SkippedPath
}

// NewService creates a new discovery service
func NewService(bus eventbus.EventBus, logger *zap.Logger) *Service {
	if bus == nil {
		bus = eventbus.Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{bus: bus, log: logger, maxDepth: DefaultMaxDepth, walk: filepath.WalkDir}
}

// Skipped returns the paths the last Scan could not read
func (s *Service) Skipped() []SkippedPath {
	return s.skipped
}

// Scan returns the deck files found below roots, sorted. A root that is a
// file is returned as-is. Unreadable paths are published as ErrorEvents,
// recorded in Skipped and do not stop the scan.
func (s *Service) Scan(ctx context.Context, roots []string) ([]string, error) {
	s.skipped = nil
	var found []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		if !info.IsDir() {
			found = append(found, root)
			continue
		}

		decks, err := s.scanDirectory(ctx, root)
		if err != nil {
			return nil, err
		}
		found = append(found, decks...)
	}
	sort.Strings(found)
	return found, nil
}

// scanDirectory walks root looking for YAML files with a slides key
func (s *Service) scanDirectory(ctx context.Context, root string) ([]string, error) {
	var decks []string

	err := s.walk(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			s.log.Warn("error walking path", zap.String("path", path), zap.Error(err))
			s.skipped = append(s.skipped, SkippedPath{Path: path, Err: err})
			s.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to read %s", path),
				Err:     err,
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= s.maxDepth {
				return filepath.SkipDir
			}
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsDeckFile(path) {
			decks = append(decks, path)
		}
		return nil
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		s.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return decks, err
}

// IsDeckFile reports whether path is a YAML document with a top-level
// slides key
func IsDeckFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var doc struct {
		Slides *yaml.Node `yaml:"slides"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Broken decks are still decks; validation reports the error
		return strings.Contains(string(data), "slides:")
	}
	return doc.Slides != nil
}
