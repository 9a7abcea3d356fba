// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

// DiskThemeStore lists theme names from the themes root on disk. A theme
// of a given type is a directory under the root containing a
// subdirectory named after that type, e.g. <root>/<name>/login.
type DiskThemeStore struct {
	root         string
	cacheEnabled bool

	mu    sync.RWMutex
	cache map[string][]string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDiskThemeStore(root string, cacheEnabled bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DiskThemeStore {
	return &DiskThemeStore{
		root:         root,
		cacheEnabled: cacheEnabled,
		cache:        make(map[string][]string),
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

func (s *DiskThemeStore) ListThemes(ctx context.Context, themeType string) ([]string, error) {
	_, span := s.tracer.Start(ctx, "themes.DiskThemeStore.ListThemes")
	defer span.End()

	if s.cacheEnabled {
		s.mu.RLock()
		cached, ok := s.cache[themeType]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	names, err := s.scan(themeType)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled {
		s.mu.Lock()
		s.cache[themeType] = names
		s.mu.Unlock()
	}

	return names, nil
}

// Invalidate drops the cached name sets, forcing a rescan on the next
// listing. Called after new theme assets are written to disk.
func (s *DiskThemeStore) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string][]string)
	s.mu.Unlock()
}

func (s *DiskThemeStore) scan(themeType string) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes root %s: %w", s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		info, err := os.Stat(filepath.Join(s.root, entry.Name(), themeType))
		if err != nil || !info.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
