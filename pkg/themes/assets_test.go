// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func TestBootstrapper_Bootstrap(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "aerobase", "login")
	if err := os.MkdirAll(filepath.Join(source, "resources", "css"), 0o755); err != nil {
		t.Fatalf("failed to create reference theme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(source, "theme.properties"), []byte("parent=base\n"), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(source, "resources", "css", "login.css"), []byte("body {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	b := NewBootstrapper(root, "aerobase", mockStore, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "themes.Bootstrapper.Bootstrap").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().Invalidate()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

	if err := b.Bootstrap(context.Background(), "john-doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(root, "john-doe", "login", "resources", "css", "login.css"))
	if err != nil {
		t.Fatalf("expected copied file: %v", err)
	}
	if string(copied) != "body {}\n" {
		t.Errorf("unexpected file content %q", copied)
	}
	if _, err := os.Stat(filepath.Join(root, "john-doe", "login", "theme.properties")); err != nil {
		t.Errorf("expected copied theme.properties: %v", err)
	}
}

func TestBootstrapper_MissingReferenceTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	b := NewBootstrapper(t.TempDir(), "aerobase", mockStore, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "themes.Bootstrapper.Bootstrap").Return(context.Background(), trace.SpanFromContext(context.Background()))

	if err := b.Bootstrap(context.Background(), "john-doe"); err == nil {
		t.Error("expected error but got none")
	}
}
