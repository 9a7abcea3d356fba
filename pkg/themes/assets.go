// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

// LoginThemeType is the only theme type seeded for new tenants.
const LoginThemeType = "login"

// Bootstrapper seeds a new tenant's theme directory by copying the
// reference theme's login subtree under the tenant's name.
type Bootstrapper struct {
	root           string
	referenceTheme string
	store          StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewBootstrapper(root, referenceTheme string, store StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Bootstrapper {
	return &Bootstrapper{
		root:           root,
		referenceTheme: referenceTheme,
		store:          store,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

func (b *Bootstrapper) Bootstrap(ctx context.Context, tenantName string) error {
	_, span := b.tracer.Start(ctx, "themes.Bootstrapper.Bootstrap")
	defer span.End()

	source := filepath.Join(b.root, b.referenceTheme, LoginThemeType)
	if info, err := os.Stat(source); err != nil {
		return fmt.Errorf("reference theme %s has no %s assets: %w", b.referenceTheme, LoginThemeType, err)
	} else if !info.IsDir() {
		return fmt.Errorf("reference theme path %s is not a directory", source)
	}

	target := filepath.Join(b.root, tenantName, LoginThemeType)
	if err := copyTree(source, target); err != nil {
		return fmt.Errorf("failed to copy theme assets for tenant %s: %w", tenantName, err)
	}

	b.store.Invalidate()
	b.logger.Infof("bootstrapped %s theme assets for tenant %s", LoginThemeType, tenantName)

	return nil
}

func copyTree(source, target string) error {
	return filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		return copyFile(path, dest)
	})
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Close()
}
