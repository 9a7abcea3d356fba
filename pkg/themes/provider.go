// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"net/http"
	"slices"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/pkg/authentication"
	"github.com/aerobase/tenant-provisioner/pkg/provisioning"
)

// VisibilityProvider wraps a base theme store and filters its name
// listing down to what the requesting tenant is allowed to see. All
// other store behavior is delegated untouched.
type VisibilityProvider struct {
	store StoreInterface

	enabled         bool
	bootstrapTenant string
	adminUsername   string
	sharedThemes    []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewVisibilityProvider(
	store StoreInterface,
	enabled bool,
	bootstrapTenant, adminUsername string,
	sharedThemes []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *VisibilityProvider {
	return &VisibilityProvider{
		store:           store,
		enabled:         enabled,
		bootstrapTenant: bootstrapTenant,
		adminUsername:   adminUsername,
		sharedThemes:    sharedThemes,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// NameSet returns the theme names of the given type visible from the
// current tenant context. Read-only, safe for unlimited concurrent use.
func (p *VisibilityProvider) NameSet(ctx context.Context, themeType, currentTenant string, headers http.Header) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "themes.VisibilityProvider.NameSet")
	defer span.End()

	candidates, err := p.store.ListThemes(ctx, themeType)
	if err != nil {
		return nil, err
	}

	if !p.enabled || currentTenant == p.bootstrapTenant {
		return candidates, nil
	}

	effective := currentTenant
	if token, ok := authentication.BearerToken(headers); ok {
		if subject, ok := authentication.ClaimedSubject(token); ok {
			effective = provisioning.NormalizeTenantName(subject)
		}
	}

	// Admins browsing from the root tenant see everything.
	if effective == provisioning.NormalizeTenantName(p.adminUsername) && currentTenant == p.bootstrapTenant {
		return candidates, nil
	}

	visible := make([]string, 0, len(p.sharedThemes)+1)
	for _, shared := range p.sharedThemes {
		if slices.Contains(candidates, shared) {
			visible = append(visible, shared)
		}
	}

	own := ""
	if slices.Contains(candidates, effective) {
		own = effective
	} else if slices.Contains(candidates, currentTenant) {
		own = currentTenant
	}
	if own != "" && !slices.Contains(visible, own) {
		visible = append(visible, own)
	}

	return visible, nil
}
