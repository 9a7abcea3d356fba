// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"net"

	"golang.org/x/net/publicsuffix"

	"github.com/aerobase/tenant-provisioner/internal/authorization"
	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

const (
	clientSuffix    = "client"
	clientSeparator = "-"

	defaultScheme = "https"
)

type Service struct {
	tenants  TenantStoreInterface
	users    UserStoreInterface
	authz    AuthzInterface
	assets   AssetBootstrapInterface
	template *types.TenantTemplate

	adminUsername string
	reservations  *nameReservations

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	tenants TenantStoreInterface,
	users UserStoreInterface,
	authz AuthzInterface,
	assets AssetBootstrapInterface,
	template *types.TenantTemplate,
	adminUsername string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		tenants:       tenants,
		users:         users,
		authz:         authz,
		assets:        assets,
		template:      template,
		adminUsername: adminUsername,
		reservations:  newNameReservations(),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Provision runs the tenant creation pipeline for the triggering user:
// duplicate check, import, permission grants, default client, theme
// assets. Re-triggering for an existing slug is a no-op.
func (s *Service) Provision(ctx context.Context, userID string, req types.RequestInfo) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.Provision")
	defer span.End()

	username, err := s.users.GetUsername(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve creator identity: %w", err)
	}

	slug := NormalizeTenantName(username)

	release := s.reservations.acquire(slug)
	defer release()

	exists, err := s.tenantExists(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to check for existing tenant %s: %w", slug, err)
	}
	if exists {
		s.logger.Infof("tenant %s already exists, skipping provisioning", slug)
		return nil
	}

	spec := TenantFromTemplate(s.template, slug)
	if _, err := s.tenants.CreateTenant(ctx, spec); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Infof("tenant %s already exists, skipping provisioning", slug)
			return nil
		}
		return fmt.Errorf("failed to import tenant %s: %w", slug, err)
	}

	// Re-fetch from canonical storage in case the commit went through a
	// cached or replicated path.
	tenant, err := s.tenants.GetTenantByName(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to reload tenant %s: %w", slug, err)
	}

	if err := s.grantAdminRoles(ctx, tenant, userID); err != nil {
		return fmt.Errorf("failed to grant roles on tenant %s: %w", slug, err)
	}

	if err := s.createDefaultClient(ctx, tenant, req); err != nil {
		return fmt.Errorf("failed to create default client for tenant %s: %w", slug, err)
	}

	if err := s.assets.Bootstrap(ctx, tenant.Name); err != nil {
		// The tenant stands without custom assets and falls back to the
		// default theme at render time.
		s.logger.Warnf("failed to bootstrap theme assets for tenant %s: %v", slug, err)
	}

	s.logger.Infof("provisioned tenant %s for user %s", slug, userID)
	return nil
}

func (s *Service) tenantExists(ctx context.Context, slug string) (bool, error) {
	if s.template.ID != "" {
		if _, err := s.tenants.GetTenantByID(ctx, s.template.ID); err == nil {
			return true, nil
		} else if !errors.Is(err, storage.ErrNotFound) {
			return false, err
		}
	}

	if _, err := s.tenants.GetTenantByName(ctx, slug); err == nil {
		return true, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	return false, nil
}

// grantAdminRoles grants every tenant-admin role to both the platform
// admin and the creator. When the platform admin already holds the
// platform-wide admin role the per-role grants are skipped and the tenant
// is linked to the privileged group instead, global admin being a
// superset of any tenant-scoped role.
func (s *Service) grantAdminRoles(ctx context.Context, tenant *types.Tenant, creatorID string) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.grantAdminRoles")
	defer span.End()

	adminID, err := s.users.GetIdentityIDByUsername(ctx, s.adminUsername)
	if err != nil {
		return fmt.Errorf("failed to resolve platform admin identity: %w", err)
	}
	if adminID == "" {
		return fmt.Errorf("platform admin identity %q not found", s.adminUsername)
	}

	isPlatformAdmin, err := s.authz.CheckPlatformAdmin(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to check platform admin role: %w", err)
	}
	if isPlatformAdmin {
		// Global admin derives tenant admin through the privileged group,
		// but only on tenants linked to it.
		if err := s.authz.LinkTenantToPrivileged(ctx, tenant.ID, authorization.PlatformGroup); err != nil {
			return fmt.Errorf("failed to link tenant %s to the privileged group: %w", tenant.Name, err)
		}
		s.logger.Debugf("admin %s holds the platform-wide admin role, skipping grants", s.adminUsername)
		return nil
	}

	for _, role := range authorization.TenantAdminRoles {
		for _, grantee := range []string{adminID, creatorID} {
			if err := s.authz.GrantTenantRole(ctx, tenant.ID, grantee, role); err != nil {
				return fmt.Errorf("failed to grant %s on tenant %s to %s: %w", role, tenant.Name, grantee, err)
			}
		}
	}

	return nil
}

func (s *Service) createDefaultClient(ctx context.Context, tenant *types.Tenant, req types.RequestInfo) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.createDefaultClient")
	defer span.End()

	rootURL, err := deriveRootURL(tenant.Name, req)
	if err != nil {
		return err
	}

	_, err = s.tenants.CreateClientIfAbsent(ctx, &types.Client{
		TenantID:            tenant.ID,
		ClientID:            tenant.Name + clientSeparator + clientSuffix,
		RootURL:             rootURL,
		BaseURL:             "/",
		ManagementURL:       "/",
		RedirectURI:         "/*",
		WebOrigin:           "*",
		Public:              true,
		StandardFlowEnabled: true,
		Enabled:             true,
	})
	return err
}

// deriveRootURL builds scheme://<slug>.<top-private-domain-of-host>.
func deriveRootURL(slug string, req types.RequestInfo) (string, error) {
	host := req.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" {
		return "", fmt.Errorf("request host is empty")
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("failed to derive top private domain from %q: %w", req.Host, err)
	}

	scheme := req.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	return fmt.Sprintf("%s://%s.%s", scheme, slug, domain), nil
}
