// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/internal/types"
	"github.com/aerobase/tenant-provisioner/pkg/federation"
	"github.com/aerobase/tenant-provisioner/pkg/provisioning"
)

// Platform event types this service reacts to.
const (
	TypeRegister                   = "REGISTER"
	TypeIdentityProviderFirstLogin = "IDENTITY_PROVIDER_FIRST_LOGIN"
	TypeLogin                      = "LOGIN"
)

// DetailIdentityProvider is the event detail key carrying the federation
// provider alias on login events.
const DetailIdentityProvider = "identity_provider"

type Service struct {
	provisioner provisioning.ServiceInterface
	federation  federation.ServiceInterface

	bootstrapTenant string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	provisioner provisioning.ServiceInterface,
	federation federation.ServiceInterface,
	bootstrapTenant string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		provisioner:     provisioner,
		federation:      federation,
		bootstrapTenant: bootstrapTenant,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// OnUserEvent gates the event stream. Self-service tenant creation only
// proceeds for registration and first-federated-login events raised in
// the bootstrap tenant; any other tenant context is ignored to prevent
// runaway or cross-tenant provisioning. Provisioning failures never
// reach the delivering caller.
func (s *Service) OnUserEvent(ctx context.Context, event *types.UserEvent, req types.RequestInfo) {
	ctx, span := s.tracer.Start(ctx, "events.Service.OnUserEvent")
	defer span.End()

	switch event.Type {
	case TypeRegister, TypeIdentityProviderFirstLogin:
		if event.TenantContext != s.bootstrapTenant {
			return
		}
		if event.UserID == "" {
			s.logger.Warnf("%s event without a user ID, skipping", event.Type)
			return
		}
		if err := s.provisioner.Provision(ctx, event.UserID, req); err != nil {
			s.logger.Errorf("failed to provision tenant for user %s: %v", event.UserID, err)
		}
	case TypeLogin:
		provider, ok := event.Details[DetailIdentityProvider]
		if !ok || provider == "" || event.UserID == "" {
			return
		}
		if err := s.federation.HandleLogin(ctx, event.UserID, provider); err != nil {
			s.logger.Errorf("failed to track provider link for user %s: %v", event.UserID, err)
		}
	}
}

// OnAdminEvent accepts the administrative event stream and ignores it.
func (s *Service) OnAdminEvent(ctx context.Context, event *types.AdminEvent) {
	_, span := s.tracer.Start(ctx, "events.Service.OnAdminEvent")
	defer span.End()
}
