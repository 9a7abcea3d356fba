// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_events.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_provisioning.go -mock_names ServiceInterface=MockProvisionerInterface github.com/aerobase/tenant-provisioner/pkg/provisioning ServiceInterface
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_federation.go -mock_names ServiceInterface=MockFederationInterface github.com/aerobase/tenant-provisioner/pkg/federation ServiceInterface
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_OnUserEvent(t *testing.T) {
	userID := "user-123"
	req := types.RequestInfo{Scheme: "https", Host: "accounts.example.com"}

	testCases := []struct {
		name       string
		event      *types.UserEvent
		setupMocks func(*MockProvisionerInterface, *MockFederationInterface, *MockLoggerInterface)
	}{
		{
			name:  "registration in bootstrap tenant provisions",
			event: &types.UserEvent{Type: TypeRegister, TenantContext: "master", UserID: userID},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				provisioner.EXPECT().Provision(gomock.Any(), userID, req).Return(nil)
			},
		},
		{
			name:  "first federated login in bootstrap tenant provisions",
			event: &types.UserEvent{Type: TypeIdentityProviderFirstLogin, TenantContext: "master", UserID: userID},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				provisioner.EXPECT().Provision(gomock.Any(), userID, req).Return(nil)
			},
		},
		{
			name:       "registration outside the bootstrap tenant is ignored",
			event:      &types.UserEvent{Type: TypeRegister, TenantContext: "acme", UserID: userID},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {},
		},
		{
			name:  "registration without a user ID is skipped with a warning",
			event: &types.UserEvent{Type: TypeRegister, TenantContext: "master"},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "provisioning failure is logged, event acknowledged",
			event: &types.UserEvent{Type: TypeRegister, TenantContext: "master", UserID: userID},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				provisioner.EXPECT().Provision(gomock.Any(), userID, req).Return(errors.New("import failed"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "login with provider detail links the provider",
			event: &types.UserEvent{Type: TypeLogin, TenantContext: "acme", UserID: userID, Details: map[string]string{DetailIdentityProvider: "google"}},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				federation.EXPECT().HandleLogin(gomock.Any(), userID, "google").Return(nil)
			},
		},
		{
			name:       "login without provider detail is ignored",
			event:      &types.UserEvent{Type: TypeLogin, TenantContext: "acme", UserID: userID, Details: map[string]string{"auth_method": "password"}},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {},
		},
		{
			name:  "federation failure is logged, event acknowledged",
			event: &types.UserEvent{Type: TypeLogin, TenantContext: "acme", UserID: userID, Details: map[string]string{DetailIdentityProvider: "google"}},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {
				federation.EXPECT().HandleLogin(gomock.Any(), userID, "google").Return(errors.New("identity store error"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "unrelated event type is ignored",
			event:      &types.UserEvent{Type: "LOGOUT", TenantContext: "master", UserID: userID},
			setupMocks: func(provisioner *MockProvisionerInterface, federation *MockFederationInterface, logger *MockLoggerInterface) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockFederation := NewMockFederationInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvisioner, mockFederation, "master", mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "events.Service.OnUserEvent").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProvisioner, mockFederation, mockLogger)

			s.OnUserEvent(context.Background(), tc.event, req)
		})
	}
}

func TestService_OnAdminEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvisioner := NewMockProvisionerInterface(ctrl)
	mockFederation := NewMockFederationInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockProvisioner, mockFederation, "master", mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "events.Service.OnAdminEvent").Return(context.Background(), trace.SpanFromContext(context.Background()))

	s.OnAdminEvent(context.Background(), &types.AdminEvent{OperationType: "CREATE", ResourceType: "USER"})
}
