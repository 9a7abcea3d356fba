// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/authorization"
	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_provisioning.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Provision(t *testing.T) {
	userID := "user-123"
	adminID := "admin-456"
	username := "John.Doe@example.co.uk"
	slug := "john-doe-example-co-uk"
	req := types.RequestInfo{Scheme: "https", Host: "accounts.example.co.uk:443"}
	tenant := &types.Tenant{ID: "tenant-789", Name: slug, Enabled: true}
	template := &types.TenantTemplate{Name: "template", LoginTheme: "aerobase"}

	roleGrants := len(authorization.TenantAdminRoles) * 2

	testCases := []struct {
		name        string
		setupMocks  func(*MockTenantStoreInterface, *MockUserStoreInterface, *MockAuthzInterface, *MockAssetBootstrapInterface, *MockTracingInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success - full pipeline",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						if t.Name != slug {
							return nil, errors.New("wrong slug")
						}
						if !t.RegistrationAllowed || !t.VerifyEmail {
							return nil, errors.New("policy flags not forced on")
						}
						return tenant, nil
					})
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.grantAdminRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
				users.EXPECT().GetIdentityIDByUsername(gomock.Any(), "admin").Return(adminID, nil)
				authz.EXPECT().CheckPlatformAdmin(gomock.Any(), adminID).Return(false, nil)
				authz.EXPECT().GrantTenantRole(gomock.Any(), tenant.ID, gomock.Any(), gomock.Any()).Return(nil).Times(roleGrants)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.createDefaultClient").Return(context.Background(), trace.SpanFromContext(context.Background()))
				tenants.EXPECT().CreateClientIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Client) (*types.Client, error) {
						if c.ClientID != slug+"-client" {
							return nil, errors.New("wrong client ID")
						}
						if c.RootURL != "https://"+slug+".example.co.uk" {
							return nil, errors.New("wrong root URL: " + c.RootURL)
						}
						return c, nil
					})
				assets.EXPECT().Bootstrap(gomock.Any(), slug).Return(nil)
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name: "no-op - tenant already exists",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name: "no-op - duplicate key on import",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name: "success - platform admin gets the privileged link, no per-role grants",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.grantAdminRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
				users.EXPECT().GetIdentityIDByUsername(gomock.Any(), "admin").Return(adminID, nil)
				authz.EXPECT().CheckPlatformAdmin(gomock.Any(), adminID).Return(true, nil)
				authz.EXPECT().LinkTenantToPrivileged(gomock.Any(), tenant.ID, authorization.PlatformGroup).Return(nil)
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.createDefaultClient").Return(context.Background(), trace.SpanFromContext(context.Background()))
				tenants.EXPECT().CreateClientIfAbsent(gomock.Any(), gomock.Any()).Return(&types.Client{}, nil)
				assets.EXPECT().Bootstrap(gomock.Any(), slug).Return(nil)
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name: "error - privileged link write fails",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.grantAdminRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
				users.EXPECT().GetIdentityIDByUsername(gomock.Any(), "admin").Return(adminID, nil)
				authz.EXPECT().CheckPlatformAdmin(gomock.Any(), adminID).Return(true, nil)
				authz.EXPECT().LinkTenantToPrivileged(gomock.Any(), tenant.ID, authorization.PlatformGroup).Return(errors.New("authz store error"))
			},
			expectedErr: true,
		},
		{
			name: "success - asset bootstrap failure is not fatal",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.grantAdminRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
				users.EXPECT().GetIdentityIDByUsername(gomock.Any(), "admin").Return(adminID, nil)
				authz.EXPECT().CheckPlatformAdmin(gomock.Any(), adminID).Return(false, nil)
				authz.EXPECT().GrantTenantRole(gomock.Any(), tenant.ID, gomock.Any(), gomock.Any()).Return(nil).Times(roleGrants)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.createDefaultClient").Return(context.Background(), trace.SpanFromContext(context.Background()))
				tenants.EXPECT().CreateClientIfAbsent(gomock.Any(), gomock.Any()).Return(&types.Client{}, nil)
				assets.EXPECT().Bootstrap(gomock.Any(), slug).Return(errors.New("theme dir missing"))
				logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name: "error - failed to resolve creator",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return("", errors.New("identity store error"))
			},
			expectedErr: true,
		},
		{
			name: "error - duplicate check fails",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
		{
			name: "error - grant fails",
			setupMocks: func(tenants *MockTenantStoreInterface, users *MockUserStoreInterface, authz *MockAuthzInterface, assets *MockAssetBootstrapInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(nil, storage.ErrNotFound)
				tenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				tenants.EXPECT().GetTenantByName(gomock.Any(), slug).Return(tenant, nil)
				tracer.EXPECT().Start(gomock.Any(), "provisioning.Service.grantAdminRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
				users.EXPECT().GetIdentityIDByUsername(gomock.Any(), "admin").Return(adminID, nil)
				authz.EXPECT().CheckPlatformAdmin(gomock.Any(), adminID).Return(false, nil)
				authz.EXPECT().GrantTenantRole(gomock.Any(), tenant.ID, gomock.Any(), gomock.Any()).Return(errors.New("authz store error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTenants := NewMockTenantStoreInterface(ctrl)
			mockUsers := NewMockUserStoreInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockAssets := NewMockAssetBootstrapInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockTenants, mockUsers, mockAuthz, mockAssets, template, "admin", mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "provisioning.Service.Provision").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockTenants, mockUsers, mockAuthz, mockAssets, mockTracer, mockLogger)

			err := s.Provision(context.Background(), userID, req)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Provision_ChecksTemplateID(t *testing.T) {
	userID := "user-123"
	username := "alice"
	template := &types.TenantTemplate{ID: "fixed-id", Name: "template"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenants := NewMockTenantStoreInterface(ctrl)
	mockUsers := NewMockUserStoreInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockAssets := NewMockAssetBootstrapInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockTenants, mockUsers, mockAuthz, mockAssets, template, "admin", mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "provisioning.Service.Provision").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockUsers.EXPECT().GetUsername(gomock.Any(), userID).Return(username, nil)
	mockTenants.EXPECT().GetTenantByID(gomock.Any(), "fixed-id").Return(&types.Tenant{ID: "fixed-id"}, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

	if err := s.Provision(context.Background(), userID, types.RequestInfo{Host: "example.com"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeriveRootURL(t *testing.T) {
	testCases := []struct {
		name        string
		slug        string
		req         types.RequestInfo
		expected    string
		expectedErr bool
	}{
		{
			name:     "plain host",
			slug:     "alice",
			req:      types.RequestInfo{Scheme: "https", Host: "accounts.example.com"},
			expected: "https://alice.example.com",
		},
		{
			name:     "port is stripped",
			slug:     "alice",
			req:      types.RequestInfo{Scheme: "http", Host: "accounts.example.com:8080"},
			expected: "http://alice.example.com",
		},
		{
			name:     "multi-label public suffix",
			slug:     "bob",
			req:      types.RequestInfo{Scheme: "https", Host: "id.corp.example.co.uk"},
			expected: "https://bob.example.co.uk",
		},
		{
			name:     "missing scheme defaults to https",
			slug:     "alice",
			req:      types.RequestInfo{Host: "example.com"},
			expected: "https://alice.example.com",
		},
		{
			name:        "empty host",
			slug:        "alice",
			req:         types.RequestInfo{Scheme: "https"},
			expectedErr: true,
		},
		{
			name:        "bare public suffix",
			slug:        "alice",
			req:         types.RequestInfo{Scheme: "https", Host: "co.uk"},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := deriveRootURL(tc.slug, tc.req)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNameReservationsSerializeSameSlug(t *testing.T) {
	reservations := newNameReservations()

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release := reservations.acquire("john-doe")
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxInCritical != 1 {
		t.Errorf("expected at most one holder per slug, observed %d", maxInCritical)
	}

	reservations.mu.Lock()
	remaining := len(reservations.slots)
	reservations.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected all reservations released, %d remaining", remaining)
	}
}

func TestNameReservationsIndependentSlugs(t *testing.T) {
	reservations := newNameReservations()

	releaseA := reservations.acquire("alice")
	done := make(chan struct{})
	go func() {
		releaseB := reservations.acquire("bob")
		releaseB()
		close(done)
	}()

	<-done
	releaseA()
}
