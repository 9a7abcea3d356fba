// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.opentelemetry.io/otel/trace"

	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ListTenants(t *testing.T) {
	tenants := []*types.Tenant{
		{ID: "t1", Name: "alpha", Enabled: true, CreatedAt: time.Now()},
		{ID: "t2", Name: "beta", Enabled: true, CreatedAt: time.Now()},
	}

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		want       int
		wantErr    bool
	}{
		{
			name: "returns all tenants",
			setupMocks: func(store *MockStorageInterface) {
				store.EXPECT().ListTenants(gomock.Any()).Return(tenants, nil)
			},
			want: 2,
		},
		{
			name: "propagates storage error",
			setupMocks: func(store *MockStorageInterface) {
				store.EXPECT().ListTenants(gomock.Any()).Return(nil, fmt.Errorf("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.ListTenants").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStore)

			s := NewService(mockStore, mockTracer, mockMonitor, mockLogger)

			got, err := s.ListTenants(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListTenants() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.want {
				t.Fatalf("ListTenants() returned %d tenants, want %d", len(got), tt.want)
			}
		})
	}
}

func TestService_GetTenant(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		wantErr    error
	}{
		{
			name: "returns the tenant",
			setupMocks: func(store *MockStorageInterface) {
				store.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&types.Tenant{ID: "t1", Name: "alpha"}, nil)
			},
		},
		{
			name: "wraps not found",
			setupMocks: func(store *MockStorageInterface) {
				store.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.GetTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStore)

			s := NewService(mockStore, mockTracer, mockMonitor, mockLogger)

			got, err := s.GetTenant(context.Background(), "t1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetTenant() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetTenant() error = %v", err)
			}
			if got.ID != "t1" {
				t.Fatalf("GetTenant() returned tenant %s, want t1", got.ID)
			}
		})
	}
}
