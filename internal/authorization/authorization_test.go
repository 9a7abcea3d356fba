// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func setupAuthorizer(t *testing.T) (*Authorizer, *MockAuthzClientInterface, *MockTracingInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	return NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger), mockClient, mockTracer
}

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "member"
	object := "tenant:456"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", OWNER_RELATION, "tenant:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient, mockTracer := setupAuthorizer(t)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_CheckPlatformAdmin(t *testing.T) {
	userId := "user-123"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - platform admin",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-123", ADMIN_RELATION, "privileged:platform").Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not a platform admin",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-123", ADMIN_RELATION, "privileged:platform").Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-123", ADMIN_RELATION, "privileged:platform").Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient, mockTracer := setupAuthorizer(t)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckPlatformAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.CheckPlatformAdmin(context.Background(), userId)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_GrantTenantRole(t *testing.T) {
	tenantId := "tenant-456"
	userId := "user-123"

	testCases := []struct {
		name        string
		role        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success - admin role",
			role: "manage_tenant",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-123", "manage_tenant", "tenant:tenant-456").Return(nil)
			},
		},
		{
			name: "success - owner role",
			role: OWNER_RELATION,
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-123", OWNER_RELATION, "tenant:tenant-456").Return(nil)
			},
		},
		{
			name:        "error - unknown role is rejected before any write",
			role:        "superuser",
			setupMocks:  func(mockClient *MockAuthzClientInterface) {},
			expectedErr: true,
		},
		{
			name: "error - client error",
			role: "view_tenant",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-123", "view_tenant", "tenant:tenant-456").Return(errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient, mockTracer := setupAuthorizer(t)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.GrantTenantRole").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.GrantTenantRole(context.Background(), tenantId, userId, tc.role)

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

func TestAuthorizer_AssignPrivilegedAdmin(t *testing.T) {
	a, mockClient, mockTracer := setupAuthorizer(t)

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignPrivilegedAdmin").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-123", ADMIN_RELATION, "privileged:platform").Return(nil)

	if err := a.AssignPrivilegedAdmin(context.Background(), PlatformGroup, "user-123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_LinkTenantToPrivileged(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "privileged:platform", PRIVILEGED_RELATION, "tenant:tenant-456").Return(nil)
			},
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "privileged:platform", PRIVILEGED_RELATION, "tenant:tenant-456").Return(errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient, mockTracer := setupAuthorizer(t)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.LinkTenantToPrivileged").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.LinkTenantToPrivileged(context.Background(), "tenant-456", PlatformGroup)

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

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - model matches",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "error - model differs",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient, mockTracer := setupAuthorizer(t)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ValidateModel").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.ValidateModel(context.Background())

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
