// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

func TestHandleListTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().ListTenants(gomock.Any()).Return(
		[]*types.Tenant{
			{ID: "t1", Name: "alpha", DisplayName: "Alpha", Enabled: true, CreatedAt: created},
		},
		nil,
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var body struct {
		Data []tenantResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "alpha" {
		t.Fatalf("unexpected response body: %+v", body)
	}
	if body.Data[0].CreatedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected created_at: %s", body.Data[0].CreatedAt)
	}
}

func TestHandleGetTenant(t *testing.T) {
	tenantID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	tests := []struct {
		name       string
		path       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/v0/tenants/" + tenantID,
			setupMocks: func(service *MockServiceInterface, logger *MockLoggerInterface) {
				service.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Name: "alpha"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/v0/tenants/" + tenantID,
			setupMocks: func(service *MockServiceInterface, logger *MockLoggerInterface) {
				service.EXPECT().GetTenant(gomock.Any(), tenantID).Return(nil, fmt.Errorf("failed to get tenant %s: %w", tenantID, storage.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-uuid id is not found, no store round-trip",
			path:       "/api/v0/tenants/not-a-uuid",
			setupMocks: func(service *MockServiceInterface, logger *MockLoggerInterface) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			path: "/api/v0/tenants/" + tenantID,
			setupMocks: func(service *MockServiceInterface, logger *MockLoggerInterface) {
				service.EXPECT().GetTenant(gomock.Any(), tenantID).Return(nil, fmt.Errorf("boom"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}
