// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

func TestAPI_UserEvent(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		forwardedProto string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "valid registration event",
			body: `{"type":"REGISTER","tenant_context":"master","user_id":"user-123","request":{"scheme":"https","host":"accounts.example.com"}}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().OnUserEvent(gomock.Any(), gomock.Any(), types.RequestInfo{Scheme: "https", Host: "accounts.example.com"})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "envelope without request falls back to webhook coordinates",
			body:           `{"type":"REGISTER","tenant_context":"master","user_id":"user-123"}`,
			forwardedProto: "https",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().OnUserEvent(gomock.Any(), gomock.Any(), types.RequestInfo{Scheme: "https", Host: "example.com"})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{"type":`,
			setupMocks:     func(service *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			body:           `{"user_id":"user-123"}`,
			setupMocks:     func(service *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/events", strings.NewReader(tc.body))
			req.Host = "example.com"
			if tc.forwardedProto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.forwardedProto)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_AdminEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().OnAdminEvent(gomock.Any(), gomock.Any())

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/admin-events", strings.NewReader(`{"operation_type":"CREATE","resource_type":"USER"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
}
