// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/aerobase/tenant-provisioner/internal/logging"
)

func TestAPI_ListThemes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockProvider, logging.NewNoopLogger()).RegisterEndpoints(mux)

	mockProvider.EXPECT().NameSet(gomock.Any(), "login", "acme", gomock.Any()).Return([]string{"aerobase", "acme"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/acme/themes/login", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0] != "aerobase" || body.Data[1] != "acme" {
		t.Errorf("unexpected theme names %v", body.Data)
	}
}

func TestAPI_ListThemesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockProvider, logging.NewNoopLogger()).RegisterEndpoints(mux)

	mockProvider.EXPECT().NameSet(gomock.Any(), "login", "acme", gomock.Any()).Return(nil, errors.New("themes root missing"))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/acme/themes/login", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
