// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/{tenant}", a.getTenant)
}

type tenantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	LoginTheme  string `json:"login_theme"`
	Enabled     bool   `json:"enabled"`
	CreatedAt   string `json:"created_at"`
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListTenants(r.Context())
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		http.Error(w, "failed to list tenants", http.StatusInternalServerError)
		return
	}

	data := make([]tenantResponse, len(tenants))
	for i, t := range tenants {
		data[i] = toResponse(t)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": data,
	})
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenant")
	// Tenant IDs are UUIDs; anything else can't name a tenant.
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "tenant not found", http.StatusNotFound)
		return
	}

	tenant, err := a.service.GetTenant(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		a.logger.Errorf("failed to get tenant %s: %v", id, err)
		http.Error(w, "failed to get tenant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": toResponse(tenant),
	})
}

func toResponse(t *types.Tenant) tenantResponse {
	return tenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		DisplayName: t.DisplayName,
		LoginTheme:  t.LoginTheme,
		Enabled:     t.Enabled,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
