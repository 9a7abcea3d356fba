// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerobase/tenant-provisioner/internal/logging"
)

type API struct {
	provider ProviderInterface
	logger   logging.LoggerInterface
}

func NewAPI(provider ProviderInterface, logger logging.LoggerInterface) *API {
	return &API{
		provider: provider,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tenants/{tenant}/themes/{type}", a.listThemes)
}

func (a *API) listThemes(w http.ResponseWriter, r *http.Request) {
	currentTenant := chi.URLParam(r, "tenant")
	themeType := chi.URLParam(r, "type")

	names, err := a.provider.NameSet(r.Context(), themeType, currentTenant, r.Header)
	if err != nil {
		a.logger.Errorf("failed to resolve theme names: %v", err)
		http.Error(w, "failed to resolve theme names", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": names,
	})
}
