// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/events", a.userEvent)
	mux.Post("/api/v0/admin-events", a.adminEvent)
}

func (a *API) userEvent(w http.ResponseWriter, r *http.Request) {
	event := new(types.UserEvent)
	if err := json.NewDecoder(r.Body).Decode(event); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(event); err != nil {
		a.logger.Debugf("rejected event payload: %v", err)
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	a.service.OnUserEvent(r.Context(), event, requestInfo(event, r))

	w.WriteHeader(http.StatusOK)
}

func (a *API) adminEvent(w http.ResponseWriter, r *http.Request) {
	event := new(types.AdminEvent)
	if err := json.NewDecoder(r.Body).Decode(event); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	a.service.OnAdminEvent(r.Context(), event)

	w.WriteHeader(http.StatusNoContent)
}

// requestInfo picks the originating request coordinates from the event
// envelope, falling back to the webhook call itself.
func requestInfo(event *types.UserEvent, r *http.Request) types.RequestInfo {
	if event.Request != nil && event.Request.Host != "" {
		return types.RequestInfo{Scheme: event.Request.Scheme, Host: event.Request.Host}
	}

	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}

	return types.RequestInfo{Scheme: scheme, Host: r.Host}
}
