// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aerobase/tenant-provisioner/internal/db"
	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/pkg/authentication"
	"github.com/aerobase/tenant-provisioner/pkg/events"
	"github.com/aerobase/tenant-provisioner/pkg/metrics"
	"github.com/aerobase/tenant-provisioner/pkg/status"
	"github.com/aerobase/tenant-provisioner/pkg/tenant"
	"github.com/aerobase/tenant-provisioner/pkg/themes"
)

func NewRouter(
	eventHandler events.ServiceInterface,
	tenantService tenant.ServiceInterface,
	themeProvider themes.ProviderInterface,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	themes.NewAPI(themeProvider, logger).RegisterEndpoints(router)

	// Event intake and the tenants API run inside a lazy per-request
	// transaction and, when configured, behind JWT authentication.
	router.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware.Authenticate())
		}
		r.Use(db.TransactionMiddleware(dbClient, logger))

		events.NewAPI(eventHandler, logger).RegisterEndpoints(r)
		tenant.NewAPI(tenantService, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Forwarded-Proto"},
			MaxAge:         300,
		},
	)
}
