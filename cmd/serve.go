// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/aerobase/tenant-provisioner/internal/authorization"
	"github.com/aerobase/tenant-provisioner/internal/config"
	"github.com/aerobase/tenant-provisioner/internal/db"
	"github.com/aerobase/tenant-provisioner/internal/kratos"
	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring/prometheus"
	"github.com/aerobase/tenant-provisioner/internal/openfga"
	"github.com/aerobase/tenant-provisioner/internal/storage"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/pkg/authentication"
	"github.com/aerobase/tenant-provisioner/pkg/events"
	"github.com/aerobase/tenant-provisioner/pkg/federation"
	"github.com/aerobase/tenant-provisioner/pkg/provisioning"
	"github.com/aerobase/tenant-provisioner/pkg/tenant"
	"github.com/aerobase/tenant-provisioner/pkg/themes"
	"github.com/aerobase/tenant-provisioner/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-provisioner", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer authorization.AuthorizerInterface
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		fgaAuthorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
		if fgaAuthorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
		authorizer = fgaAuthorizer
	} else {
		authorizer = authorization.NewNoopAuthorizer(logger)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	template, err := provisioning.LoadTemplate()
	if err != nil {
		return fmt.Errorf("failed to load tenant template: %v", err)
	}

	themeStore := themes.NewDiskThemeStore(specs.ThemesRoot, specs.ThemeCacheEnabled, tracer, monitor, logger)
	assetBootstrapper := themes.NewBootstrapper(specs.ThemesRoot, specs.ReferenceTheme, themeStore, tracer, monitor, logger)
	themeProvider := themes.NewVisibilityProvider(
		themeStore,
		specs.PrivateThemesEnabled,
		specs.BootstrapTenant,
		specs.AdminUsername,
		specs.SharedThemes,
		tracer,
		monitor,
		logger,
	)

	provisioner := provisioning.NewService(
		s,
		kratosClient,
		authorizer,
		assetBootstrapper,
		template,
		specs.AdminUsername,
		tracer,
		monitor,
		logger,
	)
	federationService := federation.NewService(kratosClient, tracer, monitor, logger)
	eventHandler := events.NewService(provisioner, federationService, specs.BootstrapTenant, tracer, monitor, logger)
	tenantService := tenant.NewService(s, tracer, monitor, logger)

	var authMiddleware *authentication.Middleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.JWTIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT verification: %v", err)
		}
		authMiddleware = authentication.NewMiddleware(verifier, tracer, monitor, logger)
	}

	router := web.NewRouter(
		eventHandler,
		tenantService,
		themeProvider,
		authMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
