// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	// BootstrapTenant is the root administrative tenant, the only
	// sanctioned origin of self-service tenant creation.
	BootstrapTenant string `envconfig:"bootstrap_tenant" default:"master"`
	// AdminUsername is the platform admin identity granted remote
	// administrative access to every self-service tenant.
	AdminUsername string `envconfig:"admin_username" default:"admin"`

	ThemesRoot           string   `envconfig:"themes_root" default:"./themes"`
	ReferenceTheme       string   `envconfig:"reference_theme" default:"aerobase"`
	SharedThemes         []string `envconfig:"shared_themes" default:"aerobase,aerobase-bootstrap"`
	ThemeCacheEnabled    bool     `envconfig:"theme_cache_enabled" default:"true"`
	PrivateThemesEnabled bool     `envconfig:"private_themes_enabled" default:"false"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	JWTIssuer             string   `envconfig:"jwt_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`
}
