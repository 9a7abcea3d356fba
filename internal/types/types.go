// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is an isolated workspace in the identity platform. Name is the
// globally unique normalized slug.
type Tenant struct {
	ID                          string    `db:"id"`
	Name                        string    `db:"name"`
	DisplayName                 string    `db:"display_name"`
	DisplayNameHTML             string    `db:"display_name_html"`
	LoginTheme                  string    `db:"login_theme"`
	RegistrationAllowed         bool      `db:"registration_allowed"`
	RegistrationEmailAsUsername bool      `db:"registration_email_as_username"`
	ResetPasswordAllowed        bool      `db:"reset_password_allowed"`
	RememberMe                  bool      `db:"remember_me"`
	VerifyEmail                 bool      `db:"verify_email"`
	Enabled                     bool      `db:"enabled"`
	CreatedAt                   time.Time `db:"created_at"`
}

// TenantTemplate is the immutable blueprint a new tenant is instantiated
// from, loaded once from the bundled resource.
type TenantTemplate struct {
	ID                          string `json:"id,omitempty"`
	Name                        string `json:"name"`
	LoginTheme                  string `json:"loginTheme"`
	DisplayName                 string `json:"displayName"`
	DisplayNameHTML             string `json:"displayNameHtml"`
	RegistrationAllowed         bool   `json:"registrationAllowed"`
	RegistrationEmailAsUsername bool   `json:"registrationEmailAsUsername"`
	ResetPasswordAllowed        bool   `json:"resetPasswordAllowed"`
	RememberMe                  bool   `json:"rememberMe"`
	VerifyEmail                 bool   `json:"verifyEmail"`
}

// Client is an application client registered within a tenant.
type Client struct {
	ID                  string    `db:"id"`
	TenantID            string    `db:"tenant_id"`
	ClientID            string    `db:"client_id"`
	RootURL             string    `db:"root_url"`
	BaseURL             string    `db:"base_url"`
	ManagementURL       string    `db:"management_url"`
	RedirectURI         string    `db:"redirect_uri"`
	WebOrigin           string    `db:"web_origin"`
	Public              bool      `db:"public"`
	StandardFlowEnabled bool      `db:"standard_flow_enabled"`
	Enabled             bool      `db:"enabled"`
	CreatedAt           time.Time `db:"created_at"`
}

// RequestInfo describes the request that triggered an event, used to
// derive the default client root URL.
type RequestInfo struct {
	Scheme string
	Host   string
}

// UserEvent is the platform event record pushed to the intake endpoint.
type UserEvent struct {
	Type          string            `json:"type" validate:"required"`
	TenantContext string            `json:"tenant_context" validate:"required"`
	UserID        string            `json:"user_id"`
	Details       map[string]string `json:"details"`
	Request       *EventRequest     `json:"request,omitempty"`
}

// EventRequest is the optional originating-request envelope of a
// UserEvent.
type EventRequest struct {
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
}

// AdminEvent mirrors the platform's administrative event stream. The
// stream is accepted and ignored.
type AdminEvent struct {
	OperationType string `json:"operation_type"`
	ResourceType  string `json:"resource_type"`
	ResourcePath  string `json:"resource_path"`
	TenantContext string `json:"tenant_context"`
}
