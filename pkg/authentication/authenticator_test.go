// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

func TestNewJWTAuthenticatorRequiresIssuer(t *testing.T) {
	logger := logging.NewNoopLogger()

	_, err := NewJWTAuthenticator(
		context.Background(),
		"",
		"https://idp.example.com/keys",
		nil,
		"",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
	if err == nil {
		t.Fatal("expected an error for empty issuer")
	}
}

func TestNewJWTAuthenticatorWithJWKSURL(t *testing.T) {
	logger := logging.NewNoopLogger()

	verifier, err := NewJWTAuthenticator(
		context.Background(),
		"https://idp.example.com",
		"https://idp.example.com/keys",
		[]string{"service-account"},
		"",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verifier == nil {
		t.Fatal("expected a verifier")
	}
}

func TestNewJWTAuthenticatorWithDiscovery(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 srv.URL,
			"jwks_uri":               srv.URL + "/keys",
			"authorization_endpoint": srv.URL + "/auth",
			"token_endpoint":         srv.URL + "/token",
		})
	}))
	defer srv.Close()

	logger := logging.NewNoopLogger()

	verifier, err := NewJWTAuthenticator(
		context.Background(),
		srv.URL,
		"",
		nil,
		"openid",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verifier == nil {
		t.Fatal("expected a verifier")
	}
}
