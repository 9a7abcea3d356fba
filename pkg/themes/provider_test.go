// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package themes -destination ./mock_themes.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package themes -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package themes -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package themes -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func bearerHeader(t *testing.T, preferredUsername string) http.Header {
	t.Helper()

	token, err := jwt.NewBuilder().Claim("preferred_username", preferredUsername).Build()
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	headers := http.Header{}
	headers.Add("Authorization", "Bearer "+string(signed))
	return headers
}

func TestVisibilityProvider_NameSet(t *testing.T) {
	candidates := []string{"aerobase", "aerobase-bootstrap", "john-doe", "acme"}
	shared := []string{"aerobase", "aerobase-bootstrap"}

	testCases := []struct {
		name          string
		enabled       bool
		currentTenant string
		headers       http.Header
		expected      []string
	}{
		{
			name:          "feature inactive returns the full set",
			enabled:       false,
			currentTenant: "acme",
			expected:      candidates,
		},
		{
			name:          "bootstrap tenant returns the full set",
			enabled:       true,
			currentTenant: "master",
			expected:      candidates,
		},
		{
			name:          "no token falls back to the current tenant",
			enabled:       true,
			currentTenant: "acme",
			expected:      []string{"aerobase", "aerobase-bootstrap", "acme"},
		},
		{
			name:          "token naming another tenant",
			enabled:       true,
			currentTenant: "acme",
			headers:       bearerHeader(t, "John.Doe"),
			expected:      []string{"aerobase", "aerobase-bootstrap", "john-doe"},
		},
		{
			name:          "token tenant without a theme falls back to current",
			enabled:       true,
			currentTenant: "acme",
			headers:       bearerHeader(t, "nobody"),
			expected:      []string{"aerobase", "aerobase-bootstrap", "acme"},
		},
		{
			name:          "garbage token is treated as absent",
			enabled:       true,
			currentTenant: "acme",
			headers:       http.Header{"Authorization": []string{"Bearer not-a-jwt"}},
			expected:      []string{"aerobase", "aerobase-bootstrap", "acme"},
		},
		{
			name:          "neither tenant has a theme",
			enabled:       true,
			currentTenant: "ghost",
			expected:      shared,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			p := NewVisibilityProvider(mockStore, tc.enabled, "master", "admin", shared, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "themes.VisibilityProvider.NameSet").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStore.EXPECT().ListThemes(gomock.Any(), "login").Return(candidates, nil)

			got, err := p.NameSet(context.Background(), "login", tc.currentTenant, tc.headers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for i, name := range tc.expected {
				if got[i] != name {
					t.Errorf("expected %v, got %v", tc.expected, got)
					break
				}
			}
		})
	}
}

func TestVisibilityProvider_NameSetStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	p := NewVisibilityProvider(mockStore, true, "master", "admin", nil, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "themes.VisibilityProvider.NameSet").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().ListThemes(gomock.Any(), "login").Return(nil, errors.New("themes root missing"))

	if _, err := p.NameSet(context.Background(), "login", "acme", nil); err == nil {
		t.Error("expected error but got none")
	}
}
