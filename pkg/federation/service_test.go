// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package federation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package federation -destination ./mock_federation.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package federation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package federation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package federation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleLogin(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name        string
		provider    string
		setupMocks  func(*MockUserAttributeInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:     "first link on empty attribute",
			provider: "google",
			setupMocks: func(users *MockUserAttributeInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetAttribute(gomock.Any(), userID, LinksAttribute).Return("", nil)
				users.EXPECT().SetAttribute(gomock.Any(), userID, LinksAttribute, "[google]").Return(nil)
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:     "second provider is appended",
			provider: "github",
			setupMocks: func(users *MockUserAttributeInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetAttribute(gomock.Any(), userID, LinksAttribute).Return("[google]", nil)
				users.EXPECT().SetAttribute(gomock.Any(), userID, LinksAttribute, "[google, github]").Return(nil)
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:     "repeat login is a no-op",
			provider: "google",
			setupMocks: func(users *MockUserAttributeInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetAttribute(gomock.Any(), userID, LinksAttribute).Return("[google, github]", nil)
			},
			expectedErr: false,
		},
		{
			name:     "error - attribute read fails",
			provider: "google",
			setupMocks: func(users *MockUserAttributeInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetAttribute(gomock.Any(), userID, LinksAttribute).Return("", errors.New("identity store error"))
			},
			expectedErr: true,
		},
		{
			name:     "error - attribute write fails",
			provider: "google",
			setupMocks: func(users *MockUserAttributeInterface, logger *MockLoggerInterface) {
				users.EXPECT().GetAttribute(gomock.Any(), userID, LinksAttribute).Return("", nil)
				users.EXPECT().SetAttribute(gomock.Any(), userID, LinksAttribute, "[google]").Return(errors.New("identity store error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserAttributeInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockUsers, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "federation.Service.HandleLogin").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockLogger)

			err := s.HandleLogin(context.Background(), userID, tc.provider)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMergeProviderLink(t *testing.T) {
	testCases := []struct {
		name            string
		encoded         string
		provider        string
		expected        string
		expectedChanged bool
	}{
		{
			name:            "empty list",
			encoded:         "",
			provider:        "google",
			expected:        "[google]",
			expectedChanged: true,
		},
		{
			name:            "empty brackets",
			encoded:         "[]",
			provider:        "google",
			expected:        "[google]",
			expectedChanged: true,
		},
		{
			name:            "append to existing",
			encoded:         "[google]",
			provider:        "github",
			expected:        "[google, github]",
			expectedChanged: true,
		},
		{
			name:            "already present",
			encoded:         "[google, github]",
			provider:        "google",
			expected:        "[google, github]",
			expectedChanged: false,
		},
		{
			name:            "sloppy whitespace survives a round trip",
			encoded:         "[ google ,github ]",
			provider:        "gitlab",
			expected:        "[google, github, gitlab]",
			expectedChanged: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := MergeProviderLink(tc.encoded, tc.provider)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
			if changed != tc.expectedChanged {
				t.Errorf("expected changed=%v, got %v", tc.expectedChanged, changed)
			}
		})
	}
}

func TestParseLinksRoundTrip(t *testing.T) {
	links := []string{"google", "github", "gitlab"}

	parsed := ParseLinks(EncodeLinks(links))
	if len(parsed) != len(links) {
		t.Fatalf("expected %d links, got %d", len(links), len(parsed))
	}
	for i, l := range links {
		if parsed[i] != l {
			t.Errorf("expected link %d to be %q, got %q", i, l, parsed[i])
		}
	}
}
