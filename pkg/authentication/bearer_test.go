// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		name          string
		headers       []string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "no header",
			headers:       nil,
			expectedFound: false,
		},
		{
			name:          "plain bearer",
			headers:       []string{"Bearer abc"},
			expectedToken: "abc",
			expectedFound: true,
		},
		{
			name:          "scheme is case insensitive",
			headers:       []string{"bEaReR abc"},
			expectedToken: "abc",
			expectedFound: true,
		},
		{
			name:          "last qualifying header wins",
			headers:       []string{"Bearer first", "Basic dXNlcjpwYXNz", "Bearer second"},
			expectedToken: "second",
			expectedFound: true,
		},
		{
			name:          "three tokens are ignored",
			headers:       []string{"Bearer abc extra"},
			expectedFound: false,
		},
		{
			name:          "single token is ignored",
			headers:       []string{"Bearer"},
			expectedFound: false,
		},
		{
			name:          "surrounding whitespace is tolerated",
			headers:       []string{"  Bearer abc  "},
			expectedToken: "abc",
			expectedFound: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			for _, h := range tc.headers {
				headers.Add("Authorization", h)
			}

			token, found := BearerToken(headers)

			if found != tc.expectedFound {
				t.Fatalf("expected found=%v, got %v", tc.expectedFound, found)
			}
			if found && token != tc.expectedToken {
				t.Errorf("expected token %q, got %q", tc.expectedToken, token)
			}
		})
	}
}

func signedToken(t *testing.T, subject, preferredUsername string) string {
	t.Helper()

	builder := jwt.NewBuilder()
	if subject != "" {
		builder = builder.Subject(subject)
	}
	if preferredUsername != "" {
		builder = builder.Claim("preferred_username", preferredUsername)
	}

	token, err := builder.Build()
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return string(signed)
}

func TestClaimedSubject(t *testing.T) {
	testCases := []struct {
		name            string
		rawToken        string
		expectedSubject string
		expectedFound   bool
	}{
		{
			name:          "empty token",
			rawToken:      "",
			expectedFound: false,
		},
		{
			name:          "garbage token",
			rawToken:      "not-a-jwt",
			expectedFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			subject, found := ClaimedSubject(tc.rawToken)
			if found != tc.expectedFound {
				t.Fatalf("expected found=%v, got %v", tc.expectedFound, found)
			}
			if found && subject != tc.expectedSubject {
				t.Errorf("expected subject %q, got %q", tc.expectedSubject, subject)
			}
		})
	}

	t.Run("preferred username wins over subject", func(t *testing.T) {
		subject, found := ClaimedSubject(signedToken(t, "subject-id", "john.doe"))
		if !found || subject != "john.doe" {
			t.Errorf("expected john.doe, got %q (found=%v)", subject, found)
		}
	})

	t.Run("falls back to subject", func(t *testing.T) {
		subject, found := ClaimedSubject(signedToken(t, "subject-id", ""))
		if !found || subject != "subject-id" {
			t.Errorf("expected subject-id, got %q (found=%v)", subject, found)
		}
	})

	t.Run("no claims at all", func(t *testing.T) {
		if _, found := ClaimedSubject(signedToken(t, "", "")); found {
			t.Error("expected no subject")
		}
	})
}
