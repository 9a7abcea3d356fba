// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"regexp"
	"testing"
)

func TestNormalizeTenantName(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		expected   string
	}{
		{
			name:       "email address",
			identifier: "john.doe@example.com",
			expected:   "john-doe-example-com",
		},
		{
			name:       "plain username",
			identifier: "alice",
			expected:   "alice",
		},
		{
			name:       "uppercase is lowered",
			identifier: "Alice",
			expected:   "alice",
		},
		{
			name:       "spaces and underscores",
			identifier: "John Doe_42",
			expected:   "john-doe-42",
		},
		{
			name:       "unicode collapses to dashes",
			identifier: "jörg",
			expected:   "j-rg",
		},
		{
			name:       "empty input",
			identifier: "",
			expected:   "",
		},
		{
			name:       "already normalized",
			identifier: "john-doe-example-com",
			expected:   "john-doe-example-com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeTenantName(tc.identifier); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNormalizeTenantNameIsDeterministic(t *testing.T) {
	identifier := "John.Doe+test@Example.org"

	first := NormalizeTenantName(identifier)
	for i := 0; i < 10; i++ {
		if got := NormalizeTenantName(identifier); got != first {
			t.Fatalf("expected %q on every call, got %q", first, got)
		}
	}
}

func TestNormalizeTenantNameOutputAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	inputs := []string{
		"user@example.com",
		"ADMIN",
		"weird!#$%^&*()chars",
		"tabs\tand\nnewlines",
		"ümläüts-ärger",
	}
	for _, in := range inputs {
		if got := NormalizeTenantName(in); !valid.MatchString(got) {
			t.Errorf("normalized %q to %q, which leaves the slug alphabet", in, got)
		}
	}
}
