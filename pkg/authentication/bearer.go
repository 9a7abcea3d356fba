// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

const bearerScheme = "Bearer"

// BearerToken scans every Authorization header value for a two-token
// "Bearer <token>" form, scheme matched case-insensitively. When several
// values qualify the last one wins.
func BearerToken(headers http.Header) (string, bool) {
	token := ""
	for _, value := range headers.Values("Authorization") {
		split := strings.Fields(strings.TrimSpace(value))
		if len(split) != 2 {
			continue
		}
		if !strings.EqualFold(split[0], bearerScheme) {
			continue
		}
		token = split[1]
	}

	return token, token != ""
}

// ClaimedSubject reads the caller identity a bearer token claims, without
// verifying the signature: preferred_username when present, the subject
// otherwise. Any parse failure is reported as an absent token.
func ClaimedSubject(rawToken string) (string, bool) {
	if rawToken == "" {
		return "", false
	}

	token, err := jwt.ParseInsecure([]byte(rawToken))
	if err != nil {
		return "", false
	}

	if v, ok := token.Get("preferred_username"); ok {
		if username, ok := v.(string); ok && username != "" {
			return username, true
		}
	}

	if sub := token.Subject(); sub != "" {
		return sub, true
	}

	return "", false
}
