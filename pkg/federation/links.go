// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package federation

import (
	"strings"
)

// ParseLinks decodes the bracketed list format the link attribute is
// stored in, e.g. "[google, github]". Empty or malformed noise decodes
// to an empty list rather than an error.
func ParseLinks(encoded string) []string {
	trimmed := strings.Trim(strings.TrimSpace(encoded), "[]")
	if trimmed == "" {
		return []string{}
	}

	parts := strings.Split(trimmed, ",")
	links := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			links = append(links, p)
		}
	}

	return links
}

// EncodeLinks renders the list back into the stored format.
func EncodeLinks(links []string) string {
	return "[" + strings.Join(links, ", ") + "]"
}

// MergeProviderLink appends the provider to the encoded link list unless
// it is already present. The second return reports whether the list
// changed.
func MergeProviderLink(encoded, provider string) (string, bool) {
	links := ParseLinks(encoded)
	for _, l := range links {
		if l == provider {
			return encoded, false
		}
	}

	return EncodeLinks(append(links, provider)), true
}
