// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// NormalizeTenantName maps an arbitrary account identifier to a valid
// tenant slug: every character outside [A-Za-z0-9] becomes '-', the
// result is lowercased. The mapping is deterministic and total but not
// injective; colliding identifiers fall into the duplicate-skip path of
// the provisioning engine.
func NormalizeTenantName(identifier string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(identifier, "-"))
}
