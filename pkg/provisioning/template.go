// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

//go:embed tenant-template.json
var templateJSON []byte

// LoadTemplate parses the bundled tenant blueprint. It is read once at
// startup and shared, immutable, by every provisioning run.
func LoadTemplate() (*types.TenantTemplate, error) {
	template := new(types.TenantTemplate)
	if err := json.Unmarshal(templateJSON, template); err != nil {
		return nil, fmt.Errorf("failed to parse tenant template: %w", err)
	}

	return template, nil
}

// TenantFromTemplate instantiates a tenant spec for the given slug. Name,
// display fields and login theme all take the slug, and the self-service
// policy flags are forced on regardless of what the template carries.
func TenantFromTemplate(template *types.TenantTemplate, slug string) *types.Tenant {
	return &types.Tenant{
		ID:                          template.ID,
		Name:                        slug,
		DisplayName:                 slug,
		DisplayNameHTML:             slug,
		LoginTheme:                  slug,
		RegistrationAllowed:         true,
		RegistrationEmailAsUsername: true,
		ResetPasswordAllowed:        true,
		RememberMe:                  true,
		VerifyEmail:                 true,
		Enabled:                     true,
	}
}
