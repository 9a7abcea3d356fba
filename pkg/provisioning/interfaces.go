// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, userID string, req types.RequestInfo) error
}

// TenantStoreInterface is the subset of the tenant store the engine needs.
type TenantStoreInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByName(ctx context.Context, name string) (*types.Tenant, error)
	CreateClientIfAbsent(ctx context.Context, c *types.Client) (*types.Client, error)
}

// UserStoreInterface resolves identities in the platform's user store.
type UserStoreInterface interface {
	GetUsername(ctx context.Context, id string) (string, error)
	GetIdentityIDByUsername(ctx context.Context, username string) (string, error)
}

type AuthzInterface interface {
	CheckPlatformAdmin(ctx context.Context, userID string) (bool, error)
	GrantTenantRole(ctx context.Context, tenantID, userID, role string) error
	LinkTenantToPrivileged(ctx context.Context, tenantID, privilegedID string) error
}

// AssetBootstrapInterface seeds the theme assets of a freshly created
// tenant.
type AssetBootstrapInterface interface {
	Bootstrap(ctx context.Context, tenantName string) error
}
