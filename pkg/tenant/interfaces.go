// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

type ServiceInterface interface {
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
}

type StorageInterface interface {
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}
