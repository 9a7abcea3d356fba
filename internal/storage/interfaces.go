// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByName(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	CreateClientIfAbsent(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByClientID(ctx context.Context, tenantID, clientID string) (*types.Client, error)
}
