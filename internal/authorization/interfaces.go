// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/aerobase/tenant-provisioner/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	// CheckPlatformAdmin reports whether the user holds the
	// platform-wide admin role.
	CheckPlatformAdmin(context.Context, string) (bool, error)
	// GrantTenantRole grants a single administrative role on a tenant to
	// a user.
	GrantTenantRole(ctx context.Context, tenantID, userID, role string) error
	// AssignPrivilegedAdmin makes a user a platform-wide admin by adding
	// them to the privileged group.
	AssignPrivilegedAdmin(context.Context, string, string) error
	// LinkTenantToPrivileged binds a tenant to a privileged group so its
	// admins gain access to the tenant.
	LinkTenantToPrivileged(context.Context, string, string) error
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
}
