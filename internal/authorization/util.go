// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"

	PRIVILEGED_RELATION = "privileged"
	ADMIN_RELATION      = "admin"

	// PlatformGroup is the privileged group every platform admin belongs
	// to. Tenants linked to it are remotely administrable.
	PlatformGroup = "platform"
)

// TenantAdminRoles enumerates the administrative roles of a tenant's
// administrative application. The grant module issues one grant per role
// per grantee.
var TenantAdminRoles = []string{
	"view_tenant",
	"manage_tenant",
	"view_users",
	"manage_users",
	"view_clients",
	"manage_clients",
	"view_events",
	"manage_events",
}

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func PrivilegedTuple(privilegedId string) string {
	return "privileged:" + privilegedId
}
