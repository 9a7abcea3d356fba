// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/openfga"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) CheckPlatformAdmin(ctx context.Context, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckPlatformAdmin")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userId), ADMIN_RELATION, PrivilegedTuple(PlatformGroup))
}

func (a *Authorizer) GrantTenantRole(ctx context.Context, tenantId, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.GrantTenantRole")
	defer span.End()

	if !slices.Contains(TenantAdminRoles, role) && role != OWNER_RELATION && role != MEMBER_RELATION {
		return fmt.Errorf("unknown role: %s", role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userId), role, TenantTuple(tenantId))
}

func (a *Authorizer) AssignPrivilegedAdmin(ctx context.Context, privilegedId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignPrivilegedAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ADMIN_RELATION, PrivilegedTuple(privilegedId))
}

func (a *Authorizer) LinkTenantToPrivileged(ctx context.Context, tenantId, privilegedId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkTenantToPrivileged")
	defer span.End()

	return a.client.WriteTuple(ctx, PrivilegedTuple(privilegedId), PRIVILEGED_RELATION, TenantTuple(tenantId))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
