// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/openfga"
)

// NoopAuthorizer is used when authorization is disabled. It reports the
// platform admin role as held, which makes the grant module skip all
// grants, and swallows every write.
type NoopAuthorizer struct {
	logger logging.LoggerInterface
}

func (a *NoopAuthorizer) Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	return true, nil
}

func (a *NoopAuthorizer) ValidateModel(ctx context.Context) error {
	return nil
}

func (a *NoopAuthorizer) CheckPlatformAdmin(ctx context.Context, userId string) (bool, error) {
	return true, nil
}

func (a *NoopAuthorizer) GrantTenantRole(ctx context.Context, tenantId, userId, role string) error {
	a.logger.Debugf("authorization disabled, skipping grant of %s on %s to %s", role, tenantId, userId)
	return nil
}

func (a *NoopAuthorizer) AssignPrivilegedAdmin(ctx context.Context, privilegedId, userId string) error {
	return nil
}

func (a *NoopAuthorizer) LinkTenantToPrivileged(ctx context.Context, tenantId, privilegedId string) error {
	return nil
}

func NewNoopAuthorizer(logger logging.LoggerInterface) *NoopAuthorizer {
	return &NoopAuthorizer{logger: logger}
}
