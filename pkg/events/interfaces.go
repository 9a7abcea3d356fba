// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/aerobase/tenant-provisioner/internal/types"
)

// ServiceInterface is the event-handler contract the HTTP dispatcher
// invokes. Handlers never fail the delivering caller; step errors are
// logged and the event stands acknowledged.
type ServiceInterface interface {
	OnUserEvent(ctx context.Context, event *types.UserEvent, req types.RequestInfo)
	OnAdminEvent(ctx context.Context, event *types.AdminEvent)
}
