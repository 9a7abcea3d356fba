// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package federation

import (
	"context"
)

type ServiceInterface interface {
	HandleLogin(ctx context.Context, userID, provider string) error
}

// UserAttributeInterface is the subset of the identity store the link
// tracker needs.
type UserAttributeInterface interface {
	GetAttribute(ctx context.Context, id, key string) (string, error)
	SetAttribute(ctx context.Context, id, key, value string) error
}
