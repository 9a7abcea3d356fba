// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package themes

import (
	"context"
	"net/http"
)

// StoreInterface enumerates the candidate theme names available on disk.
type StoreInterface interface {
	ListThemes(ctx context.Context, themeType string) ([]string, error)
	Invalidate()
}

// ProviderInterface computes the theme-name set visible to a request.
type ProviderInterface interface {
	NameSet(ctx context.Context, themeType, currentTenant string, headers http.Header) ([]string, error)
}
