// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package federation

import (
	"context"
	"fmt"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

// LinksAttribute is the identity attribute the provider link list is
// stored under.
const LinksAttribute = "identity_provider_links"

type Service struct {
	users UserAttributeInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(users UserAttributeInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		users:   users,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleLogin records the identity provider used for a federated login
// on the user's link attribute. A provider already on the list leaves
// the attribute untouched.
func (s *Service) HandleLogin(ctx context.Context, userID, provider string) error {
	ctx, span := s.tracer.Start(ctx, "federation.Service.HandleLogin")
	defer span.End()

	encoded, err := s.users.GetAttribute(ctx, userID, LinksAttribute)
	if err != nil {
		return fmt.Errorf("failed to read provider links for user %s: %w", userID, err)
	}

	merged, changed := MergeProviderLink(encoded, provider)
	if !changed {
		return nil
	}

	if err := s.users.SetAttribute(ctx, userID, LinksAttribute, merged); err != nil {
		return fmt.Errorf("failed to store provider links for user %s: %w", userID, err)
	}

	s.logger.Debugf("linked provider %s to user %s", provider, userID)
	return nil
}
