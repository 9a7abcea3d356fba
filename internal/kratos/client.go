// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetIdentityIDByUsername(ctx context.Context, username string) (string, error)
	GetUsername(ctx context.Context, id string) (string, error)
	GetAttribute(ctx context.Context, id, key string) (string, error)
	SetAttribute(ctx context.Context, id, key, value string) error
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) GetIdentityIDByUsername(ctx context.Context, username string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByUsername")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(username).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// GetUsername resolves the account identifier of an identity, preferring
// the username trait and falling back to email.
func (c *Client) GetUsername(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetUsername")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("identity %s has no traits", id)
	}

	if username, ok := traits["username"].(string); ok && username != "" {
		return username, nil
	}
	if email, ok := traits["email"].(string); ok && email != "" {
		return email, nil
	}

	return "", fmt.Errorf("identity %s has neither username nor email trait", id)
}

func (c *Client) GetAttribute(ctx context.Context, id, key string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetAttribute")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	metadata := identity.MetadataPublic
	if metadata == nil {
		return "", nil
	}

	value, _ := metadata[key].(string)
	return value, nil
}

func (c *Client) SetAttribute(ctx context.Context, id, key, value string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SetAttribute")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return err
	}

	metadata := identity.MetadataPublic
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata[key] = value

	patch := []ory.JsonPatch{
		{Op: "add", Path: "/metadata_public", Value: metadata},
	}

	if _, _, err := c.client.IdentityAPI.PatchIdentity(ctx, id).JsonPatch(patch).Execute(); err != nil {
		return fmt.Errorf("failed to patch identity: %w", err)
	}

	return nil
}
