// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aerobase/tenant-provisioner/internal/db"
	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
	"github.com/aerobase/tenant-provisioner/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"id", "name", "display_name", "display_name_html", "login_theme",
	"registration_allowed", "registration_email_as_username",
	"reset_password_allowed", "remember_me", "verify_email",
	"enabled", "created_at",
}

var clientColumns = []string{
	"id", "tenant_id", "client_id", "root_url", "base_url", "management_url",
	"redirect_uri", "web_origin", "public", "standard_flow_enabled",
	"enabled", "created_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id := t.ID
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
		}
		id = generated.String()
	}

	var created types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns(
			"id", "name", "display_name", "display_name_html", "login_theme",
			"registration_allowed", "registration_email_as_username",
			"reset_password_allowed", "remember_me", "verify_email", "enabled",
		).
		Values(
			id, t.Name, t.DisplayName, t.DisplayNameHTML, t.LoginTheme,
			t.RegistrationAllowed, t.RegistrationEmailAsUsername,
			t.ResetPasswordAllowed, t.RememberMe, t.VerifyEmail, t.Enabled,
		).
		Suffix("RETURNING " + joinColumns(tenantColumns)).
		QueryRowContext(ctx).
		Scan(tenantFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantByName(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByName")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"name": name})
}

func (s *Storage) getTenant(ctx context.Context, where sq.Eq) (*types.Tenant, error) {
	var t types.Tenant
	err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(where).
		QueryRowContext(ctx).
		Scan(tenantFields(&t)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(tenantFields(&t)...); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// CreateClientIfAbsent registers the client unless one with the same
// client_id already exists in the tenant, in which case the existing
// client is returned untouched.
func (s *Storage) CreateClientIfAbsent(ctx context.Context, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClientIfAbsent")
	defer span.End()

	existing, err := s.GetClientByClientID(ctx, c.TenantID, c.ClientID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	var created types.Client
	err = s.db.Statement(ctx).
		Insert("clients").
		Columns(
			"id", "tenant_id", "client_id", "root_url", "base_url",
			"management_url", "redirect_uri", "web_origin", "public",
			"standard_flow_enabled", "enabled",
		).
		Values(
			id.String(), c.TenantID, c.ClientID, c.RootURL, c.BaseURL,
			c.ManagementURL, c.RedirectURI, c.WebOrigin, c.Public,
			c.StandardFlowEnabled, c.Enabled,
		).
		Suffix("RETURNING " + joinColumns(clientColumns)).
		QueryRowContext(ctx).
		Scan(clientFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			// Lost the race to a concurrent registration, fetch the winner.
			return s.GetClientByClientID(ctx, c.TenantID, c.ClientID)
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetClientByClientID(ctx context.Context, tenantID, clientID string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientByClientID")
	defer span.End()

	var c types.Client
	err := s.db.Statement(ctx).
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"tenant_id": tenantID, "client_id": clientID}).
		QueryRowContext(ctx).
		Scan(clientFields(&c)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

func tenantFields(t *types.Tenant) []any {
	return []any{
		&t.ID, &t.Name, &t.DisplayName, &t.DisplayNameHTML, &t.LoginTheme,
		&t.RegistrationAllowed, &t.RegistrationEmailAsUsername,
		&t.ResetPasswordAllowed, &t.RememberMe, &t.VerifyEmail,
		&t.Enabled, &t.CreatedAt,
	}
}

func clientFields(c *types.Client) []any {
	return []any{
		&c.ID, &c.TenantID, &c.ClientID, &c.RootURL, &c.BaseURL,
		&c.ManagementURL, &c.RedirectURI, &c.WebOrigin, &c.Public,
		&c.StandardFlowEnabled, &c.Enabled, &c.CreatedAt,
	}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
