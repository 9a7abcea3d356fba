// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aerobase/tenant-provisioner/internal/authorization"
	"github.com/aerobase/tenant-provisioner/internal/kratos"
	"github.com/aerobase/tenant-provisioner/internal/logging"
	"github.com/aerobase/tenant-provisioner/internal/monitoring"
	"github.com/aerobase/tenant-provisioner/internal/openfga"
	"github.com/aerobase/tenant-provisioner/internal/tracing"
)

// grantAdminCmd bootstraps a user into the platform-wide privileged
// group, after which the provisioning engine skips per-tenant grants for
// them entirely.
var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin",
	Short: "Grant a user the platform-wide admin role",
	Long:  `Adds a user to the privileged platform group in openfga, making them an admin of every tenant.`,
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		kratosURL, _ := cmd.Flags().GetString("kratos-admin-url")
		apiUrl, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeId, _ := cmd.Flags().GetString("fga-store-id")
		modelId, _ := cmd.Flags().GetString("fga-model-id")

		if err := grantAdmin(cmd.Context(), username, kratosURL, apiUrl, apiToken, storeId, modelId); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		cmd.Printf("Granted platform admin to %s\n", username)
	},
}

func init() {
	rootCmd.AddCommand(grantAdminCmd)

	grantAdminCmd.Flags().String("username", "admin", "Username to promote")
	grantAdminCmd.Flags().String("kratos-admin-url", "", "The kratos admin API URL")
	grantAdminCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	grantAdminCmd.Flags().String("fga-api-token", "", "The openfga API token")
	grantAdminCmd.Flags().String("fga-store-id", "", "The openfga store ID")
	grantAdminCmd.Flags().String("fga-model-id", "", "The openfga authorization model ID")
	grantAdminCmd.MarkFlagRequired("kratos-admin-url")
	grantAdminCmd.MarkFlagRequired("fga-api-url")
	grantAdminCmd.MarkFlagRequired("fga-api-token")
	grantAdminCmd.MarkFlagRequired("fga-store-id")
}

func grantAdmin(ctx context.Context, username, kratosURL, apiUrl, apiToken, storeId, modelId string) error {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	scheme, host, err := parseURL(apiUrl)
	if err != nil {
		return fmt.Errorf("failed to parse url: %w", err)
	}

	kratosClient := kratos.NewClient(kratosURL, tracer, monitor, logger)
	userID, err := kratosClient.GetIdentityIDByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up identity: %w", err)
	}
	if userID == "" {
		return fmt.Errorf("identity %q not found", username)
	}

	authorizer := authorization.NewAuthorizer(
		openfga.NewClient(
			openfga.NewConfig(scheme, host, storeId, apiToken, modelId, false, tracer, monitor, logger),
		),
		tracer,
		monitor,
		logger,
	)

	if err := authorizer.AssignPrivilegedAdmin(ctx, authorization.PlatformGroup, userID); err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	return nil
}
