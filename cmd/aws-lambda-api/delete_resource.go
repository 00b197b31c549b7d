package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func newDeleteResourceCmd(app *appContext) *cobra.Command {
	var (
		apiID        string
		resourceID   string
		resourcePath string
	)

	cmd := &cobra.Command{
		Use:   "delete-resource",
		Short: "Delete a resource from an API Gateway",
		Long: `delete-resource removes a resource, identified either by its ID or by its
path, together with everything beneath it.

Examples:
    aws-lambda-api delete-resource --resource-id res456
    aws-lambda-api delete-resource --resource-path /my-resource`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resourceID == "" && resourcePath == "" {
				return errors.New("either --resource-id or --resource-path must be provided")
			}

			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runDeleteResource(cmd.Context(), bundle, apiID, resourceID, resourcePath)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "API Gateway ID (defaults to API_GATEWAY_ID)")
	cmd.Flags().StringVar(&resourceID, "resource-id", "", "ID of the resource to delete")
	cmd.Flags().StringVar(&resourcePath, "resource-path", "", "Path of the resource to delete")

	return cmd
}

func runDeleteResource(ctx context.Context, bundle *models.ServiceBundle, apiID, resourceID, resourcePath string) error {
	if apiID == "" {
		apiID = bundle.Config.APIGatewayID
	}
	if apiID == "" {
		return errors.New("API Gateway ID must be provided via --api-id or API_GATEWAY_ID")
	}

	if resourceID == "" {
		found, err := bundle.Gateway.FindResourceByPath(ctx, apiID, resourcePath)
		if err != nil {
			return fmt.Errorf("delete-resource failed: %w", err)
		}
		if found == nil {
			return fmt.Errorf("no resource found at path %q", resourcePath)
		}
		resourceID = found.ID
	}

	if err := bundle.Gateway.DeleteResource(ctx, apiID, resourceID); err != nil {
		return fmt.Errorf("delete-resource failed: %w", err)
	}

	fmt.Printf("Deleted resource %s from API Gateway %s\n", resourceID, apiID)
	return nil
}
