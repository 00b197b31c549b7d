package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

func newCreateAPICmd(app *appContext) *cobra.Command {
	var endpoint dto.EndpointConfig

	cmd := &cobra.Command{
		Use:   "create-api",
		Short: "Create or replace an API Gateway endpoint backed by a Lambda function",
		Long: `create-api wires a resource path on the configured API Gateway to a Lambda
function and deploys the result. An existing resource at the same path is
replaced.

Examples:
    aws-lambda-api create-api --api-name my-api --resource-path my-resource --function-name my-function
    aws-lambda-api create-api --api-name my-api --resource-path orders --http-method POST --stage prod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runCreateAPI(cmd.Context(), bundle, endpoint)
		},
	}

	cmd.Flags().StringVar(&endpoint.APIName, "api-name", "", "Name for the gateway when a new one has to be created")
	cmd.Flags().StringVar(&endpoint.ResourcePath, "resource-path", "", "Resource path to create under the root")
	cmd.Flags().StringVar(&endpoint.HTTPMethod, "http-method", "GET", "HTTP method for the endpoint")
	cmd.Flags().StringVar(&endpoint.StageName, "stage", "prod", "Deployment stage name")
	cmd.Flags().StringVar(&endpoint.FunctionName, "function-name", "", "Lambda function name (defaults to LAMBDA_FUNCTION_NAME)")
	_ = cmd.MarkFlagRequired("api-name")
	_ = cmd.MarkFlagRequired("resource-path")

	return cmd
}

func runCreateAPI(ctx context.Context, bundle *models.ServiceBundle, endpoint dto.EndpointConfig) error {
	state, err := bundle.Gateway.EnsureEndpoint(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("create-api failed: %w", err)
	}

	fmt.Println("API Gateway endpoint created successfully!")
	fmt.Printf("  API ID:        %s\n", state.APIID)
	fmt.Printf("  Resource ID:   %s\n", state.ResourceID)
	fmt.Printf("  Deployment ID: %s\n", state.DeploymentID)
	fmt.Printf("  Invoke URL:    %s\n", state.InvokeURL)
	fmt.Printf("\nTest it with:\n  curl -X %s %s\n", endpoint.HTTPMethod, state.InvokeURL)
	return nil
}
