package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func newInvokeLambdaCmd(app *appContext) *cobra.Command {
	var (
		functionName string
		payloadStr   string
	)

	cmd := &cobra.Command{
		Use:   "invoke-lambda",
		Short: "Invoke a Lambda function directly",
		Long: `invoke-lambda calls the function synchronously, bypassing the API Gateway,
and prints the JSON response.

Examples:
    aws-lambda-api invoke-lambda --payload '{"action":"test"}'
    aws-lambda-api invoke-lambda --function-name my-function`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The payload is validated before anything talks to AWS.
			var payload map[string]any
			if payloadStr != "" {
				if err := json.Unmarshal([]byte(payloadStr), &payload); err != nil {
					return fmt.Errorf("invalid JSON payload: %w", err)
				}
			}

			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runInvokeLambda(cmd.Context(), bundle, functionName, payload)
		},
	}

	cmd.Flags().StringVar(&functionName, "function-name", "", "Lambda function name (defaults to LAMBDA_FUNCTION_NAME)")
	cmd.Flags().StringVar(&payloadStr, "payload", "", "JSON payload for the invocation")

	return cmd
}

func runInvokeLambda(ctx context.Context, bundle *models.ServiceBundle, functionName string, payload map[string]any) error {
	out, err := bundle.Lambda.Invoke(ctx, functionName, payload)
	if err != nil {
		return fmt.Errorf("invoke-lambda failed: %w", err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
