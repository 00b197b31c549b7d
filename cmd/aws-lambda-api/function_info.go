package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func newFunctionInfoCmd(app *appContext) *cobra.Command {
	var functionName string

	cmd := &cobra.Command{
		Use:   "function-info",
		Short: "Show the configuration of a Lambda function",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runFunctionInfo(cmd.Context(), bundle, functionName)
		},
	}

	cmd.Flags().StringVar(&functionName, "function-name", "", "Lambda function name (defaults to LAMBDA_FUNCTION_NAME)")

	return cmd
}

func runFunctionInfo(ctx context.Context, bundle *models.ServiceBundle, functionName string) error {
	info, err := bundle.Lambda.FunctionInfo(ctx, functionName)
	if err != nil {
		return fmt.Errorf("function-info failed: %w", err)
	}

	fmt.Printf("Function:      %s\n", info.FunctionName)
	fmt.Printf("ARN:           %s\n", info.FunctionArn)
	fmt.Printf("Runtime:       %s\n", info.Runtime)
	fmt.Printf("Handler:       %s\n", info.Handler)
	fmt.Printf("Memory:        %d MB\n", info.MemorySize)
	fmt.Printf("Timeout:       %d s\n", info.Timeout)
	fmt.Printf("State:         %s\n", info.State)
	fmt.Printf("Last modified: %s\n", info.LastModified)
	if info.Description != "" {
		fmt.Printf("Description:   %s\n", info.Description)
	}
	return nil
}
