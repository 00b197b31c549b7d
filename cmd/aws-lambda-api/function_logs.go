package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func newFunctionLogsCmd(app *appContext) *cobra.Command {
	var (
		functionName string
		limit        int32
	)

	cmd := &cobra.Command{
		Use:   "function-logs",
		Short: "Show recent CloudWatch logs of a Lambda function",
		Long: `function-logs prints the newest events from the function's CloudWatch log
group, oldest first.

Examples:
    aws-lambda-api function-logs
    aws-lambda-api function-logs --function-name my-function --limit 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runFunctionLogs(cmd.Context(), bundle, functionName, limit)
		},
	}

	cmd.Flags().StringVar(&functionName, "function-name", "", "Lambda function name (defaults to LAMBDA_FUNCTION_NAME)")
	cmd.Flags().Int32Var(&limit, "limit", 50, "Maximum number of events to show")

	return cmd
}

func runFunctionLogs(ctx context.Context, bundle *models.ServiceBundle, functionName string, limit int32) error {
	events, err := bundle.Logs.Recent(ctx, functionName, limit)
	if err != nil {
		return fmt.Errorf("function-logs failed: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No log events found.")
		return nil
	}
	for _, ev := range events {
		fmt.Printf("%s  %s\n", ev.Timestamp.UTC().Format(time.RFC3339), strings.TrimRight(ev.Message, "\n"))
	}
	return nil
}
