// Command aws-lambda-api manages API Gateway endpoints backed by Lambda
// functions.
//
// Usage:
//
//	aws-lambda-api create-api --api-name my-api --resource-path my-resource   Create or replace an endpoint
//	aws-lambda-api invoke-lambda --payload '{"action":"test"}'                Invoke the function directly
//	aws-lambda-api call-api --resource-path my-resource                       Call the deployed endpoint
//	aws-lambda-api list-resources                                             List API resources
//	aws-lambda-api version                                                    Show version
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/config"
	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appContext carries the persistent flag values into the subcommands.
type appContext struct {
	region  string
	profile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	app := &appContext{}

	cmd := &cobra.Command{
		Use:   "aws-lambda-api",
		Short: "Manage API Gateway endpoints backed by Lambda functions",
		Long: `aws-lambda-api provisions REST endpoints on AWS API Gateway, wires them to
Lambda functions and exercises the result.

Create an endpoint and call it:

    aws-lambda-api create-api --api-name my-api --resource-path my-resource --function-name my-function
    aws-lambda-api call-api --resource-path my-resource --http-method GET

Credentials come from the usual AWS sources (environment, shared config,
instance role). AWS_REGION, API_GATEWAY_ID and LAMBDA_FUNCTION_NAME provide
the defaults for --region, --api-id and --function-name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&app.region, "region", "", "AWS region (defaults to AWS_REGION)")
	cmd.PersistentFlags().StringVar(&app.profile, "profile", "", "AWS shared config profile")
	cmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newCreateAPICmd(app),
		newInvokeLambdaCmd(app),
		newCallAPICmd(app),
		newListResourcesCmd(app),
		newDeleteResourceCmd(app),
		newFunctionInfoCmd(app),
		newFunctionLogsCmd(app),
		newVersionCmd(),
	)
	return cmd
}

// bundle resolves the configuration, applies the persistent flag overrides
// and wires the services.
func (a *appContext) bundle(ctx context.Context) (*models.ServiceBundle, *zap.Logger, error) {
	logger, err := a.newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if a.region != "" {
		cfg.Region = a.region
	}
	if a.profile != "" {
		cfg.Profile = a.profile
	}

	b, err := models.NewServiceBundle(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return b, logger, nil
}

func (a *appContext) newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if a.debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aws-lambda-api %s\n", getVersion())
		},
	}
}
