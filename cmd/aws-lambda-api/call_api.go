package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

func newCallAPICmd(app *appContext) *cobra.Command {
	var (
		apiID        string
		resourcePath string
		httpMethod   string
		stageName    string
		dataStr      string
	)

	cmd := &cobra.Command{
		Use:   "call-api",
		Short: "Call a deployed API Gateway endpoint over HTTP",
		Long: `call-api builds the invoke URL for a deployed resource and issues the HTTP
request against it.

Examples:
    aws-lambda-api call-api --resource-path my-resource
    aws-lambda-api call-api --api-id abc123 --resource-path orders --http-method POST --data '{"id":7}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body map[string]any
			if dataStr != "" {
				if err := json.Unmarshal([]byte(dataStr), &body); err != nil {
					return fmt.Errorf("invalid JSON data: %w", err)
				}
			}

			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runCallAPI(cmd.Context(), bundle, apiID, resourcePath, httpMethod, stageName, body)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "API Gateway ID (defaults to API_GATEWAY_ID)")
	cmd.Flags().StringVar(&resourcePath, "resource-path", "", "Resource path to call")
	cmd.Flags().StringVar(&httpMethod, "http-method", "GET", "HTTP method for the request")
	cmd.Flags().StringVar(&stageName, "stage", "prod", "Deployment stage name")
	cmd.Flags().StringVar(&dataStr, "data", "", "JSON body for the request")
	_ = cmd.MarkFlagRequired("resource-path")

	return cmd
}

func runCallAPI(ctx context.Context, bundle *models.ServiceBundle, apiID, resourcePath, httpMethod, stageName string, body map[string]any) error {
	if apiID == "" {
		apiID = bundle.Config.APIGatewayID
	}
	if apiID == "" {
		return errors.New("API Gateway ID must be provided via --api-id or API_GATEWAY_ID")
	}

	url := bundle.Gateway.InvokeURL(apiID, stageName, resourcePath)
	fmt.Printf("%s %s\n", httpMethod, url)

	opts := dto.RequestOptions{URL: url, Method: httpMethod}
	if body != nil {
		opts.Body = body
	}

	out, err := bundle.API.MakeRequest(ctx, opts)
	if err != nil {
		return fmt.Errorf("call-api failed: %w", err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
