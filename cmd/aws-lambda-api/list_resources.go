package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/models"
)

func newListResourcesCmd(app *appContext) *cobra.Command {
	var (
		apiID  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list-resources",
		Short: "List the resources of an API Gateway",
		Long: `list-resources shows every resource of the gateway together with the HTTP
methods configured on it.

Examples:
    aws-lambda-api list-resources
    aws-lambda-api list-resources --api-id abc123 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, logger, err := app.bundle(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runListResources(cmd.Context(), bundle, apiID, output)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "API Gateway ID (defaults to API_GATEWAY_ID)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")

	return cmd
}

func runListResources(ctx context.Context, bundle *models.ServiceBundle, apiID, output string) error {
	if apiID == "" {
		apiID = bundle.Config.APIGatewayID
	}
	if apiID == "" {
		return errors.New("API Gateway ID must be provided via --api-id or API_GATEWAY_ID")
	}

	resources, err := bundle.Gateway.ListResources(ctx, apiID)
	if err != nil {
		return fmt.Errorf("list-resources failed: %w", err)
	}

	switch output {
	case "json":
		data, err := json.MarshalIndent(resources, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}
		fmt.Printf("Resources in API Gateway %s (%d):\n\n", apiID, len(resources))
		for _, res := range resources {
			line := fmt.Sprintf("  %-12s %s", res.ID, res.Path)
			if len(res.Methods) > 0 {
				line += "  [" + strings.Join(res.Methods, " ") + "]"
			}
			fmt.Println(line)
		}

	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}
