package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"go.uber.org/zap"

	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

// APIGWRepository wraps the AWS API Gateway (REST v1) operations.
type APIGWRepository struct {
	API    APIGatewayAPI
	Logger *zap.Logger
}

// GetRestAPI looks up an existing REST API and returns its name.
func (r *APIGWRepository) GetRestAPI(ctx context.Context, apiID string) (string, error) {
	out, err := r.API.GetRestApi(ctx, &apigw.GetRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return "", fmt.Errorf("GetRestApi failed: %w", err)
	}
	return aws.ToString(out.Name), nil
}

// CreateRestAPI creates a new REST API with a regional endpoint and returns
// its ID.
func (r *APIGWRepository) CreateRestAPI(ctx context.Context, name, description string) (string, error) {
	input := &apigw.CreateRestApiInput{
		Name: aws.String(name),
		EndpointConfiguration: &types.EndpointConfiguration{
			Types: []types.EndpointType{types.EndpointTypeRegional},
		},
	}
	if description != "" {
		input.Description = aws.String(description)
	}

	out, err := r.API.CreateRestApi(ctx, input)
	if err != nil {
		return "", fmt.Errorf("CreateRestApi failed: %w", err)
	}

	apiID := aws.ToString(out.Id)
	r.Logger.Info("created API Gateway", zap.String("api_id", apiID), zap.String("name", name))
	return apiID, nil
}

// GetResources lists the resources of a REST API.
func (r *APIGWRepository) GetResources(ctx context.Context, apiID string) ([]dto.ResourceInfo, error) {
	out, err := r.API.GetResources(ctx, &apigw.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return nil, fmt.Errorf("GetResources failed: %w", err)
	}

	resources := make([]dto.ResourceInfo, 0, len(out.Items))
	for _, item := range out.Items {
		methods := make([]string, 0, len(item.ResourceMethods))
		for m := range item.ResourceMethods {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		resources = append(resources, dto.ResourceInfo{
			ID:       aws.ToString(item.Id),
			ParentID: aws.ToString(item.ParentId),
			Path:     aws.ToString(item.Path),
			PathPart: aws.ToString(item.PathPart),
			Methods:  methods,
		})
	}
	return resources, nil
}

// GetRootResourceID returns the ID of the root ("/") resource.
func (r *APIGWRepository) GetRootResourceID(ctx context.Context, apiID string) (string, error) {
	resources, err := r.GetResources(ctx, apiID)
	if err != nil {
		return "", err
	}

	for _, res := range resources {
		if res.Path == "/" {
			return res.ID, nil
		}
	}
	return "", fmt.Errorf("root resource not found for API ID: %s", apiID)
}

// FindResourceByPath returns the resource at the given full path, or nil when
// no resource has that path.
func (r *APIGWRepository) FindResourceByPath(ctx context.Context, apiID, path string) (*dto.ResourceInfo, error) {
	resources, err := r.GetResources(ctx, apiID)
	if err != nil {
		return nil, err
	}

	for _, res := range resources {
		if res.Path == path {
			return &res, nil
		}
	}
	return nil, nil
}

// CreateResource creates a resource under the given parent and returns its ID.
func (r *APIGWRepository) CreateResource(ctx context.Context, apiID, parentID, pathPart string) (string, error) {
	out, err := r.API.CreateResource(ctx, &apigw.CreateResourceInput{
		RestApiId: aws.String(apiID),
		ParentId:  aws.String(parentID),
		PathPart:  aws.String(strings.Trim(pathPart, "/")),
	})
	if err != nil {
		return "", fmt.Errorf("CreateResource failed: %w", err)
	}

	resourceID := aws.ToString(out.Id)
	r.Logger.Info("created resource",
		zap.String("api_id", apiID),
		zap.String("resource_id", resourceID),
		zap.String("path_part", pathPart))
	return resourceID, nil
}

// PutMethod creates a method with open authorization and no API key
// requirement.
func (r *APIGWRepository) PutMethod(ctx context.Context, apiID, resourceID, httpMethod string) error {
	_, err := r.API.PutMethod(ctx, &apigw.PutMethodInput{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(httpMethod),
		AuthorizationType: aws.String("NONE"),
		ApiKeyRequired:    false,
	})
	if err != nil {
		return fmt.Errorf("PutMethod failed: %w", err)
	}

	r.Logger.Info("created method",
		zap.String("resource_id", resourceID),
		zap.String("http_method", httpMethod))
	return nil
}

// PutIntegration wires a method to a Lambda function as a synchronous AWS
// integration invoked over POST.
func (r *APIGWRepository) PutIntegration(ctx context.Context, apiID, resourceID, httpMethod, functionArn, region string) error {
	uri := fmt.Sprintf("arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", region, functionArn)

	_, err := r.API.PutIntegration(ctx, &apigw.PutIntegrationInput{
		RestApiId:             aws.String(apiID),
		ResourceId:            aws.String(resourceID),
		HttpMethod:            aws.String(httpMethod),
		Type:                  types.IntegrationTypeAws,
		IntegrationHttpMethod: aws.String("POST"),
		Uri:                   aws.String(uri),
		ContentHandling:       types.ContentHandlingStrategyConvertToText,
	})
	if err != nil {
		return fmt.Errorf("PutIntegration failed: %w", err)
	}
	return nil
}

// PutIntegrationResponse registers the 200 integration response with an empty
// selection pattern, making it the catch-all mapping.
func (r *APIGWRepository) PutIntegrationResponse(ctx context.Context, apiID, resourceID, httpMethod string) error {
	_, err := r.API.PutIntegrationResponse(ctx, &apigw.PutIntegrationResponseInput{
		RestApiId:        aws.String(apiID),
		ResourceId:       aws.String(resourceID),
		HttpMethod:       aws.String(httpMethod),
		StatusCode:       aws.String("200"),
		SelectionPattern: aws.String(""),
	})
	if err != nil {
		return fmt.Errorf("PutIntegrationResponse failed: %w", err)
	}
	return nil
}

// PutMethodResponse registers the 200 method response with the empty JSON
// model.
func (r *APIGWRepository) PutMethodResponse(ctx context.Context, apiID, resourceID, httpMethod string) error {
	_, err := r.API.PutMethodResponse(ctx, &apigw.PutMethodResponseInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
		StatusCode: aws.String("200"),
		ResponseModels: map[string]string{
			"application/json": "Empty",
		},
	})
	if err != nil {
		return fmt.Errorf("PutMethodResponse failed: %w", err)
	}
	return nil
}

// CreateDeployment publishes the API to a stage and returns the deployment ID.
func (r *APIGWRepository) CreateDeployment(ctx context.Context, apiID, stageName, description string) (string, error) {
	input := &apigw.CreateDeploymentInput{
		RestApiId: aws.String(apiID),
		StageName: aws.String(stageName),
	}
	if description != "" {
		input.Description = aws.String(description)
	}

	out, err := r.API.CreateDeployment(ctx, input)
	if err != nil {
		return "", fmt.Errorf("CreateDeployment failed: %w", err)
	}

	deploymentID := aws.ToString(out.Id)
	r.Logger.Info("deployed API Gateway",
		zap.String("api_id", apiID),
		zap.String("stage", stageName),
		zap.String("deployment_id", deploymentID))
	return deploymentID, nil
}

// DeleteMethod removes a method. Tolerance for missing methods is decided by
// the caller.
func (r *APIGWRepository) DeleteMethod(ctx context.Context, apiID, resourceID, httpMethod string) error {
	_, err := r.API.DeleteMethod(ctx, &apigw.DeleteMethodInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
	})
	if err != nil {
		return fmt.Errorf("DeleteMethod failed: %w", err)
	}

	r.Logger.Info("deleted method",
		zap.String("resource_id", resourceID),
		zap.String("http_method", httpMethod))
	return nil
}

// DeleteResource removes a resource.
func (r *APIGWRepository) DeleteResource(ctx context.Context, apiID, resourceID string) error {
	_, err := r.API.DeleteResource(ctx, &apigw.DeleteResourceInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
	})
	if err != nil {
		return fmt.Errorf("DeleteResource failed: %w", err)
	}

	r.Logger.Info("deleted resource",
		zap.String("api_id", apiID),
		zap.String("resource_id", resourceID))
	return nil
}
