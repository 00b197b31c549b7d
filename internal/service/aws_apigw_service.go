// Package service orchestrates the API Gateway and Lambda repositories into
// the endpoint provisioning, invocation and log retrieval flows exposed by
// the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/repository"
	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

// APIGatewayService provisions REST endpoints backed by Lambda functions.
type APIGatewayService struct {
	APIGW  *repository.APIGWRepository
	Lambda *repository.LambdaRepository
	STS    *repository.STSRepository

	Region          string
	APIGatewayID    string
	DefaultFunction string

	Logger *zap.Logger
}

// EnsureEndpoint creates or replaces a single REST endpoint wired to a Lambda
// function and deploys it to the requested stage.
//
// The configured gateway ID is looked up first; when the lookup fails a new
// regional REST API is created under cfg.APIName. An existing resource at the
// requested path is torn down best-effort (a missing method or a failing
// delete is logged and skipped) before the resource is recreated under the
// root, so the sequence is not transactional: a failure partway leaves the
// earlier steps applied.
func (s *APIGatewayService) EnsureEndpoint(ctx context.Context, cfg dto.EndpointConfig) (*dto.EndpointState, error) {
	pathPart := strings.Trim(cfg.ResourcePath, "/")
	if pathPart == "" {
		return nil, errors.New("resource path must not be empty")
	}

	httpMethod := cfg.HTTPMethod
	if httpMethod == "" {
		httpMethod = "GET"
	}
	stageName := cfg.StageName
	if stageName == "" {
		stageName = "prod"
	}
	functionName := cfg.FunctionName
	if functionName == "" {
		functionName = s.DefaultFunction
	}
	if functionName == "" {
		return nil, errors.New("function name must be provided or set via LAMBDA_FUNCTION_NAME")
	}

	apiID := s.APIGatewayID
	if _, err := s.APIGW.GetRestAPI(ctx, apiID); err != nil {
		s.Logger.Info("API Gateway not found, creating a new one",
			zap.String("api_id", apiID),
			zap.String("api_name", cfg.APIName),
			zap.Error(err))
		created, cerr := s.APIGW.CreateRestAPI(ctx, cfg.APIName, "")
		if cerr != nil {
			return nil, cerr
		}
		apiID = created
	}

	resourcePath := "/" + pathPart
	existing, err := s.APIGW.FindResourceByPath(ctx, apiID, resourcePath)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.Logger.Info("resource already exists, replacing it",
			zap.String("resource_id", existing.ID),
			zap.String("path", resourcePath))

		if derr := s.APIGW.DeleteMethod(ctx, apiID, existing.ID, httpMethod); derr != nil {
			if repository.IsNotFound(derr) {
				s.Logger.Info("method not present on existing resource",
					zap.String("http_method", httpMethod))
			} else {
				s.Logger.Warn("could not delete method", zap.Error(derr))
			}
		}
		if derr := s.APIGW.DeleteResource(ctx, apiID, existing.ID); derr != nil {
			s.Logger.Warn("could not delete resource", zap.Error(derr))
		}
	}

	rootID, err := s.APIGW.GetRootResourceID(ctx, apiID)
	if err != nil {
		return nil, err
	}

	resourceID, err := s.APIGW.CreateResource(ctx, apiID, rootID, pathPart)
	if err != nil {
		return nil, err
	}

	if err := s.APIGW.PutMethod(ctx, apiID, resourceID, httpMethod); err != nil {
		return nil, err
	}

	fn, err := s.Lambda.GetFunction(ctx, functionName)
	if err != nil {
		return nil, err
	}

	if err := s.APIGW.PutIntegration(ctx, apiID, resourceID, httpMethod, fn.FunctionArn, s.Region); err != nil {
		return nil, err
	}
	if err := s.APIGW.PutIntegrationResponse(ctx, apiID, resourceID, httpMethod); err != nil {
		return nil, err
	}
	if err := s.APIGW.PutMethodResponse(ctx, apiID, resourceID, httpMethod); err != nil {
		return nil, err
	}

	accountID, err := s.STS.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Lambda.AddPermission(ctx, apiID, s.Region, accountID, functionName); err != nil {
		return nil, err
	}

	deploymentID, err := s.APIGW.CreateDeployment(ctx, apiID, stageName, "")
	if err != nil {
		return nil, err
	}

	state := &dto.EndpointState{
		APIID:        apiID,
		ResourceID:   resourceID,
		DeploymentID: deploymentID,
		StageName:    stageName,
		FunctionArn:  fn.FunctionArn,
		InvokeURL:    s.InvokeURL(apiID, stageName, resourcePath),
	}

	s.Logger.Info("endpoint ready",
		zap.String("api_id", state.APIID),
		zap.String("invoke_url", state.InvokeURL))
	return state, nil
}

// EnsureRoutes creates the given routes under a parent resource and wires
// every method to the function. Resources already present at their path are
// reused. The API is not deployed; call Deploy once all routes are in place.
func (s *APIGatewayService) EnsureRoutes(ctx context.Context, apiID, parentID, parentPath, functionName string, routes []dto.RouteConfig) (map[string]string, error) {
	fn, err := s.Lambda.GetFunction(ctx, functionName)
	if err != nil {
		return nil, err
	}

	resourceIDs := make(map[string]string)
	for _, route := range routes {
		pathPart := strings.Trim(route.Path, "/")
		if pathPart == "" {
			return nil, fmt.Errorf("route %q has an empty path", route.Path)
		}

		resourceID, ok := resourceIDs[pathPart]
		if !ok {
			fullPath := strings.TrimRight(parentPath, "/") + "/" + pathPart
			existing, ferr := s.APIGW.FindResourceByPath(ctx, apiID, fullPath)
			if ferr != nil {
				return nil, ferr
			}
			if existing != nil {
				resourceID = existing.ID
			} else {
				resourceID, err = s.APIGW.CreateResource(ctx, apiID, parentID, pathPart)
				if err != nil {
					return nil, err
				}
			}
			resourceIDs[pathPart] = resourceID
		}

		if err := s.APIGW.PutMethod(ctx, apiID, resourceID, route.Method); err != nil {
			return nil, err
		}
		if err := s.APIGW.PutIntegration(ctx, apiID, resourceID, route.Method, fn.FunctionArn, s.Region); err != nil {
			return nil, err
		}
		if err := s.APIGW.PutIntegrationResponse(ctx, apiID, resourceID, route.Method); err != nil {
			return nil, err
		}
		if err := s.APIGW.PutMethodResponse(ctx, apiID, resourceID, route.Method); err != nil {
			return nil, err
		}
	}
	return resourceIDs, nil
}

// Deploy publishes the API to a stage and returns the deployment ID.
func (s *APIGatewayService) Deploy(ctx context.Context, apiID, stageName, description string) (string, error) {
	return s.APIGW.CreateDeployment(ctx, apiID, stageName, description)
}

// InvokeURL builds the public URL of a deployed resource. An empty resource
// path yields the stage URL without a trailing segment.
func (s *APIGatewayService) InvokeURL(apiID, stageName, resourcePath string) string {
	base := fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s", apiID, s.Region, stageName)
	trimmed := strings.TrimLeft(resourcePath, "/")
	if trimmed == "" {
		return base
	}
	return base + "/" + trimmed
}

// ListResources returns the resources of an API.
func (s *APIGatewayService) ListResources(ctx context.Context, apiID string) ([]dto.ResourceInfo, error) {
	return s.APIGW.GetResources(ctx, apiID)
}

// FindResourceByPath returns the resource at the given path, or nil when it
// does not exist.
func (s *APIGatewayService) FindResourceByPath(ctx context.Context, apiID, path string) (*dto.ResourceInfo, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.APIGW.FindResourceByPath(ctx, apiID, path)
}

// DeleteResource removes a resource and everything beneath it.
func (s *APIGatewayService) DeleteResource(ctx context.Context, apiID, resourceID string) error {
	return s.APIGW.DeleteResource(ctx, apiID, resourceID)
}

// AccountID returns the AWS account of the configured credentials.
func (s *APIGatewayService) AccountID(ctx context.Context) (string, error) {
	return s.STS.AccountID(ctx)
}
