// Package repository wraps the AWS SDK calls used by the services behind thin
// per-service types. Each repository holds the narrow client interface it
// needs so tests can substitute fakes.
package repository

import (
	"context"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	sts "github.com/aws/aws-sdk-go-v2/service/sts"
)

// APIGatewayAPI is the subset of the API Gateway (REST v1) client used by
// APIGWRepository.
type APIGatewayAPI interface {
	GetRestApi(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error)
	CreateRestApi(ctx context.Context, params *apigw.CreateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error)
	GetResources(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error)
	CreateResource(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error)
	DeleteResource(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error)
	PutMethod(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error)
	DeleteMethod(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error)
	PutIntegration(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error)
	PutIntegrationResponse(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error)
	PutMethodResponse(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error)
	CreateDeployment(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error)
}

// LambdaAPI is the subset of the Lambda client used by LambdaRepository.
type LambdaAPI interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
}

// STSAPI is the subset of the STS client used by STSRepository.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CloudWatchLogsAPI is the subset of the CloudWatch Logs client used by
// CWLogsRepository.
type CloudWatchLogsAPI interface {
	DescribeLogStreams(ctx context.Context, params *cw.DescribeLogStreamsInput, optFns ...func(*cw.Options)) (*cw.DescribeLogStreamsOutput, error)
	GetLogEvents(ctx context.Context, params *cw.GetLogEventsInput, optFns ...func(*cw.Options)) (*cw.GetLogEventsOutput, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces.
var (
	_ APIGatewayAPI     = (*apigw.Client)(nil)
	_ LambdaAPI         = (*lambda.Client)(nil)
	_ STSAPI            = (*sts.Client)(nil)
	_ CloudWatchLogsAPI = (*cw.Client)(nil)
)
