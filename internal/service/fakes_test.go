package service

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/repository"
)

// fakeAWS implements every SDK interface the repositories consume and records
// the operations invoked, in order, across services. Unset hooks answer with
// workable defaults: the configured gateway exists, the root resource is the
// only resource, and functions resolve to a deterministic ARN.
type fakeAWS struct {
	calls []string

	getRestApiFn             func(*apigw.GetRestApiInput) (*apigw.GetRestApiOutput, error)
	createRestApiFn          func(*apigw.CreateRestApiInput) (*apigw.CreateRestApiOutput, error)
	getResourcesFn           func(*apigw.GetResourcesInput) (*apigw.GetResourcesOutput, error)
	createResourceFn         func(*apigw.CreateResourceInput) (*apigw.CreateResourceOutput, error)
	deleteResourceFn         func(*apigw.DeleteResourceInput) (*apigw.DeleteResourceOutput, error)
	putMethodFn              func(*apigw.PutMethodInput) (*apigw.PutMethodOutput, error)
	deleteMethodFn           func(*apigw.DeleteMethodInput) (*apigw.DeleteMethodOutput, error)
	putIntegrationFn         func(*apigw.PutIntegrationInput) (*apigw.PutIntegrationOutput, error)
	putIntegrationResponseFn func(*apigw.PutIntegrationResponseInput) (*apigw.PutIntegrationResponseOutput, error)
	putMethodResponseFn      func(*apigw.PutMethodResponseInput) (*apigw.PutMethodResponseOutput, error)
	createDeploymentFn       func(*apigw.CreateDeploymentInput) (*apigw.CreateDeploymentOutput, error)
	getFunctionFn            func(*lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error)
	invokeFn                 func(*lambda.InvokeInput) (*lambda.InvokeOutput, error)
	addPermissionFn          func(*lambda.AddPermissionInput) (*lambda.AddPermissionOutput, error)
	getCallerIdentityFn      func(*sts.GetCallerIdentityInput) (*sts.GetCallerIdentityOutput, error)
	describeLogStreamsFn     func(*cw.DescribeLogStreamsInput) (*cw.DescribeLogStreamsOutput, error)
	getLogEventsFn           func(*cw.GetLogEventsInput) (*cw.GetLogEventsOutput, error)
}

func (f *fakeAWS) GetRestApi(_ context.Context, params *apigw.GetRestApiInput, _ ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
	f.calls = append(f.calls, "GetRestApi")
	if f.getRestApiFn != nil {
		return f.getRestApiFn(params)
	}
	return &apigw.GetRestApiOutput{Id: params.RestApiId, Name: aws.String("existing-api")}, nil
}

func (f *fakeAWS) CreateRestApi(_ context.Context, params *apigw.CreateRestApiInput, _ ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error) {
	f.calls = append(f.calls, "CreateRestApi")
	if f.createRestApiFn != nil {
		return f.createRestApiFn(params)
	}
	return &apigw.CreateRestApiOutput{Id: aws.String("api-new")}, nil
}

func (f *fakeAWS) GetResources(_ context.Context, params *apigw.GetResourcesInput, _ ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
	f.calls = append(f.calls, "GetResources")
	if f.getResourcesFn != nil {
		return f.getResourcesFn(params)
	}
	return &apigw.GetResourcesOutput{
		Items: []apigwtypes.Resource{
			{Id: aws.String("root123"), Path: aws.String("/")},
		},
	}, nil
}

func (f *fakeAWS) CreateResource(_ context.Context, params *apigw.CreateResourceInput, _ ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
	f.calls = append(f.calls, "CreateResource")
	if f.createResourceFn != nil {
		return f.createResourceFn(params)
	}
	return &apigw.CreateResourceOutput{
		Id:       aws.String("res-" + aws.ToString(params.PathPart)),
		PathPart: params.PathPart,
	}, nil
}

func (f *fakeAWS) DeleteResource(_ context.Context, params *apigw.DeleteResourceInput, _ ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
	f.calls = append(f.calls, "DeleteResource")
	if f.deleteResourceFn != nil {
		return f.deleteResourceFn(params)
	}
	return &apigw.DeleteResourceOutput{}, nil
}

func (f *fakeAWS) PutMethod(_ context.Context, params *apigw.PutMethodInput, _ ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
	f.calls = append(f.calls, "PutMethod")
	if f.putMethodFn != nil {
		return f.putMethodFn(params)
	}
	return &apigw.PutMethodOutput{}, nil
}

func (f *fakeAWS) DeleteMethod(_ context.Context, params *apigw.DeleteMethodInput, _ ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
	f.calls = append(f.calls, "DeleteMethod")
	if f.deleteMethodFn != nil {
		return f.deleteMethodFn(params)
	}
	return &apigw.DeleteMethodOutput{}, nil
}

func (f *fakeAWS) PutIntegration(_ context.Context, params *apigw.PutIntegrationInput, _ ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
	f.calls = append(f.calls, "PutIntegration")
	if f.putIntegrationFn != nil {
		return f.putIntegrationFn(params)
	}
	return &apigw.PutIntegrationOutput{}, nil
}

func (f *fakeAWS) PutIntegrationResponse(_ context.Context, params *apigw.PutIntegrationResponseInput, _ ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error) {
	f.calls = append(f.calls, "PutIntegrationResponse")
	if f.putIntegrationResponseFn != nil {
		return f.putIntegrationResponseFn(params)
	}
	return &apigw.PutIntegrationResponseOutput{}, nil
}

func (f *fakeAWS) PutMethodResponse(_ context.Context, params *apigw.PutMethodResponseInput, _ ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
	f.calls = append(f.calls, "PutMethodResponse")
	if f.putMethodResponseFn != nil {
		return f.putMethodResponseFn(params)
	}
	return &apigw.PutMethodResponseOutput{}, nil
}

func (f *fakeAWS) CreateDeployment(_ context.Context, params *apigw.CreateDeploymentInput, _ ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
	f.calls = append(f.calls, "CreateDeployment")
	if f.createDeploymentFn != nil {
		return f.createDeploymentFn(params)
	}
	return &apigw.CreateDeploymentOutput{Id: aws.String("dep-1")}, nil
}

func (f *fakeAWS) GetFunction(_ context.Context, params *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	f.calls = append(f.calls, "GetFunction")
	if f.getFunctionFn != nil {
		return f.getFunctionFn(params)
	}
	name := aws.ToString(params.FunctionName)
	return &lambda.GetFunctionOutput{
		Configuration: &lambdatypes.FunctionConfiguration{
			FunctionName: params.FunctionName,
			FunctionArn:  aws.String("arn:aws:lambda:us-east-1:123456789012:function:" + name),
		},
	}, nil
}

func (f *fakeAWS) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.calls = append(f.calls, "Invoke")
	if f.invokeFn != nil {
		return f.invokeFn(params)
	}
	return &lambda.InvokeOutput{StatusCode: 200, Payload: []byte(`{}`)}, nil
}

func (f *fakeAWS) AddPermission(_ context.Context, params *lambda.AddPermissionInput, _ ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	f.calls = append(f.calls, "AddPermission")
	if f.addPermissionFn != nil {
		return f.addPermissionFn(params)
	}
	return &lambda.AddPermissionOutput{}, nil
}

func (f *fakeAWS) GetCallerIdentity(_ context.Context, params *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls = append(f.calls, "GetCallerIdentity")
	if f.getCallerIdentityFn != nil {
		return f.getCallerIdentityFn(params)
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

func (f *fakeAWS) DescribeLogStreams(_ context.Context, params *cw.DescribeLogStreamsInput, _ ...func(*cw.Options)) (*cw.DescribeLogStreamsOutput, error) {
	f.calls = append(f.calls, "DescribeLogStreams")
	if f.describeLogStreamsFn != nil {
		return f.describeLogStreamsFn(params)
	}
	return &cw.DescribeLogStreamsOutput{}, nil
}

func (f *fakeAWS) GetLogEvents(_ context.Context, params *cw.GetLogEventsInput, _ ...func(*cw.Options)) (*cw.GetLogEventsOutput, error) {
	f.calls = append(f.calls, "GetLogEvents")
	if f.getLogEventsFn != nil {
		return f.getLogEventsFn(params)
	}
	return &cw.GetLogEventsOutput{}, nil
}

var (
	_ repository.APIGatewayAPI     = (*fakeAWS)(nil)
	_ repository.LambdaAPI         = (*fakeAWS)(nil)
	_ repository.STSAPI            = (*fakeAWS)(nil)
	_ repository.CloudWatchLogsAPI = (*fakeAWS)(nil)
)
