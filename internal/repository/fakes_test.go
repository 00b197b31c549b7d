package repository

import (
	"context"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// fakeAPIGW implements APIGatewayAPI with overridable behavior per call and a
// record of the operations invoked, in order.
type fakeAPIGW struct {
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
}

func (f *fakeAPIGW) GetRestApi(_ context.Context, params *apigw.GetRestApiInput, _ ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
	f.calls = append(f.calls, "GetRestApi")
	if f.getRestApiFn != nil {
		return f.getRestApiFn(params)
	}
	return &apigw.GetRestApiOutput{}, nil
}

func (f *fakeAPIGW) CreateRestApi(_ context.Context, params *apigw.CreateRestApiInput, _ ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error) {
	f.calls = append(f.calls, "CreateRestApi")
	if f.createRestApiFn != nil {
		return f.createRestApiFn(params)
	}
	return &apigw.CreateRestApiOutput{}, nil
}

func (f *fakeAPIGW) GetResources(_ context.Context, params *apigw.GetResourcesInput, _ ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
	f.calls = append(f.calls, "GetResources")
	if f.getResourcesFn != nil {
		return f.getResourcesFn(params)
	}
	return &apigw.GetResourcesOutput{}, nil
}

func (f *fakeAPIGW) CreateResource(_ context.Context, params *apigw.CreateResourceInput, _ ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
	f.calls = append(f.calls, "CreateResource")
	if f.createResourceFn != nil {
		return f.createResourceFn(params)
	}
	return &apigw.CreateResourceOutput{}, nil
}

func (f *fakeAPIGW) DeleteResource(_ context.Context, params *apigw.DeleteResourceInput, _ ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
	f.calls = append(f.calls, "DeleteResource")
	if f.deleteResourceFn != nil {
		return f.deleteResourceFn(params)
	}
	return &apigw.DeleteResourceOutput{}, nil
}

func (f *fakeAPIGW) PutMethod(_ context.Context, params *apigw.PutMethodInput, _ ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
	f.calls = append(f.calls, "PutMethod")
	if f.putMethodFn != nil {
		return f.putMethodFn(params)
	}
	return &apigw.PutMethodOutput{}, nil
}

func (f *fakeAPIGW) DeleteMethod(_ context.Context, params *apigw.DeleteMethodInput, _ ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
	f.calls = append(f.calls, "DeleteMethod")
	if f.deleteMethodFn != nil {
		return f.deleteMethodFn(params)
	}
	return &apigw.DeleteMethodOutput{}, nil
}

func (f *fakeAPIGW) PutIntegration(_ context.Context, params *apigw.PutIntegrationInput, _ ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
	f.calls = append(f.calls, "PutIntegration")
	if f.putIntegrationFn != nil {
		return f.putIntegrationFn(params)
	}
	return &apigw.PutIntegrationOutput{}, nil
}

func (f *fakeAPIGW) PutIntegrationResponse(_ context.Context, params *apigw.PutIntegrationResponseInput, _ ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error) {
	f.calls = append(f.calls, "PutIntegrationResponse")
	if f.putIntegrationResponseFn != nil {
		return f.putIntegrationResponseFn(params)
	}
	return &apigw.PutIntegrationResponseOutput{}, nil
}

func (f *fakeAPIGW) PutMethodResponse(_ context.Context, params *apigw.PutMethodResponseInput, _ ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
	f.calls = append(f.calls, "PutMethodResponse")
	if f.putMethodResponseFn != nil {
		return f.putMethodResponseFn(params)
	}
	return &apigw.PutMethodResponseOutput{}, nil
}

func (f *fakeAPIGW) CreateDeployment(_ context.Context, params *apigw.CreateDeploymentInput, _ ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
	f.calls = append(f.calls, "CreateDeployment")
	if f.createDeploymentFn != nil {
		return f.createDeploymentFn(params)
	}
	return &apigw.CreateDeploymentOutput{}, nil
}

// fakeLambda implements LambdaAPI.
type fakeLambda struct {
	calls []string

	getFunctionFn   func(*lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error)
	invokeFn        func(*lambda.InvokeInput) (*lambda.InvokeOutput, error)
	addPermissionFn func(*lambda.AddPermissionInput) (*lambda.AddPermissionOutput, error)
}

func (f *fakeLambda) GetFunction(_ context.Context, params *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	f.calls = append(f.calls, "GetFunction")
	if f.getFunctionFn != nil {
		return f.getFunctionFn(params)
	}
	return &lambda.GetFunctionOutput{}, nil
}

func (f *fakeLambda) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.calls = append(f.calls, "Invoke")
	if f.invokeFn != nil {
		return f.invokeFn(params)
	}
	return &lambda.InvokeOutput{}, nil
}

func (f *fakeLambda) AddPermission(_ context.Context, params *lambda.AddPermissionInput, _ ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	f.calls = append(f.calls, "AddPermission")
	if f.addPermissionFn != nil {
		return f.addPermissionFn(params)
	}
	return &lambda.AddPermissionOutput{}, nil
}

// fakeSTS implements STSAPI.
type fakeSTS struct {
	getCallerIdentityFn func(*sts.GetCallerIdentityInput) (*sts.GetCallerIdentityOutput, error)
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, params *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.getCallerIdentityFn != nil {
		return f.getCallerIdentityFn(params)
	}
	return &sts.GetCallerIdentityOutput{}, nil
}

// fakeCWLogs implements CloudWatchLogsAPI.
type fakeCWLogs struct {
	describeLogStreamsFn func(*cw.DescribeLogStreamsInput) (*cw.DescribeLogStreamsOutput, error)
	getLogEventsFn       func(*cw.GetLogEventsInput) (*cw.GetLogEventsOutput, error)
}

func (f *fakeCWLogs) DescribeLogStreams(_ context.Context, params *cw.DescribeLogStreamsInput, _ ...func(*cw.Options)) (*cw.DescribeLogStreamsOutput, error) {
	if f.describeLogStreamsFn != nil {
		return f.describeLogStreamsFn(params)
	}
	return &cw.DescribeLogStreamsOutput{}, nil
}

func (f *fakeCWLogs) GetLogEvents(_ context.Context, params *cw.GetLogEventsInput, _ ...func(*cw.Options)) (*cw.GetLogEventsOutput, error) {
	if f.getLogEventsFn != nil {
		return f.getLogEventsFn(params)
	}
	return &cw.GetLogEventsOutput{}, nil
}

var (
	_ APIGatewayAPI     = (*fakeAPIGW)(nil)
	_ LambdaAPI         = (*fakeLambda)(nil)
	_ STSAPI            = (*fakeSTS)(nil)
	_ CloudWatchLogsAPI = (*fakeCWLogs)(nil)
)
