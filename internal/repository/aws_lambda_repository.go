package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"

	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

// LambdaRepository wraps the AWS Lambda operations.
type LambdaRepository struct {
	API    LambdaAPI
	Logger *zap.Logger
}

// GetFunction fetches the configuration of a Lambda function.
func (r *LambdaRepository) GetFunction(ctx context.Context, functionName string) (*dto.FunctionInfo, error) {
	out, err := r.API.GetFunction(ctx, &lambda.GetFunctionInput{
		FunctionName: aws.String(functionName),
	})
	if err != nil {
		return nil, fmt.Errorf("GetFunction failed: %w", err)
	}

	cfg := out.Configuration
	return &dto.FunctionInfo{
		FunctionName: aws.ToString(cfg.FunctionName),
		FunctionArn:  aws.ToString(cfg.FunctionArn),
		Runtime:      string(cfg.Runtime),
		Handler:      aws.ToString(cfg.Handler),
		Description:  aws.ToString(cfg.Description),
		MemorySize:   aws.ToInt32(cfg.MemorySize),
		Timeout:      aws.ToInt32(cfg.Timeout),
		State:        string(cfg.State),
		LastModified: aws.ToString(cfg.LastModified),
	}, nil
}

// Invoke calls a Lambda function synchronously and returns the raw response
// payload together with the function error marker, if any.
func (r *LambdaRepository) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, string, error) {
	out, err := r.API.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, "", fmt.Errorf("Invoke failed: %w", err)
	}

	r.Logger.Info("invoked Lambda function",
		zap.String("function_name", functionName),
		zap.Int32("status_code", out.StatusCode))
	return out.Payload, aws.ToString(out.FunctionError), nil
}

// AddPermission grants the given API Gateway permission to invoke the
// function. A conflict reporting the statement already exists is logged and
// ignored; any other error is returned.
func (r *LambdaRepository) AddPermission(ctx context.Context, apiID, region, accountID, functionName string) error {
	statementID := fmt.Sprintf("apigateway-%s-%s", apiID, functionName)
	sourceArn := fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*", region, accountID, apiID)

	_, err := r.API.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(statementID),
		Action:       aws.String("lambda:InvokeFunction"),
		Principal:    aws.String("apigateway.amazonaws.com"),
		SourceArn:    aws.String(sourceArn),
	})
	if err != nil {
		if IsConflict(err) && strings.Contains(apiErrorMessage(err), "already exists") {
			r.Logger.Warn("permission already exists",
				zap.String("statement_id", statementID),
				zap.String("function_name", functionName))
			return nil
		}
		r.Logger.Error("could not add invoke permission",
			zap.String("statement_id", statementID),
			zap.Error(err))
		return fmt.Errorf("AddPermission failed: %w", err)
	}

	r.Logger.Info("added invoke permission",
		zap.String("statement_id", statementID),
		zap.String("source_arn", sourceArn))
	return nil
}
