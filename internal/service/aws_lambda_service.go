package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/repository"
	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

// LambdaService invokes and inspects Lambda functions directly, bypassing the
// API Gateway.
type LambdaService struct {
	Lambda *repository.LambdaRepository

	DefaultFunction string

	Logger *zap.Logger
}

// Invoke calls the function synchronously with a JSON payload and decodes the
// JSON response. A nil payload is sent as an empty object. When the function
// itself failed, the marker is logged and the decoded error payload is
// returned to the caller.
func (s *LambdaService) Invoke(ctx context.Context, functionName string, payload map[string]any) (map[string]any, error) {
	functionName, err := s.resolve(functionName)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		payload = map[string]any{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	raw, functionError, err := s.Lambda.Invoke(ctx, functionName, body)
	if err != nil {
		return nil, err
	}
	if functionError != "" {
		s.Logger.Warn("Lambda reported a function error",
			zap.String("function_name", functionName),
			zap.String("function_error", functionError))
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response payload failed: %w", err)
	}
	return decoded, nil
}

// FunctionInfo fetches the configuration of the function.
func (s *LambdaService) FunctionInfo(ctx context.Context, functionName string) (*dto.FunctionInfo, error) {
	functionName, err := s.resolve(functionName)
	if err != nil {
		return nil, err
	}
	return s.Lambda.GetFunction(ctx, functionName)
}

func (s *LambdaService) resolve(functionName string) (string, error) {
	if functionName != "" {
		return functionName, nil
	}
	if s.DefaultFunction != "" {
		return s.DefaultFunction, nil
	}
	return "", errors.New("function name must be provided or set via LAMBDA_FUNCTION_NAME")
}
