package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/repository"
	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

const defaultLogLimit = 50

// LogsService reads the CloudWatch logs written by a Lambda function.
type LogsService struct {
	Logs *repository.CWLogsRepository

	DefaultFunction string
}

// Recent returns up to limit events from the function's newest log stream. A
// non-positive limit falls back to 50.
func (s *LogsService) Recent(ctx context.Context, functionName string, limit int32) ([]dto.LogEvent, error) {
	if functionName == "" {
		functionName = s.DefaultFunction
	}
	if functionName == "" {
		return nil, errors.New("function name must be provided or set via LAMBDA_FUNCTION_NAME")
	}
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logGroup := fmt.Sprintf("/aws/lambda/%s", functionName)
	return s.Logs.RecentEvents(ctx, logGroup, limit)
}
