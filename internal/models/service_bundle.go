// Package models carries the bundle of configured services injected into the
// CLI commands.
package models

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/client"
	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/config"
	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/repository"
	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/service"
)

// ServiceBundle holds the services and clients shared by the commands.
type ServiceBundle struct {
	Gateway *service.APIGatewayService
	Lambda  *service.LambdaService
	Logs    *service.LogsService
	API     *client.APIClient
	Client  *client.AWSClient
	Config  config.Config
}

// NewServiceBundle builds the AWS client, the repositories and the services
// on top of it.
func NewServiceBundle(ctx context.Context, cfg config.Config, logger *zap.Logger) (*ServiceBundle, error) {
	awsClient, err := client.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws client: %w", err)
	}

	apigwRepo := &repository.APIGWRepository{API: awsClient.APIGW, Logger: logger}
	lambdaRepo := &repository.LambdaRepository{API: awsClient.Lambda, Logger: logger}
	stsRepo := &repository.STSRepository{API: awsClient.STS}
	cwLogsRepo := &repository.CWLogsRepository{API: awsClient.CWLogs}

	gatewayService := &service.APIGatewayService{
		APIGW:           apigwRepo,
		Lambda:          lambdaRepo,
		STS:             stsRepo,
		Region:          awsClient.Region,
		APIGatewayID:    cfg.APIGatewayID,
		DefaultFunction: cfg.FunctionName,
		Logger:          logger,
	}
	lambdaService := &service.LambdaService{
		Lambda:          lambdaRepo,
		DefaultFunction: cfg.FunctionName,
		Logger:          logger,
	}
	logsService := &service.LogsService{
		Logs:            cwLogsRepo,
		DefaultFunction: cfg.FunctionName,
	}

	return &ServiceBundle{
		Gateway: gatewayService,
		Lambda:  lambdaService,
		Logs:    logsService,
		API:     client.NewAPIClient(logger),
		Client:  awsClient,
		Config:  cfg,
	}, nil
}
