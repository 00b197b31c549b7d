package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	sts "github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/jianhuanggo/aws-lambda-apigateway3/internal/config"
)

// AWSClient holds the AWS service clients shared by the repositories.
type AWSClient struct {
	Config aws.Config
	APIGW  *apigw.Client
	Lambda *lambda.Client
	CWLogs *cw.Client
	STS    *sts.Client
	Region string
}

// New creates an AWSClient from the resolved configuration. A named profile
// takes precedence over static credentials; with neither set the default
// provider chain applies.
func New(ctx context.Context, cfg config.Config) (*AWSClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if strings.TrimSpace(cfg.Region) != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	switch {
	case cfg.Profile != "":
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &AWSClient{
		Config: awsCfg,
		APIGW:  apigw.NewFromConfig(awsCfg),
		Lambda: lambda.NewFromConfig(awsCfg),
		CWLogs: cw.NewFromConfig(awsCfg),
		STS:    sts.NewFromConfig(awsCfg),
		Region: awsCfg.Region,
	}, nil
}
