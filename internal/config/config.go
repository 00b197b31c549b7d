// Package config resolves connection parameters and default resource
// identifiers from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment-derived settings shared by the AWS clients
// and the CLI. It is constructed once and passed explicitly; there is no
// package-level state.
type Config struct {
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	APIGatewayID    string `envconfig:"API_GATEWAY_ID"`
	FunctionName    string `envconfig:"LAMBDA_FUNCTION_NAME"`
	Profile         string `envconfig:"AWS_PROFILE"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("processing environment config: %w", err)
	}
	return c, nil
}
