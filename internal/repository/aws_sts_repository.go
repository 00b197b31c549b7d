package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSRepository wraps the AWS STS operations.
type STSRepository struct {
	API STSAPI
}

// AccountID returns the account ID of the calling identity.
func (r *STSRepository) AccountID(ctx context.Context) (string, error) {
	out, err := r.API.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("GetCallerIdentity failed: %w", err)
	}
	return aws.ToString(out.Account), nil
}
