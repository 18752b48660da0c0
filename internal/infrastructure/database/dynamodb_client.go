package database

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the configuration store client from the environment.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional, e.g. http://dynamodb:8000 for DynamoDB Local)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// DynamoDB Local ignores credentials but the SDK refuses to sign without them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}
