package database

import (
	"context"
	"log"

	"revolux/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client backing the order, history and
// upload tables. DYNAMODB_ENDPOINT points it at a local emulator.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	var opts []func(*dynamodb.Options)
	if cfg.DynamoDBEndpoint != "" {
		log.Printf("[database] using dynamodb endpoint=%s", cfg.DynamoDBEndpoint)
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, opts...)
}

func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}
