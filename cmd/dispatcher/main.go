// Package main is the entry point for the dispatcher Lambda function.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/ragerumal/serverless-microservice/dispatch"
	"github.com/ragerumal/serverless-microservice/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var opts []func(*config.LoadOptions) error
	if region := os.Getenv("TABLE_REGION"); region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		// DYNAMODB_ENDPOINT points at a local emulator in development.
		if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	d := dispatch.New(store.New(client, store.DefaultConfig()), logger)
	logger.Info("dispatcher ready", "operations", d.Operations())

	lambda.Start(func(ctx context.Context, req dispatch.Request) (any, error) {
		log := logger.With(
			"requestID", uuid.New().String(),
			"operation", req.Operation,
		)

		result, err := d.Handle(ctx, req)
		if err != nil {
			log.Error("request failed",
				"kind", dispatch.KindOf(err),
				"error", err,
			)
			return nil, err
		}

		log.Info("request completed", "table", req.TableName)
		return result, nil
	})
}
