package main

import (
	"context"
	"log"

	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/di"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// handler consumes one queue batch and reports per-item failures so only
// failed messages are redelivered
func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	return container.BatchWriter.HandleBatch(ctx, event)
}

func main() {
	lambda.Start(handler)
}
