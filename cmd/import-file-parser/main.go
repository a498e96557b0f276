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

// handler parses newly staged objects and dispatches their rows. Errors
// propagate so the runtime redelivers the event and the object stays
// staged.
func handler(ctx context.Context, event events.S3Event) error {
	return container.ImportService.HandleObjectCreated(ctx, event)
}

func main() {
	lambda.Start(handler)
}
