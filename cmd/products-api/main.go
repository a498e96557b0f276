package main

import (
	"context"
	"log"
	"time"

	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/di"
	"catalog-backend/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
)

var (
	// chiLambda wraps the chi router for AWS Lambda integration
	chiLambda *chiadapter.ChiLambda

	// container holds the dependency injection container
	container *di.Container
)

// init runs during cold start
func init() {
	start := time.Now()
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	router := rest.NewRouter(container.ProductService, container.Logger)
	chiLambda = chiadapter.New(router.Setup())

	log.Printf("Cold start completed in %v", time.Since(start))
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
