package main

import (
	"context"
	"log"
	"net/http"

	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/di"
	"catalog-backend/pkg/common"
	"catalog-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
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

// handler issues a presigned upload URL for the requested file name
func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	signedURL, err := container.ImportService.PresignUpload(ctx, req.QueryStringParameters["name"])
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeValidation {
			return common.ProxyError(http.StatusBadRequest, appErr.Message), nil
		}
		container.Logger.Error("Failed to issue presigned URL", zap.Error(err))
		return common.ProxyError(http.StatusInternalServerError, "Internal Server Error"), nil
	}

	return common.ProxyJSON(http.StatusOK, map[string]string{"url": signedURL}), nil
}

func main() {
	lambda.Start(handler)
}
