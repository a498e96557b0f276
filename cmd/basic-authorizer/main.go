package main

import (
	"context"
	"log"
	"strconv"

	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/di"
	"catalog-backend/pkg/auth"

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

// handler turns an authorization decision into an IAM policy scoped to the
// requested method ARN
func handler(ctx context.Context, event events.APIGatewayCustomAuthorizerRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	decision := container.Authorizer.Authorize(event.AuthorizationToken)
	return buildPolicy(decision, event.MethodArn), nil
}

// buildPolicy generates the authorizer response. Denials carry the status
// code in the context so the gateway can distinguish "no credential" from
// "bad credential".
func buildPolicy(decision auth.Decision, methodArn string) events.APIGatewayCustomAuthorizerResponse {
	effect := "Deny"
	if decision.Allowed {
		effect = "Allow"
	}

	response := events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: decision.Principal,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{methodArn},
				},
			},
		},
	}

	if !decision.Allowed {
		response.Context = map[string]interface{}{
			"statusCode": strconv.Itoa(decision.StatusCode),
		}
	}

	return response
}

func main() {
	lambda.Start(handler)
}
