package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"todo-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.Bootstrap(ctx)
	if err != nil {
		return lambda.Error(500, "Initialization failed", err.Error()).ToAPIGateway(), nil
	}

	todos, err := container.TodoService.ListTodos(ctx)
	if err != nil {
		return lambda.Error(500, "Failed to list todos", err.Error()).ToAPIGateway(), nil
	}

	return lambda.JSON(200, todos).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
