package main

import (
	"context"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"todo-api/internal/repositories"
	"todo-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.Bootstrap(ctx)
	if err != nil {
		return lambda.Error(500, "Initialization failed", err.Error()).ToAPIGateway(), nil
	}

	req := lambda.FromAPIGateway(event)

	if err := container.TodoService.DeleteTodo(ctx, req.PathParams["id"]); err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			return lambda.Error(400, "Invalid todo ID", err.Error()).ToAPIGateway(), nil
		}
		return lambda.Error(500, "Failed to delete todo", err.Error()).ToAPIGateway(), nil
	}

	return lambda.Empty(200).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
