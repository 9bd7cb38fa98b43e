package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"todo-api/internal/repositories"
	"todo-api/internal/services"
	"todo-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.Bootstrap(ctx)
	if err != nil {
		return lambda.Error(500, "Initialization failed", err.Error()).ToAPIGateway(), nil
	}

	req := lambda.FromAPIGateway(event)

	var body services.UpdateTodoRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.Error(400, "Invalid request body", err.Error()).ToAPIGateway(), nil
	}

	todo, err := container.TodoService.UpdateTodo(ctx, req.PathParams["id"], &body)
	if err != nil {
		switch {
		case repositories.IsNotFound(err):
			return lambda.Error(404, "Todo not found", err.Error()).ToAPIGateway(), nil
		case errors.Is(err, repositories.ErrInvalidID), strings.Contains(err.Error(), "validation"):
			return lambda.Error(400, "Validation failed", err.Error()).ToAPIGateway(), nil
		}
		return lambda.Error(500, "Failed to update todo", err.Error()).ToAPIGateway(), nil
	}

	return lambda.JSON(200, todo).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
