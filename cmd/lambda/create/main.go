package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"todo-api/internal/services"
	"todo-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.Bootstrap(ctx)
	if err != nil {
		return lambda.Error(500, "Initialization failed", err.Error()).ToAPIGateway(), nil
	}

	req := lambda.FromAPIGateway(event)

	var body services.CreateTodoRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.Error(400, "Invalid request body", err.Error()).ToAPIGateway(), nil
	}

	todo, err := container.TodoService.CreateTodo(ctx, &body)
	if err != nil {
		if strings.Contains(err.Error(), "validation") {
			return lambda.Error(400, "Validation failed", err.Error()).ToAPIGateway(), nil
		}
		return lambda.Error(500, "Failed to create todo", err.Error()).ToAPIGateway(), nil
	}

	return lambda.JSON(201, todo).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
