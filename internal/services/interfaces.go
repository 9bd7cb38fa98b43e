package services

import (
	"context"

	"todo-api/internal/models"
)

// TodoService defines the business operations on todos
type TodoService interface {
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, id string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// CreateTodoRequest is the payload for creating a todo
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdateTodoRequest is the payload for updating a todo. Both fields are
// required: updates replace the full mutable field set, there is no partial
// update.
type UpdateTodoRequest struct {
	Text    *string `json:"text" validate:"required"`
	Checked *bool   `json:"checked" validate:"required"`
}
