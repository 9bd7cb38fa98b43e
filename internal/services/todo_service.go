package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// todoService implements the TodoService interface
type todoService struct {
	todoRepo  repositories.TodoRepository
	validator *validator.Validate
}

// NewTodoService creates a new todo service instance
func NewTodoService(todoRepo repositories.TodoRepository) TodoService {
	return &todoService{
		todoRepo:  todoRepo,
		validator: validator.New(),
	}
}

// CreateTodo creates a new todo
func (s *todoService) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error) {
	if req == nil {
		return nil, fmt.Errorf("create todo request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	todo := models.NewTodo(req.Text)

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// ListTodos retrieves all todos
func (s *todoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// GetTodo retrieves a todo by ID
func (s *todoService) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// UpdateTodo replaces the mutable fields of an existing todo and refreshes
// its update timestamp
func (s *todoService) UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, fmt.Errorf("update todo request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	todo.Apply(*req.Text, *req.Checked)

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo removes a todo. Deleting an id that does not exist succeeds:
// the operation is idempotent all the way down to the table.
func (s *todoService) DeleteTodo(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("todo ID cannot be empty: %w", repositories.ErrInvalidID)
	}

	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid todo ID format: %w", repositories.ErrInvalidID)
	}

	return nil
}
