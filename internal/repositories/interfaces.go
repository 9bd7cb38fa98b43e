package repositories

import (
	"context"

	"todo-api/internal/models"
)

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create persists a new todo. The caller owns id generation; an
	// existing item with the same id is overwritten.
	Create(ctx context.Context, todo *models.Todo) error

	// List returns every todo in the table. No ordering is guaranteed.
	List(ctx context.Context) ([]models.Todo, error)

	// GetByID returns the todo with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Todo, error)

	// Update replaces the mutable fields of an existing todo. Returns
	// ErrNotFound when no todo with the given id exists.
	Update(ctx context.Context, todo *models.Todo) error

	// Delete removes a todo by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
