package memory

import (
	"context"
	"sync"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// todoRepository is a process-local repositories.TodoRepository used by
// tests and by server mode when no table service is reachable. Values are
// copied on the way in and out so callers cannot alias the stored state.
type todoRepository struct {
	mu    sync.RWMutex
	todos map[string]models.Todo
}

// NewTodoRepository creates an empty in-memory todo repository
func NewTodoRepository() repositories.TodoRepository {
	return &todoRepository{
		todos: make(map[string]models.Todo),
	}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos[todo.ID] = *todo
	return nil
}

func (r *todoRepository) List(ctx context.Context) ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]models.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}
	return todos, nil
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, repositories.NotFoundError("todo", id)
	}
	return &todo, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[todo.ID]; !ok {
		return repositories.NotFoundError("todo", todo.ID)
	}
	r.todos[todo.ID] = *todo
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.todos, id)
	return nil
}
