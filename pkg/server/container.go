package server

import (
	"context"
	"fmt"

	"todo-api/internal/config"
	"todo-api/internal/repositories"
	"todo-api/internal/repositories/dynamo"
	"todo-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	TodoService services.TodoService

	todoRepo repositories.TodoRepository
}

// NewContainer creates a dependency injection container wired to DynamoDB.
// The table endpoint comes from the configuration: default cloud resolution,
// or the local emulator when a LocalStack hostname is configured.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	endpoint := cfg.DynamoDB.Endpoint()

	client, err := dynamo.NewClient(ctx, cfg.AWS.Region, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	// Against the emulator the table is ours to bootstrap; in the cloud
	// it is provisioned by the deployment descriptor.
	if endpoint != "" {
		if err := dynamo.EnsureTable(ctx, client, cfg.DynamoDB.TableName); err != nil {
			return nil, fmt.Errorf("failed to ensure table: %w", err)
		}
	}

	todoRepo := dynamo.NewTodoRepository(client, cfg.DynamoDB.TableName)

	return NewContainerWithRepository(cfg, todoRepo), nil
}

// NewContainerWithRepository creates a container over an explicit repository.
// Used by tests and by modes that run without a table service.
func NewContainerWithRepository(cfg *config.Config, todoRepo repositories.TodoRepository) *Container {
	return &Container{
		Config:      cfg,
		TodoService: services.NewTodoService(todoRepo),
		todoRepo:    todoRepo,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	// The DynamoDB client holds no persistent connections to release.
	return nil
}
