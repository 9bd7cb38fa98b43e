package handlers

import (
	"github.com/gin-gonic/gin"

	"todo-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TodoService services.TodoService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	todoHandler := NewTodoHandler(config.TodoService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "todo-api",
			"version": "1.0.0",
		})
	})

	todos := router.Group("/todos")
	{
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("", todoHandler.ListTodos)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
