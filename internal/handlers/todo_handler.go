package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-api/internal/services"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService services.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// CreateTodo creates a new todo from the request body
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req services.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create todo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// ListTodos returns every todo
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list todos",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo returns a single todo by id
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id := c.Param("id")

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		respondTodoError(c, err, "Failed to get todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo replaces the text and checked fields of an existing todo
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, &req)
	if err != nil {
		respondTodoError(c, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a todo. The response body is empty; deleting an id
// that was never created is still a success.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		respondTodoError(c, err, "Failed to delete todo")
		return
	}

	c.Status(http.StatusOK)
}

// respondTodoError maps service errors onto HTTP statuses
func respondTodoError(c *gin.Context, err error, fallback string) {
	switch {
	case isNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Todo not found",
			Message: err.Error(),
		})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	}
}
