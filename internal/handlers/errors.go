package handlers

import (
	"errors"
	"strings"

	"todo-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

// isValidationError checks if an error is a validation error
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repositories.ErrInvalidID) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "validation")
}
