package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Todo represents a single task item in the system
type Todo struct {
	ID        string `json:"id" dynamodbav:"id" validate:"required,uuid"`
	Text      string `json:"text" dynamodbav:"text"`
	Checked   bool   `json:"checked" dynamodbav:"checked"`
	CreatedAt Millis `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt Millis `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewTodo creates a new todo with a generated ID and matching timestamps
func NewTodo(text string) *Todo {
	now := Now()
	return &Todo{
		ID:        uuid.New().String(),
		Text:      text,
		Checked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply replaces the mutable fields and refreshes the update timestamp.
// UpdatedAt always moves strictly forward so successive updates stay ordered
// even within the same millisecond.
func (t *Todo) Apply(text string, checked bool) {
	t.Text = text
	t.Checked = checked

	now := Now()
	if !t.UpdatedAt.Before(now) {
		now = NewMillis(t.UpdatedAt.Add(time.Millisecond))
	}
	t.UpdatedAt = now
}

// Validate validates the todo data
func (t *Todo) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("todo ID is required")
	}

	if _, err := uuid.Parse(t.ID); err != nil {
		return fmt.Errorf("invalid todo ID format: %w", err)
	}

	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("todo text is required")
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("todo updatedAt precedes createdAt")
	}

	return nil
}
