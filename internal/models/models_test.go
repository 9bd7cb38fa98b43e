package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// TestNewTodo tests todo creation defaults
func TestNewTodo(t *testing.T) {
	todo := NewTodo("buy milk")

	if todo.ID == "" {
		t.Error("Expected generated ID, got empty string")
	}
	if _, err := uuid.Parse(todo.ID); err != nil {
		t.Errorf("Expected UUID id, got %q: %v", todo.ID, err)
	}
	if todo.Text != "buy milk" {
		t.Errorf("Expected text 'buy milk', got %q", todo.Text)
	}
	if todo.Checked {
		t.Error("Expected new todo to be unchecked")
	}
	if !todo.CreatedAt.Equal(todo.UpdatedAt) {
		t.Errorf("Expected createdAt == updatedAt, got %v and %v", todo.CreatedAt, todo.UpdatedAt)
	}

	if err := todo.Validate(); err != nil {
		t.Errorf("New todo failed validation: %v", err)
	}
}

// TestTodoApply tests that updates only touch the mutable fields and always
// move updatedAt strictly forward
func TestTodoApply(t *testing.T) {
	todo := NewTodo("original")
	id := todo.ID
	createdAt := todo.CreatedAt
	before := todo.UpdatedAt

	todo.Apply("original", true)

	if todo.ID != id {
		t.Error("Apply must not change the ID")
	}
	if !todo.CreatedAt.Equal(createdAt) {
		t.Error("Apply must not change createdAt")
	}
	if !todo.Checked {
		t.Error("Expected checked to be true after apply")
	}
	if !before.Before(todo.UpdatedAt) {
		t.Errorf("Expected updatedAt to strictly increase: before=%d after=%d",
			before.UnixMilli(), todo.UpdatedAt.UnixMilli())
	}

	// A second apply in the same millisecond still advances the timestamp.
	prev := todo.UpdatedAt
	todo.Apply("renamed", false)
	if !prev.Before(todo.UpdatedAt) {
		t.Errorf("Expected updatedAt to strictly increase on back-to-back updates: prev=%d after=%d",
			prev.UnixMilli(), todo.UpdatedAt.UnixMilli())
	}
	if todo.Text != "renamed" {
		t.Errorf("Expected text 'renamed', got %q", todo.Text)
	}
}

// TestTodoValidate tests validation failures
func TestTodoValidate(t *testing.T) {
	todo := NewTodo("task")

	todo.ID = ""
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for empty ID")
	}

	todo = NewTodo("task")
	todo.ID = "not-a-uuid"
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for malformed ID")
	}

	todo = NewTodo("   ")
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for blank text")
	}

	todo = NewTodo("task")
	todo.UpdatedAt = NewMillis(todo.CreatedAt.Add(-time.Second))
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for updatedAt before createdAt")
	}
}

// TestTodoJSONRoundTrip tests that timestamps serialize as plain JSON
// numbers and survive a round trip
func TestTodoJSONRoundTrip(t *testing.T) {
	todo := NewTodo("buy milk")
	todo.Apply("buy milk", true)

	data, err := json.Marshal(todo)
	if err != nil {
		t.Fatalf("Failed to marshal todo: %v", err)
	}

	body := string(data)
	if strings.Contains(body, `"createdAt":"`) || strings.Contains(body, `"updatedAt":"`) {
		t.Errorf("Expected timestamps to serialize as bare numbers, got %s", body)
	}

	var decoded Todo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal todo: %v", err)
	}

	if decoded.ID != todo.ID || decoded.Text != todo.Text || decoded.Checked != todo.Checked {
		t.Errorf("Round trip changed fields: got %+v, want %+v", decoded, todo)
	}
	if !decoded.CreatedAt.Equal(todo.CreatedAt) {
		t.Errorf("Round trip changed createdAt: got %d, want %d",
			decoded.CreatedAt.UnixMilli(), todo.CreatedAt.UnixMilli())
	}
	if !decoded.UpdatedAt.Equal(todo.UpdatedAt) {
		t.Errorf("Round trip changed updatedAt: got %d, want %d",
			decoded.UpdatedAt.UnixMilli(), todo.UpdatedAt.UnixMilli())
	}
}

// TestMillisUnmarshalJSON tests that both bare and quoted numbers are accepted
func TestMillisUnmarshalJSON(t *testing.T) {
	var m Millis
	if err := json.Unmarshal([]byte("1700000000000"), &m); err != nil {
		t.Fatalf("Failed to unmarshal bare number: %v", err)
	}
	if m.UnixMilli() != 1700000000000 {
		t.Errorf("Expected 1700000000000, got %d", m.UnixMilli())
	}

	if err := json.Unmarshal([]byte(`"1700000000000"`), &m); err != nil {
		t.Fatalf("Failed to unmarshal quoted number: %v", err)
	}
	if m.UnixMilli() != 1700000000000 {
		t.Errorf("Expected 1700000000000, got %d", m.UnixMilli())
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &m); err == nil {
		t.Error("Expected error for non-numeric timestamp")
	}
}

// TestMillisDynamoDBAttributeValue tests the DynamoDB attribute encoding
func TestMillisDynamoDBAttributeValue(t *testing.T) {
	m := NewMillis(time.UnixMilli(1700000000000))

	av, err := m.MarshalDynamoDBAttributeValue()
	if err != nil {
		t.Fatalf("Failed to marshal attribute value: %v", err)
	}

	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		t.Fatalf("Expected number attribute, got %T", av)
	}
	if n.Value != "1700000000000" {
		t.Errorf("Expected '1700000000000', got %q", n.Value)
	}

	var decoded Millis
	if err := decoded.UnmarshalDynamoDBAttributeValue(av); err != nil {
		t.Fatalf("Failed to unmarshal attribute value: %v", err)
	}
	if !decoded.Equal(m) {
		t.Errorf("Round trip changed value: got %d, want %d", decoded.UnixMilli(), m.UnixMilli())
	}

	// Items written by earlier deployments stored timestamps as strings.
	var fromString Millis
	if err := fromString.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "1700000000000"}); err != nil {
		t.Fatalf("Failed to unmarshal string attribute: %v", err)
	}
	if fromString.UnixMilli() != 1700000000000 {
		t.Errorf("Expected 1700000000000, got %d", fromString.UnixMilli())
	}

	var wrongType Millis
	if err := wrongType.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberBOOL{Value: true}); err == nil {
		t.Error("Expected error for non-numeric attribute type")
	}
}
