package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-api/internal/models"
	"todo-api/internal/repositories/memory"
	"todo-api/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		TodoService: services.NewTodoService(memory.NewTodoRepository()),
	})
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestCreateTodoEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "POST", "/todos", `{"text":"buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var todo models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &todo); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if todo.ID == "" {
		t.Error("Expected generated ID in response")
	}
	if todo.Text != "buy milk" {
		t.Errorf("Expected text 'buy milk', got %q", todo.Text)
	}
	if todo.Checked {
		t.Error("Expected created todo to be unchecked")
	}

	// Timestamps render as bare JSON numbers.
	if strings.Contains(w.Body.String(), `"createdAt":"`) {
		t.Errorf("Expected numeric createdAt, got %s", w.Body.String())
	}
}

func TestCreateTodoInvalidBody(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "POST", "/todos", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", w.Code)
	}

	w = doRequest(router, "POST", "/todos", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing text, got %d", w.Code)
	}
}

func TestGetTodoNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "GET", "/todos/0b1f8f47-6f9a-4f86-9a2e-5a4ad64fbdcf", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected machine-readable error field")
	}
}

func TestGetTodoInvalidID(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "GET", "/todos/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed id, got %d", w.Code)
	}
}

func TestUpdateTodoRequiresBothFields(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, "POST", "/todos", `{"text":"task"}`)
	var created models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode created todo: %v", err)
	}

	w = doRequest(router, "PUT", "/todos/"+created.ID, `{"checked":true}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for partial update, got %d: %s", w.Code, w.Body.String())
	}
}

// TestTodoLifecycle covers the full create, update, delete, get scenario
func TestTodoLifecycle(t *testing.T) {
	router := newTestRouter()

	// Create
	w := doRequest(router, "POST", "/todos", `{"text":"buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d", w.Code)
	}
	var created models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Create: failed to decode response: %v", err)
	}
	if created.Checked {
		t.Error("Create: expected checked=false")
	}

	// List contains exactly the created todo
	w = doRequest(router, "GET", "/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("List: expected 200, got %d", w.Code)
	}
	var listed []models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("List: failed to decode response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("List: expected the created todo, got %+v", listed)
	}

	// Update
	w = doRequest(router, "PUT", "/todos/"+created.ID, `{"text":"buy milk","checked":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Update: failed to decode response: %v", err)
	}
	if !updated.Checked {
		t.Error("Update: expected checked=true")
	}
	if !created.UpdatedAt.Before(updated.UpdatedAt) {
		t.Errorf("Update: expected later updatedAt, got %d <= %d",
			updated.UpdatedAt.UnixMilli(), created.UpdatedAt.UnixMilli())
	}

	// Delete
	w = doRequest(router, "DELETE", "/todos/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Delete: expected 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Delete: expected empty body, got %q", w.Body.String())
	}

	// Get after delete
	w = doRequest(router, "GET", "/todos/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Get after delete: expected 404, got %d", w.Code)
	}

	// Delete again: still a success
	w = doRequest(router, "DELETE", "/todos/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("Second delete: expected 200, got %d", w.Code)
	}
}
