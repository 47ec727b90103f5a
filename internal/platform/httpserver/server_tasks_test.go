package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	fileservice "pressboard/contexts/collaboration/file-service"
	messageservice "pressboard/contexts/collaboration/message-service"
	analyticsservice "pressboard/contexts/editorial/analytics-service"
	clientservice "pressboard/contexts/editorial/client-service"
	outletservice "pressboard/contexts/editorial/outlet-service"
	taskservice "pressboard/contexts/editorial/task-service"
	taskhttp "pressboard/contexts/editorial/task-service/transport/http"
	userservice "pressboard/contexts/identity/user-service"
	"pressboard/internal/platform/broadcast"
)

func newTestServer() *Server {
	hub := broadcast.NewHub(slog.Default())
	return New(
		Modules{
			Tasks:     taskservice.NewInMemoryModule(nil, hub, slog.Default()),
			Clients:   clientservice.NewInMemoryModule(nil, slog.Default()),
			Outlets:   outletservice.NewInMemoryModule(nil, slog.Default()),
			Users:     userservice.NewInMemoryModule(nil, slog.Default()),
			Messages:  messageservice.NewInMemoryModule(nil, hub, slog.Default()),
			Files:     fileservice.NewInMemoryModule(slog.Default()),
			Analytics: analyticsservice.NewInMemoryModule(nil, slog.Default()),
		},
		hub,
		slog.Default(),
		":0",
	)
}

func createTestTask(t *testing.T, server *Server) taskhttp.TaskDTO {
	t.Helper()
	body := []byte(`{"client_id":"client-1","title":"Launch press release","task_type":"article","language":"RU"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "manager-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp taskhttp.TaskResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.Task
}

func TestCreateTaskRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"client_id":"client-1","title":"Launch press release","task_type":"article"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateAndGetTask(t *testing.T) {
	server := newTestServer()
	task := createTestTask(t, server)
	if task.Status != "new" {
		t.Fatalf("expected status new, got %q", task.Status)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+task.TaskID, nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestChangeStatusBackwardWithoutCommentIsRejected(t *testing.T) {
	server := newTestServer()
	task := createTestTask(t, server)

	forward := []byte(`{"status":"in_progress"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.TaskID+"/status", bytes.NewReader(forward))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("forward move: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	backward := []byte(`{"status":"new"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.TaskID+"/status", bytes.NewReader(backward))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("backward move without comment: expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStatusSkipWithoutCommentIsRejected(t *testing.T) {
	server := newTestServer()
	task := createTestTask(t, server)

	skip := []byte(`{"status":"published"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.TaskID+"/status", bytes.NewReader(skip))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("stage skip without comment: expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUnknownStatusIsRejected(t *testing.T) {
	server := newTestServer()
	task := createTestTask(t, server)

	unknown := []byte(`{"status":"archived"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.TaskID+"/status", bytes.NewReader(unknown))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUndoWithoutPriorChangeIsConflict(t *testing.T) {
	server := newTestServer()
	task := createTestTask(t, server)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.TaskID+"/undo", nil)
	req.Header.Set("X-User-Id", "author-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetMissingTaskReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/missing-id", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
