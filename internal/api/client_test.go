package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/task"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default().API
	cfg.BaseURL = srv.URL
	return NewClient(cfg, nil), srv
}

func TestListTasksConvertsAndSorts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tasks": map[string]any{
				"Write essay": map[string]any{
					"description": "History paper",
					"subtasks":    []string{"Outline", "Draft"},
					"due_date":    "2026-03-15",
				},
				"Read chapter": map[string]any{
					"description": "",
					"subtasks":    []string{},
					"due_date":    "",
				},
			},
			"count": 2,
		})
	}))

	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	// Sorted by name.
	if tasks[0].Title != "Read chapter" || tasks[1].Title != "Write essay" {
		t.Errorf("order = [%s, %s], want sorted by name", tasks[0].Title, tasks[1].Title)
	}

	essay := tasks[1]
	if len(essay.Subtasks) != 2 || essay.Subtasks[0].Title != "Outline" {
		t.Errorf("subtasks = %+v", essay.Subtasks)
	}
	if essay.Deadline == nil || essay.Deadline.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("Deadline = %v, want 2026-03-15", essay.Deadline)
	}
	if tasks[0].Deadline != nil {
		t.Error("empty due_date should leave Deadline nil")
	}
}

func TestAddTaskWirePayload(t *testing.T) {
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/add" {
			t.Errorf("path = %s, want /tasks/add", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	err := client.AddTask(context.Background(), task.Task{
		Title:       "Write essay",
		Description: "History paper",
		Deadline:    &deadline,
		Subtasks:    []task.Subtask{{ID: "a", Title: "Outline"}},
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if got["name"] != "Write essay" {
		t.Errorf("name = %v", got["name"])
	}
	if got["due_date"] != "2026-03-15" {
		t.Errorf("due_date = %v", got["due_date"])
	}
	subs, _ := got["subtasks"].([]any)
	if len(subs) != 1 || subs[0] != "Outline" {
		t.Errorf("subtasks = %v", got["subtasks"])
	}
}

func TestLoginUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_credentials"}`))
	}))

	_, err := client.Login(context.Background(), "sam", "wrong")
	if !errors.Is(err, errors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"username_taken"}`))
	}))

	_, err := client.Register(context.Background(), "sam", "pw", "")
	var exists *errors.AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Errorf("expected AlreadyExistsError, got %v", err)
	}
}

func TestServerErrorCarriesStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))

	err := client.DeleteTask(context.Background(), "Write essay")
	var apiErr *errors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Body != "boom" {
		t.Errorf("Body = %q, want boom", apiErr.Body)
	}
	if !errors.IsRetryable(err) {
		t.Error("5xx should be retryable")
	}
}

func TestClientErrorIsNotRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	err := client.AddSubtask(context.Background(), "Write essay", "Outline")
	if errors.IsRetryable(err) {
		t.Error("4xx should not be retryable")
	}
}

func TestChatHistoryCapsAtTenOldestFirst(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msgs []map[string]string
		for i := 0; i < 15; i++ {
			msgs = append(msgs, map[string]string{"role": "user", "content": string(rune('a' + i))})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"messages": msgs})
	}))

	msgs, err := client.ChatHistory(context.Background(), "sam")
	if err != nil {
		t.Fatalf("ChatHistory failed: %v", err)
	}
	if len(msgs) != 10 {
		t.Fatalf("got %d messages, want 10", len(msgs))
	}
	if msgs[0].Content != "f" || msgs[9].Content != "o" {
		t.Errorf("window = %q..%q, want f..o", msgs[0].Content, msgs[9].Content)
	}
}

func TestSendChatCircuitBreakerOpens(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	// Default breaker trips after three consecutive failures.
	for i := 0; i < 3; i++ {
		if _, err := client.SendChat(context.Background(), "sam", "hi"); err == nil {
			t.Fatal("expected failure")
		}
	}

	_, err := client.SendChat(context.Background(), "sam", "hi")
	if !errors.Is(err, errors.ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen after repeated failures, got %v", err)
	}
}

func TestSayStreamsAudio(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice/say" {
			t.Errorf("path = %s, want /voice/say", r.URL.Path)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))

	stream, err := client.Say(context.Background(), SayRequest{Text: "hello", ReferenceID: "model-1"})
	if err != nil {
		t.Fatalf("Say failed: %v", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Errorf("stream = %q", data)
	}
}

func TestUnreachableBackend(t *testing.T) {
	cfg := config.Default().API
	cfg.BaseURL = "http://127.0.0.1:1"
	client := NewClient(cfg, nil)

	err := client.Health(context.Background())
	if !errors.Is(err, errors.ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}
