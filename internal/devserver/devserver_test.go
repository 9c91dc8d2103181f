package devserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ckarenz/bodybuddy/internal/api"
	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/task"
)

func newStub(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(New(nil).Router())
	t.Cleanup(srv.Close)

	cfg := config.Default().API
	cfg.BaseURL = srv.URL
	return api.NewClient(cfg, nil)
}

func TestHealth(t *testing.T) {
	client := newStub(t)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
}

func TestAccountLifecycle(t *testing.T) {
	client := newStub(t)
	ctx := context.Background()

	acct, err := client.Register(ctx, "sam", "hunter2", "model-1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if acct.Username != "sam" || acct.VoiceModel != "model-1" {
		t.Errorf("account = %+v", acct)
	}
	if acct.AgentID == "" {
		t.Error("registration should mint an agent ID")
	}

	if _, err := client.Register(ctx, "sam", "other", ""); err == nil {
		t.Error("duplicate registration should fail")
	}

	if _, err := client.Login(ctx, "sam", "wrong"); !errors.Is(err, errors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	logged, err := client.Login(ctx, "sam", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.Username != "sam" {
		t.Errorf("Username = %q", logged.Username)
	}

	if err := client.UpdateVoiceModel(ctx, "sam", "model-2"); err != nil {
		t.Fatalf("UpdateVoiceModel failed: %v", err)
	}
	fetched, err := client.Account(ctx, "sam")
	if err != nil {
		t.Fatalf("Account failed: %v", err)
	}
	if fetched.VoiceModel != "model-2" {
		t.Errorf("VoiceModel = %q, want model-2", fetched.VoiceModel)
	}
}

func TestTaskLifecycle(t *testing.T) {
	client := newStub(t)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	err := client.AddTask(ctx, task.Task{
		Title:       "Write essay",
		Description: "History paper",
		Deadline:    &deadline,
		Subtasks:    []task.Subtask{{ID: "a", Title: "Outline"}},
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := client.AddSubtask(ctx, "Write essay", "Draft"); err != nil {
		t.Fatalf("AddSubtask failed: %v", err)
	}

	tasks, err := client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Write essay" || len(got.Subtasks) != 2 {
		t.Errorf("task = %+v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("Deadline = %v", got.Deadline)
	}

	if err := client.RemoveSubtask(ctx, "Write essay", "Outline"); err != nil {
		t.Fatalf("RemoveSubtask failed: %v", err)
	}
	if err := client.RemoveSubtask(ctx, "Write essay", "Outline"); err == nil {
		t.Error("removing a missing subtask should fail")
	}

	if err := client.DeleteTask(ctx, "Write essay"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	tasks, err = client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(tasks))
	}
}

func TestChatRoundTrip(t *testing.T) {
	client := newStub(t)
	ctx := context.Background()

	reply, err := client.SendChat(ctx, "sam", "how do I start?")
	if err != nil {
		t.Fatalf("SendChat failed: %v", err)
	}
	if reply.Text == "" {
		t.Error("stub should answer with a persona line")
	}

	history, err := client.ChatHistory(ctx, "sam")
	if err != nil {
		t.Fatalf("ChatHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d messages, want 2", len(history))
	}
	if history[0].Role != "user" || history[0].Content != "how do I start?" {
		t.Errorf("first message = %+v", history[0])
	}
	if history[1].Role != "assistant" {
		t.Errorf("second message role = %q", history[1].Role)
	}
}

func TestVoiceSayStreamsAudio(t *testing.T) {
	client := newStub(t)

	stream, err := client.Say(context.Background(), api.SayRequest{Text: "break time"})
	if err != nil {
		t.Fatalf("Say failed: %v", err)
	}
	defer stream.Close()
}

func TestValidationRejectsMissingFields(t *testing.T) {
	srv := httptest.NewServer(New(nil).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/chat/send", "application/json", strings.NewReader(`{"user_id":"sam"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownTaskReturns404(t *testing.T) {
	srv := httptest.NewServer(New(nil).Router())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/tasks/delete/missing", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
