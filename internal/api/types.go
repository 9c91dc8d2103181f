package api

import (
	"fmt"
	"time"

	"github.com/ckarenz/bodybuddy/internal/task"
)

// Account is the backend's view of a user.
type Account struct {
	Username   string `json:"username"`
	VoiceModel string `json:"voice_model"`
	AgentID    string `json:"letta_agent_id"`
}

// ChatReply is the backend's answer to a chat message.
type ChatReply struct {
	Text           string `json:"text"`
	VoiceSuggested bool   `json:"voice_suggested"`
	Personality    string `json:"personality"`
	VoiceModel     string `json:"voice_model"`
}

// ChatMessage is one entry of the stored conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SayRequest asks the backend to synthesize speech.
type SayRequest struct {
	Text        string  `json:"text"`
	ReferenceID string  `json:"reference_id,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	Speed       float64 `json:"speed,omitempty"`
	Format      string  `json:"format,omitempty"`
}

// wireTask is the backend task value. Tasks are keyed by name on the
// wire; the name itself lives in the surrounding map.
type wireTask struct {
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
	DueDate     string   `json:"due_date"`
}

// taskListResponse is the GET /tasks/ payload.
type taskListResponse struct {
	Tasks map[string]wireTask `json:"tasks"`
	Count int                 `json:"count"`
}

// wireDateLayout is the backend's due date format.
const wireDateLayout = "2006-01-02"

// toDomain converts a named wire task to the domain shape. Imported
// tasks carry no scores; the task store computes them on the next
// recompute. Subtask IDs are derived from the task name and position so
// repeated imports stay stable.
func (w wireTask) toDomain(name string) task.Task {
	t := task.Task{
		ID:          name,
		Title:       name,
		Description: w.Description,
		Source:      task.SourceManual,
	}
	for i, title := range w.Subtasks {
		t.Subtasks = append(t.Subtasks, task.Subtask{
			ID:    subtaskID(name, i),
			Title: title,
		})
	}
	if w.DueDate != "" {
		if due, err := parseWireDate(w.DueDate); err == nil {
			t.Deadline = &due
		}
	}
	return t
}

// fromDomain converts a domain task to the wire shape.
func fromDomain(t task.Task) (name string, w wireTask) {
	w = wireTask{
		Description: t.Description,
		Subtasks:    make([]string, 0, len(t.Subtasks)),
	}
	for _, sub := range t.Subtasks {
		w.Subtasks = append(w.Subtasks, sub.Title)
	}
	if t.Deadline != nil {
		w.DueDate = t.Deadline.Format(wireDateLayout)
	}
	return t.Title, w
}

func parseWireDate(s string) (time.Time, error) {
	if due, err := time.Parse(wireDateLayout, s); err == nil {
		return due, nil
	}
	return time.Parse(time.RFC3339, s)
}

func subtaskID(taskName string, index int) string {
	return fmt.Sprintf("%s/%d", taskName, index)
}
