package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type registerIn struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	VoiceModel string `json:"voice_model"`
}

type loginIn struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type voiceModelIn struct {
	VoiceModel string `json:"voice_model" validate:"required"`
}

type addTaskIn struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
	DueDate     string   `json:"due_date"`
}

type updateTaskIn struct {
	Description *string   `json:"description"`
	Subtasks    *[]string `json:"subtasks"`
	DueDate     *string   `json:"due_date"`
}

type subtaskOpIn struct {
	TaskName string `json:"task_name" validate:"required"`
	Subtask  string `json:"subtask" validate:"required"`
}

type chatIn struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

type sayIn struct {
	Text        string `json:"text" validate:"required"`
	ReferenceID string `json:"reference_id"`
	Format      string `json:"format"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerIn
	if !s.decode(w, r, &in) {
		return
	}

	username := strings.TrimSpace(in.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "username_taken"})
		return
	}

	acct := &stubAccount{
		Username:   username,
		Password:   in.Password,
		VoiceModel: in.VoiceModel,
		AgentID:    newAgentID(),
	}
	s.accounts[username] = acct

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":             true,
		"username":       acct.Username,
		"voice_model":    acct.VoiceModel,
		"letta_agent_id": acct.AgentID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[strings.TrimSpace(in.Username)]
	if !ok || acct.Password != in.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":             true,
		"username":       acct.Username,
		"voice_model":    acct.VoiceModel,
		"letta_agent_id": acct.AgentID,
	})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[chi.URLParam(r, "username")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username":       acct.Username,
		"voice_model":    acct.VoiceModel,
		"letta_agent_id": acct.AgentID,
	})
}

func (s *Server) handleUpdateVoiceModel(w http.ResponseWriter, r *http.Request) {
	var in voiceModelIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username := chi.URLParam(r, "username")
	acct, ok := s.accounts[username]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	acct.VoiceModel = strings.TrimSpace(in.VoiceModel)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"username":    username,
		"voice_model": acct.VoiceModel,
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make(map[string]stubTask, len(s.tasks))
	for name, t := range s.tasks {
		tasks[name] = t
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks, "count": len(tasks)})
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var in addTaskIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[in.Name]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "task_exists"})
		return
	}

	subtasks := in.Subtasks
	if subtasks == nil {
		subtasks = []string{}
	}
	s.tasks[in.Name] = stubTask{
		Description: in.Description,
		Subtasks:    subtasks,
		DueDate:     in.DueDate,
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Task '%s' added successfully", in.Name),
		"success": true,
	})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var in updateTaskIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(r, "taskName")
	t, ok := s.tasks[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Subtasks != nil {
		t.Subtasks = *in.Subtasks
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	s.tasks[name] = t

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Task '%s' updated successfully", name),
		"success": true,
	})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(r, "taskName")
	if _, ok := s.tasks[name]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	delete(s.tasks, name)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Task '%s' deleted successfully", name),
		"success": true,
	})
}

func (s *Server) handleAddSubtask(w http.ResponseWriter, r *http.Request) {
	var in subtaskOpIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[in.TaskName]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	t.Subtasks = append(t.Subtasks, in.Subtask)
	s.tasks[in.TaskName] = t

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Subtask added to '%s'", in.TaskName),
		"success": true,
	})
}

func (s *Server) handleRemoveSubtask(w http.ResponseWriter, r *http.Request) {
	var in subtaskOpIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[in.TaskName]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	for i, sub := range t.Subtasks {
		if sub == in.Subtask {
			t.Subtasks = append(t.Subtasks[:i:i], t.Subtasks[i+1:]...)
			s.tasks[in.TaskName] = t
			writeJSON(w, http.StatusOK, map[string]any{
				"message": fmt.Sprintf("Subtask removed from '%s'", in.TaskName),
				"success": true,
			})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "subtask_not_found"})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var in chatIn
	if !s.decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reply := s.gen.ChatResponse()
	s.chats[in.UserID] = append(s.chats[in.UserID],
		chatMessage{Role: "user", Content: in.Text},
		chatMessage{Role: "assistant", Content: reply},
	)

	voiceModel := ""
	if acct, ok := s.accounts[in.UserID]; ok {
		voiceModel = acct.VoiceModel
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"text":            reply,
		"voice_suggested": false,
		"personality":     s.gen.Personality().String(),
		"voice_model":     voiceModel,
	})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.chats[chi.URLParam(r, "userID")]
	if msgs == nil {
		msgs = []chatMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// handleVoiceSay answers with a tiny silent audio payload so clients
// exercising TTS get a well-formed stream.
func (s *Server) handleVoiceSay(w http.ResponseWriter, r *http.Request) {
	var in sayIn
	if !s.decode(w, r, &in) {
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte{0xFF, 0xFB, 0x90, 0x00})
}

// decode unmarshals and validates a JSON request body, answering 400
// on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		fields := make([]string, 0, 2)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation_failed",
			"fields": fields,
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
