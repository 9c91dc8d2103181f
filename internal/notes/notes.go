// Package notes keeps the append-only log of focus session notes. A
// note records what the user taught back after a session; sessions with
// an empty teachback leave no note.
package notes

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/storage"
	"github.com/google/uuid"
)

const notesKey = "session-notes.json"

// Note is one saved session reflection.
type Note struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	DurationMinutes int       `json:"duration"`
	SubtaskID       string    `json:"subtaskId"`
	TaskTitle       string    `json:"taskTitle"`
	SubtaskTitle    string    `json:"subtaskTitle"`
	Teachback       string    `json:"teachback"`
	Reflection      string    `json:"reflection"`
}

// Store is the append-only note log. Notes are never edited or removed.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	logger  *logging.Logger
	notes   []Note
}

// NewStore creates a note store over the given backend.
func NewStore(backend storage.Backend, logger *logging.Logger) *Store {
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{backend: backend, logger: logger}
}

// Load reads persisted notes. Missing or corrupt data starts the log
// empty; a corrupt file is logged and left in place until the next
// append overwrites it.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = nil
	data, ok, err := s.backend.Read(notesKey)
	if err != nil {
		s.logger.Warn("session notes unreadable, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, &s.notes); err != nil {
		s.notes = nil
		s.logger.Warn("session notes corrupt, starting empty", "error", err)
	}
	return nil
}

// Append validates and adds a note, then persists the log. A note with
// an empty teachback is rejected; sessions without a teachback should
// simply not call Append.
func (s *Store) Append(n Note) (Note, error) {
	if n.Teachback == "" {
		return Note{}, errors.NewValidationError("teachback cannot be empty").WithField("teachback")
	}
	if n.SubtaskID == "" {
		return Note{}, errors.NewValidationError("note needs a subtask").WithField("subtaskId")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(s.notes, n)
	if err := s.saveLocked(); err != nil {
		s.notes = s.notes[:len(s.notes)-1]
		return Note{}, err
	}
	s.logger.Debug("session note saved", "note_id", n.ID, "subtask_id", n.SubtaskID)
	return n, nil
}

// List returns all notes, oldest first.
func (s *Store) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note(nil), s.notes...)
}

// ForSubtask returns the notes recorded against one subtask.
func (s *Store) ForSubtask(subtaskID string) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Note
	for _, n := range s.notes {
		if n.SubtaskID == subtaskID {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of saved notes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.notes, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Write(notesKey, data)
}
