// Package daily tracks which subtasks the user picked for today's focus
// work. The selection is date-stamped: loading yesterday's file yields
// an empty selection for today, so every day starts fresh.
package daily

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/storage"
)

const (
	selectionKey = "daily-selection.json"
	dateLayout   = "2006-01-02"
)

// Selection is the persisted shape of a day's picks.
type Selection struct {
	Date       string   `json:"date"`
	SubtaskIDs []string `json:"subtaskIds"`
}

// Store holds today's subtask selection and persists it through a
// Backend. All methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	logger  *logging.Logger
	now     func() time.Time

	date string
	ids  []string
}

// NewStore creates a selection store over the given backend. A nil
// logger is replaced with a no-op one.
func NewStore(backend storage.Backend, logger *logging.Logger) *Store {
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock overrides the store's notion of now. Used by tests to pin
// the day boundary.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load reads the persisted selection. A missing, unreadable or
// stale-dated file leaves the store with an empty selection for today;
// only backend write failures later surface as errors.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(dateLayout)
	s.date = today
	s.ids = nil

	data, ok, err := s.backend.Read(selectionKey)
	if err != nil {
		s.logger.Warn("daily selection unreadable, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		s.logger.Warn("daily selection corrupt, starting empty", "error", err)
		return nil
	}
	if sel.Date != today {
		s.logger.Debug("daily selection stale, starting empty", "stored_date", sel.Date, "today", today)
		return nil
	}

	s.ids = sel.SubtaskIDs
	return nil
}

// IDs returns a copy of the selected subtask IDs in pick order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()
	return append([]string(nil), s.ids...)
}

// Count returns the number of selected subtasks.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()
	return len(s.ids)
}

// Contains reports whether the subtask is in today's selection.
func (s *Store) Contains(subtaskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()
	for _, id := range s.ids {
		if id == subtaskID {
			return true
		}
	}
	return false
}

// Toggle adds the subtask to today's selection, or removes it when
// already present, and persists the result. It returns whether the
// subtask is selected afterwards.
func (s *Store) Toggle(subtaskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()

	for i, id := range s.ids {
		if id == subtaskID {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return false, s.saveLocked()
		}
	}
	s.ids = append(s.ids, subtaskID)
	return true, s.saveLocked()
}

// Remove drops a subtask from today's selection if present and
// persists the result.
func (s *Store) Remove(subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()

	for i, id := range s.ids {
		if id == subtaskID {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return s.saveLocked()
		}
	}
	return nil
}

// Clear empties today's selection and persists it.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked()
	s.ids = nil
	return s.saveLocked()
}

// rolloverLocked resets the selection when the day has changed since
// the last operation.
func (s *Store) rolloverLocked() {
	today := s.now().Format(dateLayout)
	if s.date != today {
		if s.date != "" {
			s.logger.Debug("day changed, resetting daily selection", "previous", s.date, "today", today)
		}
		s.date = today
		s.ids = nil
	}
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(Selection{
		Date:       s.date,
		SubtaskIDs: append([]string(nil), s.ids...),
	}, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Write(selectionKey, data)
}
