package task

import (
	"sync"
	"time"

	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/priority"
	"github.com/google/uuid"
)

// Store is the single holder of task state. All reads return copies and
// all writes go through mutation methods, so consumers never share the
// underlying slice.
type Store struct {
	mu     sync.RWMutex
	tasks  []Task
	logger *logging.Logger
	now    func() time.Time
}

// NewStore creates an empty task store.
func NewStore(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the store's notion of now. Used by tests to pin
// urgency computation to a fixed instant.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// List returns a deep copy of all tasks in store order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.tasks))
	for i := range s.tasks {
		out = append(out, s.tasks[i].Clone())
	}
	return out
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i].Clone(), nil
		}
	}
	return Task{}, errors.NewNotFoundError("task", id)
}

// Add validates and appends a task, then recomputes matrix positions.
// A task without a sequence slot is appended after the current maximum.
func (s *Store) Add(t Task) error {
	if t.Title == "" {
		return errors.NewValidationError("task title cannot be empty").WithField("title")
	}
	if !t.Source.IsValid() {
		return errors.NewValidationError("unknown task source").
			WithField("source").
			WithValue(string(t.Source))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			return errors.NewTaskError("cannot add task", errors.ErrDuplicateTask).WithTaskID(t.ID)
		}
	}

	if t.OrderInSequence == nil {
		next := s.maxOrderLocked() + 1
		t.OrderInSequence = &next
	}

	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", "task_id", t.ID, "title", t.Title)
	s.recomputeLocked(s.now())
	return nil
}

// Update replaces the stored task with the same ID.
func (s *Store) Update(t Task) error {
	if t.Title == "" {
		return errors.NewValidationError("task title cannot be empty").WithField("title")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			s.recomputeLocked(s.now())
			return nil
		}
	}
	return errors.NewTaskError("cannot update task", errors.ErrTaskNotFound).WithTaskID(t.ID)
}

// Remove deletes a task and recomputes matrix positions.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			s.logger.Debug("task removed", "task_id", id)
			s.recomputeLocked(s.now())
			return nil
		}
	}
	return errors.NewTaskError("cannot remove task", errors.ErrTaskNotFound).WithTaskID(id)
}

// Replace swaps the whole task list, used when loading from the backend.
// Imported tasks get computed scores on the recompute that follows.
func (s *Store) Replace(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
	s.recomputeLocked(s.now())
}

// AddSubtask appends a new incomplete subtask to a task.
func (s *Store) AddSubtask(taskID, title string) (Subtask, error) {
	if title == "" {
		return Subtask{}, errors.NewValidationError("subtask title cannot be empty").WithField("title")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		sub := Subtask{ID: newSubtaskID(), Title: title}
		s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, sub)
		s.recomputeLocked(s.now())
		return sub, nil
	}
	return Subtask{}, errors.NewTaskError("cannot add subtask", errors.ErrTaskNotFound).WithTaskID(taskID)
}

// RemoveSubtask deletes a subtask from its parent task.
func (s *Store) RemoveSubtask(taskID, subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		subs := s.tasks[i].Subtasks
		for j := range subs {
			if subs[j].ID == subtaskID {
				s.tasks[i].Subtasks = append(subs[:j:j], subs[j+1:]...)
				s.recomputeLocked(s.now())
				return nil
			}
		}
		return errors.NewTaskError("cannot remove subtask", errors.ErrSubtaskNotFound).
			WithTaskID(taskID).
			WithSubtaskID(subtaskID)
	}
	return errors.NewTaskError("cannot remove subtask", errors.ErrTaskNotFound).WithTaskID(taskID)
}

// ToggleSubtask flips a subtask's completed state and returns the new value.
func (s *Store) ToggleSubtask(taskID, subtaskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		for j := range s.tasks[i].Subtasks {
			if s.tasks[i].Subtasks[j].ID == subtaskID {
				s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed
				return s.tasks[i].Subtasks[j].Completed, nil
			}
		}
		return false, errors.NewTaskError("cannot toggle subtask", errors.ErrSubtaskNotFound).
			WithTaskID(taskID).
			WithSubtaskID(subtaskID)
	}
	return false, errors.NewTaskError("cannot toggle subtask", errors.ErrTaskNotFound).WithTaskID(taskID)
}

// CompleteSubtask marks a subtask complete, searching across all tasks.
// Used at focus session end when only the subtask ID is known.
func (s *Store) CompleteSubtask(subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		for j := range s.tasks[i].Subtasks {
			if s.tasks[i].Subtasks[j].ID == subtaskID {
				s.tasks[i].Subtasks[j].Completed = true
				s.logger.Debug("subtask completed", "subtask_id", subtaskID, "task_id", s.tasks[i].ID)
				return nil
			}
		}
	}
	return errors.NewTaskError("cannot complete subtask", errors.ErrSubtaskNotFound).WithSubtaskID(subtaskID)
}

// FindSubtask locates a subtask by ID and returns copies of it and its
// parent task.
func (s *Store) FindSubtask(subtaskID string) (Task, Subtask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		for _, sub := range s.tasks[i].Subtasks {
			if sub.ID == subtaskID {
				return s.tasks[i].Clone(), sub, true
			}
		}
	}
	return Task{}, Subtask{}, false
}

// Drag moves a task to a manual matrix position. Coordinates are clamped
// to [0,100] and written to both the position and the score fields; the
// manual value stays authoritative across later recomputes.
func (s *Store) Drag(id string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		cx := priority.Clamp(x)
		cy := priority.Clamp(y)
		s.tasks[i].Position = &Position{X: cx, Y: cy}
		s.tasks[i].Urgency = int(cx + 0.5)
		s.tasks[i].Importance = int(cy + 0.5)
		s.tasks[i].Manual = true
		s.logger.Debug("task dragged", "task_id", id, "x", cx, "y", cy)
		return nil
	}
	return errors.NewTaskError("cannot drag task", errors.ErrTaskNotFound).WithTaskID(id)
}

// Recompute refreshes scores and positions from deadlines and subtask
// counts.
func (s *Store) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked(s.now())
}

// recomputeLocked rescores every non-manual task. A task keeps its
// position unless its scores drifted from the freshly computed values or
// it has no position yet. Manual positions are left untouched.
func (s *Store) recomputeLocked(now time.Time) {
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Manual {
			continue
		}

		urgency := priority.UrgencyScore(t.Deadline, now)
		importance := priority.ImportanceScore(len(t.Subtasks))

		drifted := t.Position == nil || t.Urgency != urgency || t.Importance != importance
		t.Urgency = urgency
		t.Importance = importance
		if drifted {
			t.Position = &Position{X: float64(urgency), Y: float64(importance)}
		}
	}
}

// maxOrderLocked returns the highest sequence slot in use, or -1.
func (s *Store) maxOrderLocked() int {
	max := -1
	for i := range s.tasks {
		if ord := s.tasks[i].OrderInSequence; ord != nil && *ord > max {
			max = *ord
		}
	}
	return max
}

func newSubtaskID() string {
	return uuid.NewString()
}
