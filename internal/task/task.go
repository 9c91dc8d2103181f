// Package task holds the in-memory task store and its domain types.
// All mutation goes through Store methods; callers get defensive copies
// back so the slice held by the store is never aliased by the UI.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies where a task came from.
type Source string

const (
	// SourceManual is a task the user typed in.
	SourceManual Source = "manual"
	// SourceGmail is a task imported from a Gmail scan.
	SourceGmail Source = "gmail"
	// SourceCanvas is a task imported from Canvas.
	SourceCanvas Source = "canvas"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// IsValid reports whether the source is a known value.
func (s Source) IsValid() bool {
	return s == SourceManual || s == SourceGmail || s == SourceCanvas
}

// Position is a point on the urgency/importance matrix, both axes in [0,100].
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Subtask is an atomic unit of completable work under a parent task.
// Completed starts false and is only ever flipped by user action.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a unit of work on the priority matrix.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Urgency     int        `json:"urgency"`
	Importance  int        `json:"importance"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Subtasks    []Subtask  `json:"subtasks"`
	Source      Source     `json:"source"`
	Position    *Position  `json:"position,omitempty"`

	// Manual marks a position set by a user drag. Manual positions are
	// sticky: recomputes leave both the position and the dragged scores
	// alone until the user drags again.
	Manual bool `json:"manual,omitempty"`

	// OrderInSequence is the task's slot in the sequential "caterpillar"
	// ordering. Nil means unordered.
	OrderInSequence *int `json:"order_in_sequence,omitempty"`
}

// New creates a manual task with templated subtasks and a neutral
// starting position at the center of the matrix.
func New(title string) Task {
	return Task{
		ID:         uuid.NewString(),
		Title:      title,
		Urgency:    50,
		Importance: 50,
		Subtasks:   GenerateSubtasks(title),
		Source:     SourceManual,
		Position:   &Position{X: 50, Y: 50},
	}
}

// Progress returns the number of completed subtasks and the total count.
func (t *Task) Progress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() Task {
	out := *t
	if t.Deadline != nil {
		dl := *t.Deadline
		out.Deadline = &dl
	}
	if t.Position != nil {
		pos := *t.Position
		out.Position = &pos
	}
	if t.OrderInSequence != nil {
		ord := *t.OrderInSequence
		out.OrderInSequence = &ord
	}
	out.Subtasks = make([]Subtask, len(t.Subtasks))
	copy(out.Subtasks, t.Subtasks)
	return out
}
