package task

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := New("Write essay")

	if task.ID == "" {
		t.Error("new task should have an ID")
	}
	if task.Source != SourceManual {
		t.Errorf("Source = %q, want %q", task.Source, SourceManual)
	}
	if task.Urgency != 50 || task.Importance != 50 {
		t.Errorf("scores = (%d, %d), want (50, 50)", task.Urgency, task.Importance)
	}
	if task.Position == nil || task.Position.X != 50 || task.Position.Y != 50 {
		t.Errorf("Position = %+v, want (50, 50)", task.Position)
	}
	if len(task.Subtasks) == 0 {
		t.Error("new task should have templated subtasks")
	}
}

func TestGenerateSubtasks(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "write keyword",
			title: "Write history essay",
			want:  []string{"Research and outline", "Write first draft", "Revise and edit"},
		},
		{
			name:  "essay keyword",
			title: "Essay on biology",
			want:  []string{"Research and outline", "Write first draft", "Revise and edit"},
		},
		{
			name:  "study keyword",
			title: "Study for midterm",
			want:  []string{"Review materials", "Make notes/flashcards", "Practice problems"},
		},
		{
			name:  "quiz keyword",
			title: "Prep for chemistry quiz",
			want:  []string{"Review materials", "Make notes/flashcards", "Practice problems"},
		},
		{
			name:  "read keyword",
			title: "Read chapter 4",
			want:  []string{"Read the material", "Take notes", "Summarize key points"},
		},
		{
			name:  "assignment keyword",
			title: "Math assignment 3",
			want:  []string{"Review instructions", "Complete the work", "Check and submit"},
		},
		{
			name:  "homework keyword",
			title: "Physics homework",
			want:  []string{"Review instructions", "Complete the work", "Check and submit"},
		},
		{
			name:  "no keyword falls back",
			title: "Clean my desk",
			want:  []string{"Start the task", "Complete the task"},
		},
		{
			name:  "case insensitive",
			title: "WRITE THE REPORT",
			want:  []string{"Research and outline", "Write first draft", "Revise and edit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := GenerateSubtasks(tt.title)
			if len(subs) != len(tt.want) {
				t.Fatalf("got %d subtasks, want %d", len(subs), len(tt.want))
			}
			for i, sub := range subs {
				if sub.Title != tt.want[i] {
					t.Errorf("subtask[%d].Title = %q, want %q", i, sub.Title, tt.want[i])
				}
				if sub.Completed {
					t.Errorf("subtask[%d] should start incomplete", i)
				}
				if sub.ID == "" {
					t.Errorf("subtask[%d] should have an ID", i)
				}
			}
		})
	}
}

func TestGenerateSubtasksUniqueIDs(t *testing.T) {
	subs := GenerateSubtasks("Write essay")
	seen := make(map[string]bool)
	for _, sub := range subs {
		if seen[sub.ID] {
			t.Fatalf("duplicate subtask ID %q", sub.ID)
		}
		seen[sub.ID] = true
	}
}

func TestProgress(t *testing.T) {
	task := Task{
		Subtasks: []Subtask{
			{ID: "a", Completed: true},
			{ID: "b", Completed: false},
			{ID: "c", Completed: true},
		},
	}

	done, total := task.Progress()
	if done != 2 || total != 3 {
		t.Errorf("Progress() = (%d, %d), want (2, 3)", done, total)
	}
}

func TestCloneIsDeep(t *testing.T) {
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	ord := 3
	orig := Task{
		ID:              "t1",
		Title:           "Task",
		Deadline:        &deadline,
		Position:        &Position{X: 10, Y: 20},
		OrderInSequence: &ord,
		Subtasks:        []Subtask{{ID: "a", Title: "one"}},
	}

	clone := orig.Clone()
	clone.Subtasks[0].Completed = true
	*clone.Position = Position{X: 99, Y: 99}
	*clone.Deadline = deadline.Add(time.Hour)
	*clone.OrderInSequence = 9

	if orig.Subtasks[0].Completed {
		t.Error("clone shares subtask slice with original")
	}
	if orig.Position.X != 10 {
		t.Error("clone shares position pointer with original")
	}
	if !orig.Deadline.Equal(deadline) {
		t.Error("clone shares deadline pointer with original")
	}
	if *orig.OrderInSequence != 3 {
		t.Error("clone shares order pointer with original")
	}
}

func TestSourceIsValid(t *testing.T) {
	for _, s := range []Source{SourceManual, SourceGmail, SourceCanvas} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Source("discord").IsValid() {
		t.Error("unknown source should be invalid")
	}
}
