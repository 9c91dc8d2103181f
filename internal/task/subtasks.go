package task

import (
	"strings"

	"github.com/google/uuid"
)

// subtaskTemplate maps title keywords to a canned breakdown.
type subtaskTemplate struct {
	keywords []string
	steps    []string
}

// Templates are checked in order; the first keyword hit wins.
var subtaskTemplates = []subtaskTemplate{
	{
		keywords: []string{"write", "essay"},
		steps:    []string{"Research and outline", "Write first draft", "Revise and edit"},
	},
	{
		keywords: []string{"study", "quiz"},
		steps:    []string{"Review materials", "Make notes/flashcards", "Practice problems"},
	},
	{
		keywords: []string{"read"},
		steps:    []string{"Read the material", "Take notes", "Summarize key points"},
	},
	{
		keywords: []string{"assignment", "homework"},
		steps:    []string{"Review instructions", "Complete the work", "Check and submit"},
	},
}

// defaultSteps is the fallback breakdown when no keyword matches.
var defaultSteps = []string{"Start the task", "Complete the task"}

// GenerateSubtasks builds a starter subtask list from keywords in the
// task title. Every generated subtask starts incomplete.
func GenerateSubtasks(title string) []Subtask {
	lower := strings.ToLower(title)

	steps := defaultSteps
	for _, tmpl := range subtaskTemplates {
		if containsAny(lower, tmpl.keywords) {
			steps = tmpl.steps
			break
		}
	}

	subtasks := make([]Subtask, 0, len(steps))
	for _, step := range steps {
		subtasks = append(subtasks, Subtask{
			ID:    uuid.NewString(),
			Title: step,
		})
	}
	return subtasks
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
