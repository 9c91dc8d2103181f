package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ckarenz/bodybuddy/internal/api"
	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/daily"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/ckarenz/bodybuddy/internal/session"
	"github.com/ckarenz/bodybuddy/internal/task"
)

// Tabs in display order.
const (
	tabTasks = iota
	tabMatrix
	tabDaily
	tabSession
	tabCount
)

var tabNames = [tabCount]string{"Tasks", "Matrix", "Daily", "Session"}

// sessionStage tracks where the session tab is in its flow.
type sessionStage int

const (
	stageIdle sessionStage = iota
	stageRunning
	stageTeachback
	stageSummary
)

// Deps carries everything the TUI works against.
type Deps struct {
	Config    config.Config
	Tasks     *task.Store
	Selection *daily.Store
	Session   *session.Session
	Chat      *bridge.Chat
	Speaker   *bridge.Speaker
	Generator *persona.Generator
	Client    *api.Client
	Logger    *logging.Logger
	Username  string
}

// Model holds the TUI application state.
type Model struct {
	deps Deps

	// UI state
	activeTab int
	width     int
	height    int
	ready     bool
	quitting  bool
	showHelp  bool

	// Status line
	statusMsg string
	errorMsg  string

	// Tasks tab
	taskCursor int
	expanded   map[string]bool
	addingTask bool
	taskInput  textinput.Model

	// Matrix tab
	matrixCursor int
	dragging     bool

	// Daily tab
	dailyCursor int

	// Session tab
	stage      sessionStage
	summary    session.Summary
	chatOpen   bool
	chatInput  textinput.Model
	teachInput textinput.Model
	buddyLine  string
	tickCount  int
}

// NewModel creates the initial TUI model.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = logging.NopLogger()
	}

	taskInput := textinput.New()
	taskInput.Placeholder = "Task title (keywords like essay/study/read pick subtask templates)"
	taskInput.CharLimit = 120
	taskInput.Width = 50

	chatInput := textinput.New()
	chatInput.Placeholder = "Say something to your buddy"
	chatInput.CharLimit = 240
	chatInput.Width = 50

	teachInput := textinput.New()
	teachInput.Placeholder = "What did you learn? (empty skips the note)"
	teachInput.CharLimit = 400
	teachInput.Width = 60

	return Model{
		deps:       deps,
		expanded:   make(map[string]bool),
		taskInput:  taskInput,
		chatInput:  chatInput,
		teachInput: teachInput,
	}
}

// greeting builds the header salutation.
func (m Model) greeting() string {
	if !m.deps.Config.TUI.ShowGreeting {
		return ""
	}
	name := m.deps.Username
	if name == "" {
		name = "friend"
	}
	return persona.Greeting(time.Now().Hour()) + ", " + name + "!"
}

// typing reports whether a text input currently owns the keyboard.
func (m Model) typing() bool {
	return m.addingTask || m.chatOpen || m.stage == stageTeachback
}

// currentTask returns the task under the tasks tab cursor.
func (m Model) currentTask() (task.Task, bool) {
	tasks := m.deps.Tasks.List()
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.taskCursor], true
}

// matrixTask returns the task under the matrix cursor.
func (m Model) matrixTask() (task.Task, bool) {
	tasks := m.deps.Tasks.List()
	if m.matrixCursor < 0 || m.matrixCursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.matrixCursor], true
}

// dailyRow is one selectable subtask line on the daily tab.
type dailyRow struct {
	taskID    string
	taskTitle string
	subtask   task.Subtask
}

// dailyRows flattens every subtask in task order.
func (m Model) dailyRows() []dailyRow {
	var rows []dailyRow
	for _, t := range m.deps.Tasks.List() {
		for _, sub := range t.Subtasks {
			rows = append(rows, dailyRow{taskID: t.ID, taskTitle: t.Title, subtask: sub})
		}
	}
	return rows
}

// selectedRows returns the daily rows currently in today's selection,
// in pick order.
func (m Model) selectedRows() []dailyRow {
	byID := make(map[string]dailyRow)
	for _, row := range m.dailyRows() {
		byID[row.subtask.ID] = row
	}

	var rows []dailyRow
	for _, id := range m.deps.Selection.IDs() {
		if row, ok := byID[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
