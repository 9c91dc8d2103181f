package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ckarenz/bodybuddy/internal/session"
	"github.com/ckarenz/bodybuddy/internal/task"
)

// recomputeEvery is how many ticks pass between urgency refreshes, so
// deadline drift shows up on the matrix without a restart.
const recomputeEvery = 60

// Init starts the tick loop and the initial backend sync.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.syncTasks())
}

// Update is the single message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case tasksSyncedMsg:
		if msg.err != nil {
			m.errorMsg = "task sync failed; working locally"
			m.deps.Logger.Warn("task sync failed", "error", msg.err)
			return m, nil
		}
		if len(msg.tasks) > 0 {
			m.deps.Tasks.Replace(msg.tasks)
			m.statusMsg = fmt.Sprintf("synced %d tasks", len(msg.tasks))
		}
		return m, nil

	case chatReplyMsg:
		m.buddyLine = msg.msg.Text
		return m, m.speak(msg.msg.Text)

	case historyLoadedMsg:
		// Seed the opener only when there was nothing to restore.
		if m.deps.Chat != nil && len(m.deps.Chat.Transcript()) == 0 {
			if greeting := m.greeting(); greeting != "" {
				m.deps.Chat.Greet(greeting)
			}
		}
		return m, nil

	case errMsg:
		m.errorMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick advances the clock-driven state: the focus session timer,
// the encouragement cadence and the periodic urgency refresh.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tick()}

	m.tickCount++
	if m.tickCount%recomputeEvery == 0 {
		m.deps.Tasks.Recompute()
	}

	if m.deps.Session != nil && m.deps.Session.Active() {
		for _, ev := range m.deps.Session.Tick() {
			m.buddyLine = ev.Text
			if cmd := m.speak(ev.Text); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing() {
		return m.handleTypingKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil
	case "1", "2", "3", "4":
		m.activeTab = int(msg.String()[0] - '1')
		return m, nil
	}

	switch m.activeTab {
	case tabTasks:
		return m.handleTasksKey(msg)
	case tabMatrix:
		return m.handleMatrixKey(msg)
	case tabDaily:
		return m.handleDailyKey(msg)
	case tabSession:
		return m.handleSessionKey(msg)
	}
	return m, nil
}

// handleTypingKey routes keys to whichever text input is active.
func (m Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.addingTask:
		switch msg.String() {
		case "esc":
			m.addingTask = false
			m.taskInput.Reset()
			return m, nil
		case "enter":
			title := m.taskInput.Value()
			m.addingTask = false
			m.taskInput.Reset()
			if title == "" {
				return m, nil
			}
			t := task.New(title)
			if err := m.deps.Tasks.Add(t); err != nil {
				m.errorMsg = err.Error()
				return m, nil
			}
			m.statusMsg = fmt.Sprintf("added %q with %d subtasks", title, len(t.Subtasks))
			m.errorMsg = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		return m, cmd

	case m.chatOpen:
		switch msg.String() {
		case "esc":
			m.chatOpen = false
			m.chatInput.Reset()
			return m, nil
		case "enter":
			text := m.chatInput.Value()
			m.chatInput.Reset()
			if text == "" {
				return m, nil
			}
			return m, m.sendChat(text)
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd

	case m.stage == stageTeachback:
		switch msg.String() {
		case "esc":
			m.teachInput.Reset()
			m.stage = stageSummary
			return m, nil
		case "enter":
			teachback := m.teachInput.Value()
			m.teachInput.Reset()
			m.stage = stageSummary
			if _, saved, err := m.deps.Session.SaveNote(teachback, ""); err != nil {
				m.errorMsg = err.Error()
			} else if saved {
				m.statusMsg = "session note saved"
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.teachInput, cmd = m.teachInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.deps.Tasks.List()

	switch msg.String() {
	case "up", "k":
		m.taskCursor = clampCursor(m.taskCursor-1, len(tasks))
	case "down", "j":
		m.taskCursor = clampCursor(m.taskCursor+1, len(tasks))
	case "enter":
		if t, ok := m.currentTask(); ok {
			m.expanded[t.ID] = !m.expanded[t.ID]
		}
	case "a":
		m.addingTask = true
		m.taskInput.Focus()
	case "d":
		if t, ok := m.currentTask(); ok {
			if err := m.deps.Tasks.Remove(t.ID); err != nil {
				m.errorMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("removed %q", t.Title)
				m.taskCursor = clampCursor(m.taskCursor, m.deps.Tasks.Len())
			}
		}
	case "r":
		m.statusMsg = "syncing tasks..."
		return m, m.syncTasks()
	}
	return m, nil
}

// dragStep is how far one keypress moves a grabbed task on the matrix.
const dragStep = 5

func (m Model) handleMatrixKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.deps.Tasks.List()

	if m.dragging {
		t, ok := m.matrixTask()
		if !ok {
			m.dragging = false
			return m, nil
		}
		x, y := 50.0, 50.0
		if t.Position != nil {
			x, y = t.Position.X, t.Position.Y
		}

		switch msg.String() {
		case "esc", "g", "enter":
			m.dragging = false
			m.statusMsg = fmt.Sprintf("%q pinned at (%.0f, %.0f)", t.Title, x, y)
			return m, nil
		case "left", "h":
			x -= dragStep
		case "right", "l":
			x += dragStep
		case "up", "k":
			y += dragStep
		case "down", "j":
			y -= dragStep
		default:
			return m, nil
		}

		if err := m.deps.Tasks.Drag(t.ID, x, y); err != nil {
			m.errorMsg = err.Error()
			m.dragging = false
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.matrixCursor = clampCursor(m.matrixCursor-1, len(tasks))
	case "down", "j":
		m.matrixCursor = clampCursor(m.matrixCursor+1, len(tasks))
	case "g":
		if _, ok := m.matrixTask(); ok {
			m.dragging = true
			m.statusMsg = "arrows move the task; g drops it"
		}
	}
	return m, nil
}

func (m Model) handleDailyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.dailyRows()

	switch msg.String() {
	case "up", "k":
		m.dailyCursor = clampCursor(m.dailyCursor-1, len(rows))
	case "down", "j":
		m.dailyCursor = clampCursor(m.dailyCursor+1, len(rows))
	case " ", "space":
		if m.dailyCursor < len(rows) {
			row := rows[m.dailyCursor]
			selected, err := m.deps.Selection.Toggle(row.subtask.ID)
			if err != nil {
				m.errorMsg = err.Error()
			} else if selected {
				m.statusMsg = fmt.Sprintf("picked %q for today", row.subtask.Title)
			} else {
				m.statusMsg = fmt.Sprintf("dropped %q from today", row.subtask.Title)
			}
		}
	case "x":
		if m.dailyCursor < len(rows) {
			row := rows[m.dailyCursor]
			completed, err := m.deps.Tasks.ToggleSubtask(row.taskID, row.subtask.ID)
			if err != nil {
				m.errorMsg = err.Error()
			} else if completed {
				m.statusMsg = fmt.Sprintf("checked off %q", row.subtask.Title)
			} else {
				m.statusMsg = fmt.Sprintf("reopened %q", row.subtask.Title)
			}
		}
	case "s", "enter":
		if m.dailyCursor < len(rows) {
			return m.startSession(rows[m.dailyCursor].subtask.ID)
		}
	}
	return m, nil
}

// startSession begins a focus session and jumps to the session tab.
func (m Model) startSession(subtaskID string) (tea.Model, tea.Cmd) {
	if err := m.deps.Session.Start(subtaskID); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}

	m.activeTab = tabSession
	m.stage = stageRunning
	m.errorMsg = ""
	m.buddyLine = m.deps.Generator.Encouragement()
	m.statusMsg = fmt.Sprintf("focusing on %q", m.deps.Session.SubtaskTitle())
	return m, m.speak(m.buddyLine)
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageRunning:
		switch msg.String() {
		case "p":
			timer := m.deps.Session.Timer()
			if timer.Running() {
				_ = m.deps.Session.Pause()
				m.statusMsg = "paused"
			} else {
				_ = m.deps.Session.Resume()
				m.statusMsg = "back at it"
			}
		case "c":
			m.chatOpen = true
			m.chatInput.Focus()
			if m.deps.Chat != nil && len(m.deps.Chat.Transcript()) == 0 {
				return m, m.loadHistory()
			}
		case "e":
			return m.endSession(true)
		case "x":
			return m.endSession(false)
		}

	case stageSummary:
		switch msg.String() {
		case "enter", "esc", " ":
			m.stage = stageIdle
			m.summary = session.Summary{}
		}
	}
	return m, nil
}

// endSession finishes the running session and moves to the teach-back
// prompt.
func (m Model) endSession(completed bool) (tea.Model, tea.Cmd) {
	summary, err := m.deps.Session.End(completed)
	if err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}

	m.summary = summary
	m.stage = stageTeachback
	m.teachInput.Focus()
	m.buddyLine = summary.Feedback.Title
	return m, m.speak(summary.Feedback.Message)
}
