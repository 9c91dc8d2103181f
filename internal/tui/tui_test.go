package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/daily"
	"github.com/ckarenz/bodybuddy/internal/notes"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/ckarenz/bodybuddy/internal/session"
	"github.com/ckarenz/bodybuddy/internal/storage"
	"github.com/ckarenz/bodybuddy/internal/task"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	tasks := task.NewStore(nil)
	essay := task.New("Write essay")
	if err := tasks.Add(essay); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	selection := daily.NewStore(storage.NewMemoryBackend(), nil)
	noteLog := notes.NewStore(storage.NewMemoryBackend(), nil)
	gen := persona.NewGenerator(persona.Gentle, persona.ToneAriana, nil)

	sess := session.New(session.Config{
		Tasks:     tasks,
		Selection: selection,
		Notes:     noteLog,
		Generator: gen,
	})

	deps := Deps{
		Config:    *config.Default(),
		Tasks:     tasks,
		Selection: selection,
		Session:   sess,
		Chat:      bridge.NewChat(nil, gen, "sam", nil),
		Generator: gen,
		Username:  "sam",
	}

	m := NewModel(deps)
	m.ready = true
	m.width = 100
	m.height = 40
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("tab"))
	if m.activeTab != tabMatrix {
		t.Errorf("activeTab = %d, want matrix", m.activeTab)
	}

	m = update(t, m, key("4"))
	if m.activeTab != tabSession {
		t.Errorf("activeTab = %d, want session", m.activeTab)
	}

	m = update(t, m, key("1"))
	if m.activeTab != tabTasks {
		t.Errorf("activeTab = %d, want tasks", m.activeTab)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).quitting {
		t.Error("quitting should be set")
	}
}

func TestAddTaskFlow(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("a"))
	if !m.addingTask {
		t.Fatal("a should open the task input")
	}
	if !m.typing() {
		t.Fatal("typing() should be true while adding")
	}

	m = update(t, m, key("Study biology"))
	m = update(t, m, key("enter"))

	if m.addingTask {
		t.Error("enter should close the task input")
	}
	if m.deps.Tasks.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.deps.Tasks.Len())
	}
	if !strings.Contains(m.statusMsg, "Study biology") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestAddTaskEscCancels(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("a"))
	m = update(t, m, key("Half typed"))
	m = update(t, m, key("esc"))

	if m.addingTask {
		t.Error("esc should cancel the input")
	}
	if m.deps.Tasks.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.deps.Tasks.Len())
	}
}

func TestTypingDoesNotQuit(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("a"))
	m = update(t, m, key("q"))

	if m.quitting {
		t.Error("q inside a text input must not quit")
	}
	if got := m.taskInput.Value(); got != "q" {
		t.Errorf("input value = %q, want q", got)
	}
}

func TestDailyToggleAndStart(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily

	m = update(t, m, key(" "))
	if m.deps.Selection.Count() != 1 {
		t.Fatalf("Count = %d, want 1", m.deps.Selection.Count())
	}

	m = update(t, m, key("s"))
	if m.activeTab != tabSession {
		t.Errorf("starting a session should jump to the session tab")
	}
	if m.stage != stageRunning {
		t.Errorf("stage = %d, want running", m.stage)
	}
	if !m.deps.Session.Active() {
		t.Error("session should be active")
	}
	if m.buddyLine == "" {
		t.Error("starting should produce an encouragement line")
	}
}

func TestDailyCheckOff(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily

	m = update(t, m, key("x"))

	rows := m.dailyRows()
	if len(rows) == 0 || !rows[0].subtask.Completed {
		t.Error("x should mark the subtask under the cursor complete")
	}
}

func TestSessionEndFlow(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily
	m = update(t, m, key(" "))
	m = update(t, m, key("s"))

	m = update(t, m, key("e"))
	if m.stage != stageTeachback {
		t.Fatalf("stage = %d, want teachback", m.stage)
	}
	if m.deps.Session.Active() {
		t.Error("session should be over")
	}

	m = update(t, m, key("I explained the outline"))
	m = update(t, m, key("enter"))
	if m.stage != stageSummary {
		t.Fatalf("stage = %d, want summary", m.stage)
	}
	if m.deps.Session == nil {
		t.Fatal("session dep lost")
	}
	if got := m.summary.Feedback.Title; got == "" {
		t.Error("summary should carry feedback")
	}

	m = update(t, m, key("enter"))
	if m.stage != stageIdle {
		t.Errorf("stage = %d, want idle", m.stage)
	}
}

func TestTeachbackEscSkipsNote(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily
	m = update(t, m, key(" "))
	m = update(t, m, key("s"))
	m = update(t, m, key("x"))

	if m.stage != stageTeachback {
		t.Fatalf("stage = %d, want teachback", m.stage)
	}
	m = update(t, m, key("esc"))
	if m.stage != stageSummary {
		t.Errorf("stage = %d, want summary", m.stage)
	}
}

func TestMatrixDrag(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabMatrix

	m = update(t, m, key("g"))
	if !m.dragging {
		t.Fatal("g should grab the task")
	}

	m = update(t, m, key("h"))
	m = update(t, m, key("g"))
	if m.dragging {
		t.Error("g should drop the task")
	}

	tk := m.deps.Tasks.List()[0]
	if tk.Position == nil || tk.Position.X != 45 {
		t.Errorf("Position = %+v, want X=45", tk.Position)
	}
	if !tk.Manual {
		t.Error("a drag should pin the task")
	}
}

func TestTickDuringSession(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily
	m = update(t, m, key(" "))
	m = update(t, m, key("s"))

	for i := 0; i < 5; i++ {
		m = update(t, m, tickMsg(time.Now()))
	}

	timer := m.deps.Session.Timer()
	mins, secs := timer.Remaining()
	if mins*60+secs >= timer.StudyMinutes()*60 {
		t.Errorf("timer did not advance: %dm%02ds", mins, secs)
	}
}

func TestViewsRenderAllTabs(t *testing.T) {
	m := newTestModel(t)

	for tab := 0; tab < tabCount; tab++ {
		m.activeTab = tab
		if out := m.View(); out == "" {
			t.Errorf("tab %d rendered empty", tab)
		}
	}
}

func TestViewSessionStages(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily
	m = update(t, m, key(" "))
	m = update(t, m, key("s"))

	if out := m.View(); !strings.Contains(out, "Write essay") {
		t.Error("running session view should show the task title")
	}

	m = update(t, m, key("e"))
	if out := m.View(); !strings.Contains(out, "Teach it back") {
		t.Error("teachback view should show the prompt")
	}

	m = update(t, m, key("enter"))
	if out := m.View(); !strings.Contains(out, m.summary.Feedback.Title) {
		t.Error("summary view should show the feedback title")
	}
}

func TestChatOverlay(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabDaily
	m = update(t, m, key(" "))
	m = update(t, m, key("s"))

	next, cmd := m.Update(key("c"))
	m = next.(Model)
	if !m.chatOpen {
		t.Fatal("c should open the chat overlay")
	}
	if cmd == nil {
		t.Fatal("opening chat with an empty transcript should load history")
	}

	m = update(t, m, historyLoadedMsg{})
	if len(m.deps.Chat.Transcript()) != 1 {
		t.Fatalf("transcript has %d entries, want 1 greeting", len(m.deps.Chat.Transcript()))
	}

	m = update(t, m, chatReplyMsg{msg: bridge.Message{From: bridge.SenderBuddy, Text: "keep going"}})
	if m.buddyLine != "keep going" {
		t.Errorf("buddyLine = %q", m.buddyLine)
	}

	m = update(t, m, key("esc"))
	if m.chatOpen {
		t.Error("esc should close the chat overlay")
	}
}

func TestSyncedTasksReplaceStore(t *testing.T) {
	m := newTestModel(t)

	incoming := []task.Task{task.New("From backend")}
	m = update(t, m, tasksSyncedMsg{tasks: incoming})

	if m.deps.Tasks.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.deps.Tasks.Len())
	}
	if got := m.deps.Tasks.List()[0].Title; got != "From backend" {
		t.Errorf("Title = %q", got)
	}
}

func TestSyncErrorKeepsLocalTasks(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tasksSyncedMsg{err: errTest})

	if m.deps.Tasks.Len() != 1 {
		t.Errorf("local tasks should survive a failed sync")
	}
	if m.errorMsg == "" {
		t.Error("failed sync should surface on the error line")
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }
