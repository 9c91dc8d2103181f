package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/task"
)

// tickMsg drives the one second timer cadence.
type tickMsg time.Time

// tasksSyncedMsg reports a backend task fetch.
type tasksSyncedMsg struct {
	tasks []task.Task
	err   error
}

// chatReplyMsg carries the buddy's answer to a chat message.
type chatReplyMsg struct {
	msg bridge.Message
}

// historyLoadedMsg signals that the backend chat history was pulled
// into the bridge transcript.
type historyLoadedMsg struct{}

// errMsg wraps an error for the status line.
type errMsg struct {
	err error
}

// tick returns a command that sends a tickMsg after one second.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// syncTasks fetches backend tasks into the local store.
func (m Model) syncTasks() tea.Cmd {
	client := m.deps.Client
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		tasks, err := client.ListTasks(ctx)
		return tasksSyncedMsg{tasks: tasks, err: err}
	}
}

// sendChat forwards a chat line to the bridge. The bridge never fails;
// a backend outage comes back as a local persona answer.
func (m Model) sendChat(text string) tea.Cmd {
	chat := m.deps.Chat
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return chatReplyMsg{msg: chat.Send(ctx, text)}
	}
}

// loadHistory pulls the backend transcript into the chat bridge,
// best-effort.
func (m Model) loadHistory() tea.Cmd {
	chat := m.deps.Chat
	if chat == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		chat.LoadHistory(ctx)
		return historyLoadedMsg{}
	}
}

// speak voices a line through the speaker, best-effort.
func (m Model) speak(text string) tea.Cmd {
	speaker := m.deps.Speaker
	if speaker == nil || !speaker.Enabled() {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		speaker.Say(ctx, text)
		return nil
	}
}
