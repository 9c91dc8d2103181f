package tui

import (
	"fmt"
	"strings"

	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/pomodoro"
	"github.com/ckarenz/bodybuddy/internal/tui/styles"
)

func (m Model) viewSession() string {
	switch m.stage {
	case stageRunning:
		return m.viewRunningSession()
	case stageTeachback:
		return m.viewTeachback()
	case stageSummary:
		return m.viewSummary()
	default:
		return styles.Muted.Render("No session running. Pick a subtask on the Daily tab and press s.")
	}
}

func (m Model) viewRunningSession() string {
	var b strings.Builder
	timer := m.deps.Session.Timer()

	phase := "Focus"
	timerStyle := styles.TimerStudy
	if timer.Phase() == pomodoro.PhaseBreak {
		phase = "Break"
		timerStyle = styles.TimerBreak
	}

	b.WriteString(styles.Primary.Render(m.deps.Session.TaskTitle()))
	b.WriteString("  ")
	b.WriteString(m.deps.Session.SubtaskTitle())
	if parent, _, ok := m.deps.Tasks.FindSubtask(m.deps.Session.SubtaskID()); ok {
		done, total := parent.Progress()
		b.WriteString("  " + styles.Muted.Render(progressSlices(done, total)))
	}
	b.WriteString("\n\n")

	b.WriteString(timerStyle.Render(fmt.Sprintf("%s  %s", phase, timer.Display())))
	if !timer.Running() {
		b.WriteString("  " + styles.Warning.Render("(paused)"))
	}
	b.WriteString("\n\n")

	if m.buddyLine != "" {
		b.WriteString(styles.ChatBuddy.Render("buddy: " + m.buddyLine))
		b.WriteString("\n")
	}

	if m.chatOpen {
		b.WriteString("\n")
		b.WriteString(m.viewChat())
	}
	return b.String()
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(styles.Primary.Render("Chat"))
	b.WriteString("\n")

	transcript := m.deps.Chat.Transcript()
	start := 0
	if len(transcript) > 8 {
		start = len(transcript) - 8
	}
	for _, msg := range transcript[start:] {
		style := styles.ChatBuddy
		label := "buddy"
		if msg.From == bridge.SenderUser {
			style = styles.ChatUser
			label = "you"
		}
		b.WriteString(style.Render(label+": ") + msg.Text + "\n")
	}

	b.WriteString(m.chatInput.View())
	return styles.ContentBox.Render(b.String())
}

func (m Model) viewTeachback() string {
	var b strings.Builder
	b.WriteString(styles.Primary.Render("Teach it back"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Explain what you just worked on, like you would to a friend."))
	b.WriteString("\n\n")
	b.WriteString(m.teachInput.View())
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder
	s := m.summary

	b.WriteString(styles.Title.Render(s.Feedback.Title))
	b.WriteString("\n")
	b.WriteString(s.Feedback.Message)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Today: %d of %d picked subtasks done in %d minutes.\n",
		s.CompletedCount, s.TotalCount, s.DurationMinutes))
	if s.Advice != "" {
		b.WriteString("\n")
		b.WriteString(styles.ChatBuddy.Render(s.Advice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Press enter to close."))
	return styles.ContentBox.Render(b.String())
}
