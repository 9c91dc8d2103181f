package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ckarenz/bodybuddy/internal/tui/styles"
)

func (m Model) viewTasks() string {
	var b strings.Builder

	if m.addingTask {
		b.WriteString(styles.Primary.Render("New task"))
		b.WriteString("\n")
		b.WriteString(m.taskInput.View())
		b.WriteString("\n\n")
	}

	tasks := m.deps.Tasks.List()
	if len(tasks) == 0 {
		b.WriteString(styles.Muted.Render("No tasks yet. Press a to add one."))
		return b.String()
	}

	for i, t := range tasks {
		done, total := t.Progress()
		line := fmt.Sprintf("%s %s  %s", expandMarker(m.expanded[t.ID]), t.Title,
			styles.Muted.Render(fmt.Sprintf("[%d/%d]", done, total)))
		if t.Deadline != nil {
			line += "  " + deadlineLabel(*t.Deadline)
		}
		if t.Source.String() != "manual" {
			line += "  " + styles.Subtitle.Render(t.Source.String())
		}

		if i == m.taskCursor {
			b.WriteString(styles.SelectedRow.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")

		if m.expanded[t.ID] {
			if t.Description != "" {
				b.WriteString(styles.Muted.Render("      " + t.Description))
				b.WriteString("\n")
			}
			for _, sub := range t.Subtasks {
				b.WriteString(fmt.Sprintf("      %s %s\n", checkbox(sub.Completed), sub.Title))
			}
		}
	}
	return b.String()
}

func expandMarker(open bool) string {
	if open {
		return "▾"
	}
	return "▸"
}

func checkbox(done bool) string {
	if done {
		return styles.Secondary.Render("[x]")
	}
	return "[ ]"
}

// deadlineLabel renders a deadline relative to now, colored by how
// close it is.
func deadlineLabel(deadline time.Time) string {
	days := int(time.Until(deadline).Hours() / 24)
	label := fmt.Sprintf("due %s", deadline.Format("Jan 2"))
	switch {
	case days < 0:
		return styles.Error.Render(label + " (overdue)")
	case days <= 2:
		return styles.Warning.Render(label)
	default:
		return styles.Muted.Render(label)
	}
}
