package tui

import (
	"fmt"
	"strings"

	"github.com/ckarenz/bodybuddy/internal/tui/styles"
)

func (m Model) viewDaily() string {
	rows := m.dailyRows()
	if len(rows) == 0 {
		return styles.Muted.Render("No subtasks to pick from. Add a task first.")
	}

	var b strings.Builder
	b.WriteString(styles.Primary.Render(fmt.Sprintf("Today's picks: %d", m.deps.Selection.Count())))
	b.WriteString("\n\n")

	lastTask := ""
	for i, row := range rows {
		if row.taskTitle != lastTask {
			b.WriteString(styles.Subtitle.Render(row.taskTitle))
			b.WriteString("\n")
			lastTask = row.taskTitle
		}

		pick := " "
		if m.deps.Selection.Contains(row.subtask.ID) {
			pick = styles.Secondary.Render("★")
		}
		line := fmt.Sprintf("%s %s %s", pick, checkbox(row.subtask.Completed), row.subtask.Title)

		if i == m.dailyCursor {
			b.WriteString(styles.SelectedRow.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if selected := m.selectedRows(); len(selected) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Primary.Render("Lined up for today:"))
		b.WriteString("\n")
		for i, row := range selected {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, checkbox(row.subtask.Completed), row.subtask.Title))
		}
	}
	return b.String()
}
