package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ckarenz/bodybuddy/internal/priority"
	"github.com/ckarenz/bodybuddy/internal/task"
	"github.com/ckarenz/bodybuddy/internal/tui/styles"
)

// quadrantOrder is the display order: top-left to bottom-right.
var quadrantOrder = []priority.Quadrant{
	priority.DoFirst,
	priority.Schedule,
	priority.Delegate,
	priority.Eliminate,
}

func (m Model) viewMatrix() string {
	tasks := m.deps.Tasks.List()

	byQuadrant := make(map[priority.Quadrant][]task.Task)
	for _, t := range tasks {
		x, y := 50.0, 50.0
		if t.Position != nil {
			x, y = t.Position.X, t.Position.Y
		}
		q := priority.QuadrantFor(x, y)
		byQuadrant[q] = append(byQuadrant[q], t)
	}

	var cells []string
	for _, q := range quadrantOrder {
		cells = append(cells, m.renderQuadrant(q, byQuadrant[q]))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], " ", cells[3])
	grid := lipgloss.JoinVertical(lipgloss.Left, top, bottom)

	var b strings.Builder
	b.WriteString(grid)
	b.WriteString("\n")

	if t, ok := m.matrixTask(); ok {
		x, y := 50.0, 50.0
		if t.Position != nil {
			x, y = t.Position.X, t.Position.Y
		}
		detail := fmt.Sprintf("%s  urgency %.0f  importance %.0f", t.Title, x, y)
		if t.Manual {
			detail += "  " + styles.Subtitle.Render("(pinned)")
		}
		if m.dragging {
			detail = styles.Warning.Render("moving: ") + detail
		}
		b.WriteString(detail)
	}
	return b.String()
}

func (m Model) renderQuadrant(q priority.Quadrant, tasks []task.Task) string {
	color := styles.QuadrantColor(q.String())
	width := m.width/2 - 4
	if width < 24 {
		width = 24
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(q.String()))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(styles.Muted.Render("empty"))
	}
	for _, t := range tasks {
		marker := "  "
		if cur, ok := m.matrixTask(); ok && cur.ID == t.ID {
			marker = "> "
		}
		done, total := t.Progress()
		b.WriteString(marker + t.Title + " " + styles.Muted.Render(progressSlices(done, total)) + "\n")
	}

	return styles.ContentBox.
		BorderForeground(color).
		Width(width).
		Render(strings.TrimRight(b.String(), "\n"))
}
