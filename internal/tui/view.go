package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ckarenz/bodybuddy/internal/tui/styles"
)

// View renders the full screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting up..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.activeTab {
	case tabTasks:
		b.WriteString(m.viewTasks())
	case tabMatrix:
		b.WriteString(m.viewMatrix())
	case tabDaily:
		b.WriteString(m.viewDaily())
	case tabSession:
		b.WriteString(m.viewSession())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewHeader() string {
	title := styles.Title.Render("BodyBuddy")
	greeting := m.greeting()
	if greeting == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", styles.Subtitle.Render(greeting))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if i == m.activeTab {
			tabs = append(tabs, styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.errorMsg != "" {
		return styles.ErrorBar.Render("! " + m.errorMsg)
	}
	if m.statusMsg != "" {
		return styles.StatusBar.Render(m.statusMsg)
	}
	return ""
}

// progressSlices renders subtask progress as filled and empty slices,
// the terminal stand-in for the pizza chart.
func progressSlices(done, total int) string {
	if total == 0 {
		return ""
	}
	return strings.Repeat("●", done) + strings.Repeat("○", total-done)
}

// helpEntry is a key/action pair for the help bar.
type helpEntry struct {
	key    string
	action string
}

func (m Model) viewHelp() string {
	common := []helpEntry{
		{"tab", "switch"},
		{"?", "help"},
		{"q", "quit"},
	}

	var entries []helpEntry
	switch m.activeTab {
	case tabTasks:
		entries = []helpEntry{
			{"j/k", "move"},
			{"enter", "expand"},
			{"a", "add"},
			{"d", "delete"},
			{"r", "sync"},
		}
	case tabMatrix:
		if m.dragging {
			entries = []helpEntry{
				{"arrows", "move task"},
				{"g", "drop"},
			}
		} else {
			entries = []helpEntry{
				{"j/k", "move"},
				{"g", "grab"},
			}
		}
	case tabDaily:
		entries = []helpEntry{
			{"j/k", "move"},
			{"space", "pick"},
			{"x", "check off"},
			{"s", "start session"},
		}
	case tabSession:
		switch m.stage {
		case stageRunning:
			entries = []helpEntry{
				{"p", "pause"},
				{"c", "chat"},
				{"e", "done"},
				{"x", "give up"},
			}
		case stageSummary:
			entries = []helpEntry{{"enter", "close"}}
		default:
			entries = []helpEntry{{"s on Daily", "start"}}
		}
	}

	if !m.showHelp {
		entries = nil
	}
	entries = append(entries, common...)

	var parts []string
	for _, e := range entries {
		parts = append(parts, styles.HelpKey.Render(e.key)+" "+e.action)
	}
	return styles.HelpBar.Render(strings.Join(parts, "  •  "))
}
