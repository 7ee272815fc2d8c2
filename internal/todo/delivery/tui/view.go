package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-sync/internal/model"
	"todo-sync/internal/todo"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)
	m.writeForm(&b)
	m.writeList(&b)
	writeFooter(&b, m.focus)
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Todo List"
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeForm(b *strings.Builder) {
	b.WriteString(headerStyle.Render("New task") + "\n\n")
	b.WriteString(formLine("What are you going to do?", m.snap.DraftTitle, "Task title", m.focus == focusTitle))
	b.WriteString(formLine("Duration:", m.snap.DraftTime, "Estimated time (hours)", m.focus == focusTime))
	b.WriteString("\n")
}

func formLine(label, value, placeholder string, focused bool) string {
	prefix := "  "
	shown := value
	if shown == "" {
		shown = labelStyle.Render(placeholder)
	}
	if focused {
		prefix = focusedStyle.Render("> ")
		shown += "_"
	}
	return fmt.Sprintf("%s%s %s\n", prefix, labelStyle.Render(label), shown)
}

func (m *Model) writeList(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Tasks") + "\n\n")

	if m.snap.Loading {
		b.WriteString("  Loading...\n\n")
		return
	}
	if len(m.snap.Items) == 0 {
		b.WriteString("  No tasks!\n\n")
		return
	}

	for i, it := range m.snap.Items {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = focusedStyle.Render("> ")
		}
		b.WriteString(cursor + formatItem(it) + "\n")
	}
	b.WriteString("\n")
}

func formatItem(it todo.Item) string {
	mark := "[ ]"
	switch {
	case it.IsPending():
		mark = "[~]"
	case it.Done():
		mark = "[x]"
	}

	title := it.Task.Title
	if it.Done() {
		title = doneStyle.Render(title)
	}
	return fmt.Sprintf("%s %s  %s", mark, title, labelStyle.Render("Duration: "+durationLabel(it.Task.Time)))
}

// durationLabel renders the estimate in hours, plural only for numbers above one.
func durationLabel(e model.Estimate) string {
	if e.Plural() {
		return e.String() + " hours"
	}
	return e.String() + " hour"
}

func writeFooter(b *strings.Builder, f focus) {
	var help string
	if f == focusList {
		help = "j/k move | space toggle | x delete | r reload | n new | tab switch | q quit"
	} else {
		help = "type to edit | enter add | tab switch | esc list | ctrl+c quit"
	}
	b.WriteString(footerStyle.Render(help) + "\n")
}
