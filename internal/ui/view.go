package ui

import (
	"strings"
)

const shakeOffset = "  "

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.catalog.Title))
	b.WriteString("\n\n")

	margin := ""
	if m.shaking {
		margin = shakeOffset
	}
	b.WriteString(margin + m.inputs[focusText].View() + "\n")
	b.WriteString(margin + m.inputs[focusStart].View() + "  " + m.inputs[focusEnd].View() + "\n")
	if m.feedback != "" {
		b.WriteString(m.styles.Feedback.Render(m.feedback) + "\n")
	}
	b.WriteString("\n")

	list := m.rendered
	if list.Empty {
		b.WriteString(m.styles.Placeholder.Render(list.Placeholder) + "\n")
	}
	for i, item := range list.Items {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = m.styles.Cursor.Render("> ")
		}
		b.WriteString(marker + m.styles.ItemLine(item, m.showIDs) + "\n")
	}

	b.WriteString("\n" + m.styles.Counter.Render(list.Counter) + "\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(m.styles.Help.Render(m.catalog.Help))
	return b.String()
}
