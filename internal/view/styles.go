package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the text renderer and the interactive UI
type Styles struct {
	Title       lipgloss.Style
	Position    lipgloss.Style
	Text        lipgloss.Style
	Completed   lipgloss.Style
	Time        lipgloss.Style
	ID          lipgloss.Style
	Counter     lipgloss.Style
	Placeholder lipgloss.Style
	Feedback    lipgloss.Style
	Cursor      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles returns coloured styles, or unstyled ones when color is false
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Position: plain, Text: plain, Completed: plain, Time: plain,
			ID: plain, Counter: plain, Placeholder: plain, Feedback: plain, Cursor: plain, Help: plain,
		}
	}
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Text:        lipgloss.NewStyle(),
		Completed:   lipgloss.NewStyle().Strikethrough(true).Faint(true),
		Time:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ID:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Counter:     lipgloss.NewStyle().Bold(true),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Feedback:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Checkbox returns the status marker for a task
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// ItemLine renders one task row without a cursor
func (s Styles) ItemLine(item Item, showIDs bool) string {
	text := s.Text.Render(item.Text)
	if item.Completed {
		text = s.Completed.Render(item.Text)
	}
	line := s.Position.Render(fmt.Sprintf("%3d.", item.Position)) + " " + Checkbox(item.Completed) + " " + text +
		"  " + s.Time.Render("("+item.TimeLabel+")")
	if showIDs {
		line += "  " + s.ID.Render(item.ID)
	}
	return line
}

