package view

import (
	"fmt"

	"todo-list/internal/domain"
)

// Item is one rendered task
type Item struct {
	Position  int
	ID        string
	Text      string
	TimeLabel string
	Completed bool
}

// ListView is the rendered state of the whole list
type ListView struct {
	Items       []Item
	Empty       bool
	Placeholder string
	Counter     string
}

// Render rebuilds the view model from list. An empty list renders the
// placeholder and no items.
func Render(list domain.TaskList, catalog Catalog) ListView {
	v := ListView{
		Counter: catalog.Counter(list.Len()),
	}
	if list.IsEmpty() {
		v.Empty = true
		v.Placeholder = catalog.Placeholder
		return v
	}

	v.Items = make([]Item, len(list))
	for i, task := range list {
		v.Items[i] = Item{
			Position:  i + 1,
			ID:        task.ID,
			Text:      task.Text,
			TimeLabel: FormatTimeRange(task.TimeRange, catalog),
			Completed: task.Completed,
		}
	}
	return v
}

// FormatTimeRange describes a task's time window. A nil range is all day.
func FormatTimeRange(tr *domain.TimeRange, catalog Catalog) string {
	switch {
	case tr.HasStart() && tr.HasEnd():
		return fmt.Sprintf(catalog.RangeBoth, tr.Start, tr.End)
	case tr.HasStart():
		return fmt.Sprintf(catalog.RangeFrom, tr.Start)
	case tr.HasEnd():
		return fmt.Sprintf(catalog.RangeUntil, tr.End)
	default:
		return catalog.AllDay
	}
}
