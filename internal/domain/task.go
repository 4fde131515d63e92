package domain

import "time"

// Task represents a to-do entry in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt int64 // milliseconds since the Unix epoch
	TimeRange *TimeRange
}

// NewTask creates an open Task created at the given time.
func NewTask(id, text string, createdAt time.Time, timeRange *TimeRange) Task {
	return Task{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt.UnixMilli(),
		TimeRange: timeRange.Clone(),
	}
}

// Toggled returns a copy of the task with Completed flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	t.TimeRange = t.TimeRange.Clone()
	return t
}

// CreatedTime returns CreatedAt as a time.Time in the local zone.
func (t Task) CreatedTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
