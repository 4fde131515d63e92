package storage

import "todo-list/internal/domain"

// TaskRecord is the persisted form of a task. Field names are part of the
// stored format and must not change.
type TaskRecord struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	Completed bool             `json:"completed"`
	CreatedAt int64            `json:"createdAt"`
	TimeRange *TimeRangeRecord `json:"timeRange,omitempty"`
}

// TimeRangeRecord is the persisted form of a time range
type TimeRangeRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TaskMapper handles conversion between domain tasks and stored records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a TaskRecord.
func (m *TaskMapper) ToRecord(task domain.Task) TaskRecord {
	record := TaskRecord{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
	if task.TimeRange != nil {
		record.TimeRange = &TimeRangeRecord{Start: task.TimeRange.Start, End: task.TimeRange.End}
	}
	return record
}

// FromRecord converts a TaskRecord to a domain Task.
func (m *TaskMapper) FromRecord(record TaskRecord) domain.Task {
	task := domain.Task{
		ID:        record.ID,
		Text:      record.Text,
		Completed: record.Completed,
		CreatedAt: record.CreatedAt,
	}
	if record.TimeRange != nil {
		task.TimeRange = domain.NewTimeRange(record.TimeRange.Start, record.TimeRange.End)
	}
	return task
}

// ToRecords converts a task list to records. The result is never nil.
func (m *TaskMapper) ToRecords(list domain.TaskList) []TaskRecord {
	records := make([]TaskRecord, len(list))
	for i, task := range list {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecords converts records to a task list. The result is never nil.
func (m *TaskMapper) FromRecords(records []TaskRecord) domain.TaskList {
	list := make(domain.TaskList, len(records))
	for i, record := range records {
		list[i] = m.FromRecord(record)
	}
	return list
}
