package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-list/internal/domain"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()

	tests := []struct {
		name     string
		task     domain.Task
		expected TaskRecord
	}{
		{
			name:     "with range",
			task:     domain.Task{ID: "a", Text: "Stand-up", Completed: true, CreatedAt: 1700000000000, TimeRange: domain.NewTimeRange("09:00", "09:15")},
			expected: TaskRecord{ID: "a", Text: "Stand-up", Completed: true, CreatedAt: 1700000000000, TimeRange: &TimeRangeRecord{Start: "09:00", End: "09:15"}},
		},
		{
			name:     "empty range kept",
			task:     domain.Task{ID: "b", Text: "Read", TimeRange: domain.NewTimeRange("", "")},
			expected: TaskRecord{ID: "b", Text: "Read", TimeRange: &TimeRangeRecord{}},
		},
		{
			name:     "no range",
			task:     domain.Task{ID: "c", Text: "Old"},
			expected: TaskRecord{ID: "c", Text: "Old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.ToRecord(tt.task))
			assert.Equal(t, tt.task, mapper.FromRecord(tt.expected))
		})
	}
}

func TestTaskMapper_Slices(t *testing.T) {
	mapper := NewTaskMapper()
	list := domain.TaskList{
		{ID: "2", Text: "Task 2"},
		{ID: "1", Text: "Task 1", TimeRange: domain.NewTimeRange("", "17:00")},
	}

	records := mapper.ToRecords(list)
	assert.Len(t, records, 2)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, list, mapper.FromRecords(records))

	assert.NotNil(t, mapper.ToRecords(nil))
	assert.NotNil(t, mapper.FromRecords(nil))
}
