package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
)

func TestTaskValidator_ValidateTaskText(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name      string
		text      string
		wantErr   bool
		wantType  ValidationErrorType
		wantField string
	}{
		{"valid text", "Buy milk", false, "", ""},
		{"padded text", "   Buy milk   ", false, "", ""},
		{"empty text", "", true, ErrorTypeRequired, FieldText},
		{"whitespace text", " \t\n ", true, ErrorTypeRequired, FieldText},
		{"too long", strings.Repeat("x", DefaultTextMaxLength+1), true, ErrorTypeInvalidLength, FieldText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTaskText(tt.text)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			ve, ok := AsValidationError(err)
			require.True(t, ok)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.wantType, ve.Errors[0].Type)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
		})
	}
}

func TestTaskValidator_ValidateTimeRange(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTimeRange("08:00", "09:00"))
	assert.NoError(t, tv.ValidateTimeRange("", ""))
	assert.NoError(t, tv.ValidateTimeRange("", "09:00"))

	err := tv.ValidateTimeRange("09:00", "08:00")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.True(t, ve.HasFieldError(FieldTimeRange))
	assert.Equal(t, MsgEndBeforeStart, ve.GetUserFriendlyMessage())

	err = tv.ValidateTimeRange("9am", "10:00")
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasFieldError(FieldStartTime))
	assert.False(t, ve.HasFieldError(FieldTimeRange))
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	tv := NewTaskValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, tv.ValidateTaskForCreation("Stand-up", "09:00", "09:15"))
	})

	t.Run("empty text short-circuits range check", func(t *testing.T) {
		ve, ok := AsValidationError(tv.ValidateTaskForCreation("  ", "10:00", "09:00"))
		require.True(t, ok)
		assert.True(t, ve.HasFieldError(FieldText))
		assert.False(t, ve.HasFieldError(FieldTimeRange))
	})

	t.Run("invalid range", func(t *testing.T) {
		ve, ok := AsValidationError(tv.ValidateTaskForCreation("Stand-up", "10:00", "09:00"))
		require.True(t, ok)
		assert.True(t, ve.HasFieldError(FieldTimeRange))
	})

	t.Run("over-long text short-circuits range check", func(t *testing.T) {
		ve, ok := AsValidationError(tv.ValidateTaskForCreation(strings.Repeat("x", DefaultTextMaxLength+1), "10:00", "09:00"))
		require.True(t, ok)
		require.Len(t, ve.Errors, 1)
		assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[0].Type)
	})
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTask(domain.Task{ID: "a", Text: "x"}))
	assert.NoError(t, tv.ValidateTask(domain.Task{ID: "a", Text: "x", TimeRange: domain.NewTimeRange("", "")}))
	// stored ranges are not re-checked for ordering
	assert.NoError(t, tv.ValidateTask(domain.Task{ID: "a", Text: "x", TimeRange: domain.NewTimeRange("10:00", "09:00")}))

	ve, ok := AsValidationError(tv.ValidateTask(domain.Task{Text: "x", TimeRange: domain.NewTimeRange("bad", "")}))
	require.True(t, ok)
	assert.True(t, ve.HasFieldError(FieldID))
	assert.True(t, ve.HasFieldError(FieldStartTime))
}

func TestTaskValidator_ValidateTaskList(t *testing.T) {
	tv := NewTaskValidator()

	valid := domain.TaskList{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}}
	assert.NoError(t, tv.ValidateTaskList(valid))
	assert.NoError(t, tv.ValidateTaskList(nil))

	dup := domain.TaskList{{ID: "a", Text: "one"}, {ID: "a", Text: "two"}}
	ve, ok := AsValidationError(tv.ValidateTaskList(dup))
	require.True(t, ok)
	assert.Equal(t, "id has invalid value: duplicate task id", ve.Errors[0].Message)

	blank := domain.TaskList{{ID: "a", Text: ""}}
	assert.Error(t, tv.ValidateTaskList(blank))
}
