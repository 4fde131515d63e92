package validation

import (
	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// MsgEndBeforeStart is the time-range failure message. Front ends localise it
// by matching on FieldTimeRange.
const MsgEndBeforeStart = "end time must be after start time"

const clockTimeFormat = "HH:MM"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskText validates the text of a new task
func (tv *TaskValidator) ValidateTaskText(text string) error {
	validationError := NewValidationError()
	tv.checkText(validationError, text)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTimeRange validates an optional start/end pair
func (tv *TaskValidator) ValidateTimeRange(start, end string) error {
	validationError := NewValidationError()
	tv.checkTimeRange(validationError, start, end)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates user input for a new task.
// Text is checked first; if it is rejected the range is not examined.
func (tv *TaskValidator) ValidateTaskForCreation(text, start, end string) error {
	if err := tv.ValidateTaskText(text); err != nil {
		return err
	}
	return tv.ValidateTimeRange(start, end)
}

// ValidateTask validates a domain.Task loaded from storage.
// Length limits are not enforced on stored tasks.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if task.ID == "" {
		validationError.AddRequiredError(FieldID)
	}
	if !tv.validator.IsNonEmptyString(task.Text) {
		validationError.AddRequiredError(FieldText)
	}
	if task.TimeRange != nil {
		if !tv.validator.IsValidClockTime(task.TimeRange.Start) {
			validationError.AddInvalidFormatError(FieldStartTime, task.TimeRange.Start, clockTimeFormat)
		}
		if !tv.validator.IsValidClockTime(task.TimeRange.End) {
			validationError.AddInvalidFormatError(FieldEndTime, task.TimeRange.End, clockTimeFormat)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskList validates every task and the uniqueness of ids.
func (tv *TaskValidator) ValidateTaskList(list domain.TaskList) error {
	validationError := NewValidationError()
	seen := make(map[string]bool, len(list))

	for _, task := range list {
		if err := tv.ValidateTask(task); err != nil {
			if taskErr, ok := err.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, taskErr.Errors...)
			}
			continue
		}
		if seen[task.ID] {
			validationError.AddInvalidValueError(FieldID, task.ID, "duplicate task id")
		}
		seen[task.ID] = true
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (tv *TaskValidator) checkText(validationError *ValidationError, text string) {
	trimmed := tv.validator.TrimAndValidateString(text)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(FieldText)
		return
	}
	if !tv.validator.IsValidTextLength(trimmed) {
		validationError.AddInvalidLengthError(FieldText, trimmed, tv.validator.TextMaxLength())
	}
}

func (tv *TaskValidator) checkTimeRange(validationError *ValidationError, start, end string) {
	formatOK := true
	if !tv.validator.IsValidClockTime(start) {
		validationError.AddInvalidFormatError(FieldStartTime, start, clockTimeFormat)
		formatOK = false
	}
	if !tv.validator.IsValidClockTime(end) {
		validationError.AddInvalidFormatError(FieldEndTime, end, clockTimeFormat)
		formatOK = false
	}
	if formatOK && !tv.validator.IsTimeRangeValid(start, end) {
		validationError.AddInvalidRangeError(FieldTimeRange, map[string]string{
			"start": start,
			"end":   end,
		}, MsgEndBeforeStart)
	}
}
