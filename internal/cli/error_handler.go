package cli

import (
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
	"todo-list/internal/view"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	catalog view.Catalog
}

// NewErrorHandler creates a new error handler using catalog for messages
func NewErrorHandler(catalog view.Catalog) *ErrorHandler {
	return &ErrorHandler{catalog: catalog}
}

// Exit statuses reported by ExitCode
const (
	ExitFailure  = 1
	ExitRejected = 2
	ExitStore    = 3
)

// handledError shows a localised message but keeps the original error in
// its chain, so callers can still classify it
type handledError struct {
	message string
	cause   error
}

func (e *handledError) Error() string { return e.message }

func (e *handledError) Unwrap() error { return e.cause }

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if eh.isUserFacing(err) {
		return &handledError{message: fmt.Sprintf("failed to %s: %s", operation, eh.Message(err)), cause: err}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if eh.isUserFacing(err) {
		return &handledError{message: eh.Message(err), cause: err}
	}
	return err
}

// Message returns the localised message for err. Unknown task references
// use the catalog's not-found text.
func (eh *ErrorHandler) Message(err error) string {
	if eh.IsNotFoundError(err) {
		appErr, _ := errors.AsAppError(err)
		if ref, ok := appErr.GetContext("identifier"); ok {
			return fmt.Sprintf(eh.catalog.NotFound, ref)
		}
	}
	return eh.catalog.Message(err)
}

// ExitCode maps err to a process exit status. Rejected input and unknown
// tasks exit with ExitRejected, store failures with ExitStore.
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case eh.IsValidationError(err), eh.IsNotFoundError(err), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		return ExitRejected
	case eh.IsStorageError(err):
		return ExitStore
	default:
		return ExitFailure
	}
}

// ExitCode maps err to a process exit status
func ExitCode(err error) int {
	return NewErrorHandler(view.CatalogFor(view.DefaultLocale)).ExitCode(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from the store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage) || errors.IsErrorType(err, errors.ErrorTypeTimeout)
}

func (eh *ErrorHandler) isUserFacing(err error) bool {
	return eh.IsValidationError(err) || errors.IsAppError(err)
}
