package cli

import (
	"context"
	"fmt"

	"todo-list/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.catalog),
	}
}

// Execute removes the referenced task. This cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", commandDelete, "usage: td delete <n|id>")
	}

	task, err := c.app.service.Resolve(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if _, err := c.app.service.Delete(ctx, task.ID); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintln(c.app.out, fmt.Sprintf(c.app.catalog.Deleted, task.Text))
	return nil
}
