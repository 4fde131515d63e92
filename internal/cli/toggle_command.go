package cli

import (
	"context"
	"fmt"

	"todo-list/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.catalog),
	}
}

// Execute flips the completion flag of the referenced task
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", commandToggle, "usage: td toggle <n|id>")
	}

	task, err := c.app.service.Resolve(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if _, err := c.app.service.Toggle(ctx, task.ID); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	state := c.app.catalog.Done
	if task.Completed {
		state = c.app.catalog.Open
	}
	fmt.Fprintf(c.app.out, "%s (%s)\n", fmt.Sprintf(c.app.catalog.Toggled, task.Text), state)
	return nil
}
