package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Start string
	End   string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.catalog),
	}
}

// Execute runs the add command. All arguments form the task text.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", commandAdd, `usage: td add "your task" [--start HH:MM] [--end HH:MM]`)
	}
	return c.addTask(ctx, strings.Join(args, " "))
}

// addTask adds one task and reports it
func (c *AddCommand) addTask(ctx context.Context, text string) error {
	task, err := c.app.service.Add(ctx, text, strings.TrimSpace(c.Start), strings.TrimSpace(c.End))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintln(c.app.out, fmt.Sprintf(c.app.catalog.Added, task.Text))
	return nil
}
