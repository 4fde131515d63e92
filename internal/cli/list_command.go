package cli

import (
	"context"

	"todo-list/internal/errors"
	"todo-list/internal/view"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App

	ShowIDs bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, ShowIDs: app.config.Display.ShowIDs}
}

// Execute prints every task, newest first, followed by the counter
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", commandList, "usage: td list [--ids]")
	}

	renderer := view.NewTextRenderer(c.app.config.Display.Color, c.ShowIDs)
	return renderer.Write(c.app.out, view.Render(c.app.service.Tasks(), c.app.catalog))
}
